package domain

import (
	"fmt"
	"slices"
)

type Ticket struct {
	ID            int
	Row           int
	Seat          int
	ShowSessionID int
	ReservationID int
}

type seatKey struct {
	sessionID, row, seat int
}

func (t Ticket) key() seatKey {
	return seatKey{sessionID: t.ShowSessionID, row: t.Row, seat: t.Seat}
}

// TicketRangeError reports a row or seat outside of the dome grid.
type TicketRangeError struct {
	Field string
	Limit string
	Max   int
}

func (e *TicketRangeError) Error() string {
	return fmt.Sprintf("%s number must be in range: (1, %s) → (1, %d)", e.Field, e.Limit, e.Max)
}

func (e *TicketRangeError) Unwrap() error {
	return ErrTicketOutOfRange
}

// SeatTakenError reports a (show session, row, seat) triple that already has a ticket.
type SeatTakenError struct {
	ShowSessionID int
	Row           int
	Seat          int
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat %d in row %d is already taken for show session %d", e.Seat, e.Row, e.ShowSessionID)
}

func (e *SeatTakenError) Unwrap() error {
	return ErrSeatTaken
}

// ValidateTicket checks the row first, then the seat, then uniqueness within the session.
func ValidateTicket(candidate Ticket, dome PlanetariumDome, taken []Ticket) error {
	if candidate.Row < 1 || candidate.Row > dome.Rows {
		return &TicketRangeError{Field: "row", Limit: "rows", Max: dome.Rows}
	}

	if candidate.Seat < 1 || candidate.Seat > dome.SeatsInRow {
		return &TicketRangeError{Field: "seat", Limit: "seats_in_row", Max: dome.SeatsInRow}
	}

	for _, t := range taken {
		if t.key() == candidate.key() {
			return &SeatTakenError{ShowSessionID: candidate.ShowSessionID, Row: candidate.Row, Seat: candidate.Seat}
		}
	}

	return nil
}

// TicketError ties a validation failure to the position of the ticket in a batch.
type TicketError struct {
	Index int
	Err   error
}

func (e *TicketError) Error() string {
	return fmt.Sprintf("tickets[%d]: %v", e.Index, e.Err)
}

func (e *TicketError) Unwrap() error {
	return e.Err
}

// ValidateTickets validates a batch in order. Seats claimed by earlier
// candidates count as taken for the later ones.
func ValidateTickets(candidates []Ticket, sessions map[int]ShowSession, taken []Ticket) error {
	if len(candidates) == 0 {
		return ErrNoTickets
	}

	claimed := slices.Clone(taken)

	for i, candidate := range candidates {
		session, ok := sessions[candidate.ShowSessionID]
		if !ok {
			return &TicketError{Index: i, Err: ErrRecordNotFound}
		}

		err := ValidateTicket(candidate, session.Dome, claimed)
		if err != nil {
			return &TicketError{Index: i, Err: err}
		}

		claimed = append(claimed, candidate)
	}

	return nil
}

func distinctSessionIDs(tickets []Ticket) []int {
	ids := make([]int, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ShowSessionID)
	}

	slices.Sort(ids)

	return slices.Compact(ids)
}
