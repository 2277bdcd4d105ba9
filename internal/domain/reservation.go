package domain

import (
	"context"
	"time"
)

type Reservation struct {
	ID        int
	UserID    int
	CreatedAt time.Time
	Tickets   []Ticket
}

// SessionIDs returns the distinct show sessions referenced by the tickets, in ascending order.
func (r Reservation) SessionIDs() []int {
	return distinctSessionIDs(r.Tickets)
}

// TicketCheck is run by the repository inside the booking transaction,
// after the referenced sessions are locked and their sold tickets reloaded.
type TicketCheck func(sessions map[int]ShowSession, taken []Ticket) error

type ReservationRepository interface {
	Create(ctx context.Context, reservation *Reservation, check TicketCheck) error
	GetTicketsBySessionIds(ctx context.Context, sessionIDs []int) ([]Ticket, error)
	GetAllByUserId(ctx context.Context, userID int, pagination Pagination) ([]Reservation, *Metadata, error)
	GetByIdAndUserId(ctx context.Context, id, userID int) (*Reservation, error)
	Delete(ctx context.Context, id, userID int) error
}
