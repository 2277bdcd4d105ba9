package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

// Create persists the reservation and its tickets in one transaction. The
// referenced sessions are locked first, then check runs against the tickets
// sold so far. The unique constraint on tickets stays the final guard.
func (p *PostgresReservationRepository) Create(
	ctx context.Context,
	reservation *domain.Reservation,
	check domain.TicketCheck) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		sessionIDs := reservation.SessionIDs()

		sessions, err := getSessionsByIds(ctx, tx, sessionIDs, true)
		if err != nil {
			return err
		}

		taken, err := getTicketsBySessionIds(ctx, tx, sessionIDs)
		if err != nil {
			return err
		}

		if check != nil {
			err = check(sessions, taken)
			if err != nil {
				return err
			}
		}

		query := `
			INSERT INTO reservations (user_id)
			VALUES ($1)
			RETURNING id, created_at
		`

		err = tx.QueryRow(ctx, query, reservation.UserID).Scan(&reservation.ID, &reservation.CreatedAt)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrUserNotFound
			}

			return err
		}

		query = `
			INSERT INTO tickets ("row", seat, show_session_id, reservation_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`

		for i := range reservation.Tickets {
			ticket := &reservation.Tickets[i]
			ticket.ReservationID = reservation.ID

			err = tx.QueryRow(ctx, query, ticket.Row, ticket.Seat, ticket.ShowSessionID, ticket.ReservationID).Scan(&ticket.ID)
			if err != nil {
				switch {
				case isUniqueViolation(err):
					return &domain.TicketError{Index: i, Err: &domain.SeatTakenError{
						ShowSessionID: ticket.ShowSessionID,
						Row:           ticket.Row,
						Seat:          ticket.Seat,
					}}
				case isForeignKeyViolation(err):
					return &domain.TicketError{Index: i, Err: domain.ErrRecordNotFound}
				default:
					return err
				}
			}
		}

		return nil
	})
}

func (p *PostgresReservationRepository) GetTicketsBySessionIds(ctx context.Context, sessionIDs []int) ([]domain.Ticket, error) {
	return getTicketsBySessionIds(ctx, p.db, sessionIDs)
}

func getTicketsBySessionIds(ctx context.Context, q querier, sessionIDs []int) ([]domain.Ticket, error) {
	query := `
		SELECT id, "row", seat, show_session_id, reservation_id
		FROM tickets
		WHERE show_session_id = ANY($1::int[])
		ORDER BY show_session_id, "row", seat
	`

	rows, err := q.Query(ctx, query, sessionIDs)
	if err != nil {
		return nil, err
	}

	return collectTickets(rows)
}

func (p *PostgresReservationRepository) GetAllByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.Reservation, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, user_id, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	totalRecords := 0

	for rows.Next() {
		var reservation domain.Reservation

		err := rows.Scan(&totalRecords, &reservation.ID, &reservation.UserID, &reservation.CreatedAt)
		if err != nil {
			return nil, nil, err
		}

		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	if len(reservations) > 0 {
		ids := make([]int, len(reservations))
		for i, r := range reservations {
			ids[i] = r.ID
		}

		tickets, err := p.getTicketsByReservationIds(ctx, ids)
		if err != nil {
			return nil, nil, err
		}

		byReservation := make(map[int][]domain.Ticket, len(reservations))
		for _, t := range tickets {
			byReservation[t.ReservationID] = append(byReservation[t.ReservationID], t)
		}

		for i := range reservations {
			reservations[i].Tickets = byReservation[reservations[i].ID]
		}
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return reservations, metadata, nil
}

func (p *PostgresReservationRepository) GetByIdAndUserId(ctx context.Context, id, userID int) (*domain.Reservation, error) {
	query := `
		SELECT id, user_id, created_at
		FROM reservations
		WHERE id = $1 AND user_id = $2
	`

	var reservation domain.Reservation

	err := p.db.QueryRow(ctx, query, id, userID).Scan(&reservation.ID, &reservation.UserID, &reservation.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	reservation.Tickets, err = p.getTicketsByReservationIds(ctx, []int{reservation.ID})
	if err != nil {
		return nil, err
	}

	return &reservation, nil
}

func (p *PostgresReservationRepository) Delete(ctx context.Context, id, userID int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresReservationRepository) getTicketsByReservationIds(ctx context.Context, ids []int) ([]domain.Ticket, error) {
	query := `
		SELECT id, "row", seat, show_session_id, reservation_id
		FROM tickets
		WHERE reservation_id = ANY($1::int[])
		ORDER BY "row", seat, id
	`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}

	return collectTickets(rows)
}

func collectTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	tickets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ticket, error) {
		var t domain.Ticket
		err := row.Scan(&t.ID, &t.Row, &t.Seat, &t.ShowSessionID, &t.ReservationID)
		return t, err
	})
	if err != nil {
		return nil, err
	}

	return tickets, nil
}
