package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type PostgresShowSessionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowSessionRepository(db *pgxpool.Pool) *PostgresShowSessionRepository {
	return &PostgresShowSessionRepository{
		db: db,
	}
}

const sessionSelect = `
	SELECT
		ss.id,
		ss.astronomy_show_id,
		ss.planetarium_dome_id,
		ss.show_time,
		a.title,
		a.image_url,
		d.id,
		d.name,
		d.rows,
		d.seats_in_row,
		(SELECT COUNT(*) FROM tickets t WHERE t.show_session_id = ss.id)
	FROM show_sessions ss
	JOIN astronomy_shows a ON a.id = ss.astronomy_show_id
	JOIN planetarium_domes d ON d.id = ss.planetarium_dome_id
`

func (p *PostgresShowSessionRepository) GetAll(
	ctx context.Context,
	filters domain.ShowSessionFilters) ([]domain.ShowSession, error) {

	query := sessionSelect + `
		WHERE ($1::date IS NULL OR ss.show_time::date = $1::date)
			AND ($2::int IS NULL OR ss.astronomy_show_id = $2::int)
		ORDER BY ss.show_time, ss.id
	`

	rows, err := p.db.Query(ctx, query, filters.Date, filters.AstronomyShowID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]domain.ShowSession, 0)

	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}

		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (p *PostgresShowSessionRepository) GetById(ctx context.Context, id int) (*domain.ShowSession, error) {
	query := sessionSelect + `WHERE ss.id = $1`

	session, err := scanSession(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &session, nil
}

func (p *PostgresShowSessionRepository) GetByIds(ctx context.Context, ids []int) (map[int]domain.ShowSession, error) {
	return getSessionsByIds(ctx, p.db, ids, false)
}

// getSessionsByIds loads sessions with their domes. With lock set, the session
// rows are locked FOR UPDATE in id order so concurrent bookings queue up.
func getSessionsByIds(ctx context.Context, q querier, ids []int, lock bool) (map[int]domain.ShowSession, error) {
	query := sessionSelect + `WHERE ss.id = ANY($1::int[]) ORDER BY ss.id`
	if lock {
		query += ` FOR UPDATE OF ss`
	}

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make(map[int]domain.ShowSession, len(ids))

	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}

		sessions[session.ID] = session
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (p *PostgresShowSessionRepository) Create(ctx context.Context, session *domain.ShowSession) error {
	query := `
		INSERT INTO show_sessions (astronomy_show_id, planetarium_dome_id, show_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := p.db.QueryRow(
		ctx,
		query,
		session.AstronomyShowID,
		session.PlanetariumDomeID,
		session.ShowTime).Scan(&session.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresShowSessionRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM show_sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func scanSession(row pgx.Row) (domain.ShowSession, error) {
	var session domain.ShowSession

	err := row.Scan(
		&session.ID,
		&session.AstronomyShowID,
		&session.PlanetariumDomeID,
		&session.ShowTime,
		&session.AstronomyShowTitle,
		&session.AstronomyShowImage,
		&session.Dome.ID,
		&session.Dome.Name,
		&session.Dome.Rows,
		&session.Dome.SeatsInRow,
		&session.TicketsSold,
	)

	return session, err
}
