package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type PostgresPlanetariumDomeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPlanetariumDomeRepository(db *pgxpool.Pool) *PostgresPlanetariumDomeRepository {
	return &PostgresPlanetariumDomeRepository{
		db: db,
	}
}

func (p *PostgresPlanetariumDomeRepository) GetAll(ctx context.Context) ([]domain.PlanetariumDome, error) {
	query := `SELECT id, name, rows, seats_in_row FROM planetarium_domes ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	domes := make([]domain.PlanetariumDome, 0)

	for rows.Next() {
		var dome domain.PlanetariumDome

		err := rows.Scan(&dome.ID, &dome.Name, &dome.Rows, &dome.SeatsInRow)
		if err != nil {
			return nil, err
		}

		domes = append(domes, dome)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return domes, nil
}

func (p *PostgresPlanetariumDomeRepository) GetById(ctx context.Context, id int) (*domain.PlanetariumDome, error) {
	query := `SELECT id, name, rows, seats_in_row FROM planetarium_domes WHERE id = $1`

	var dome domain.PlanetariumDome

	err := p.db.QueryRow(ctx, query, id).Scan(&dome.ID, &dome.Name, &dome.Rows, &dome.SeatsInRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &dome, nil
}

func (p *PostgresPlanetariumDomeRepository) Create(ctx context.Context, dome *domain.PlanetariumDome) error {
	query := `
		INSERT INTO planetarium_domes (name, rows, seats_in_row)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	return p.db.QueryRow(ctx, query, dome.Name, dome.Rows, dome.SeatsInRow).Scan(&dome.ID)
}

func (p *PostgresPlanetariumDomeRepository) Update(ctx context.Context, dome *domain.PlanetariumDome) error {
	query := `
		UPDATE planetarium_domes
		SET name = $1, rows = $2, seats_in_row = $3
		WHERE id = $4
	`

	tag, err := p.db.Exec(ctx, query, dome.Name, dome.Rows, dome.SeatsInRow, dome.ID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
