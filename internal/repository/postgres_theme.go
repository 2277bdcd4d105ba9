package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type PostgresShowThemeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowThemeRepository(db *pgxpool.Pool) *PostgresShowThemeRepository {
	return &PostgresShowThemeRepository{
		db: db,
	}
}

func (p *PostgresShowThemeRepository) GetAll(ctx context.Context) ([]domain.ShowTheme, error) {
	query := `SELECT id, name FROM show_themes ORDER BY name, id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	themes := make([]domain.ShowTheme, 0)

	for rows.Next() {
		var theme domain.ShowTheme

		err := rows.Scan(&theme.ID, &theme.Name)
		if err != nil {
			return nil, err
		}

		themes = append(themes, theme)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return themes, nil
}

func (p *PostgresShowThemeRepository) Create(ctx context.Context, theme *domain.ShowTheme) error {
	query := `INSERT INTO show_themes (name) VALUES ($1) RETURNING id`

	return p.db.QueryRow(ctx, query, theme.Name).Scan(&theme.ID)
}
