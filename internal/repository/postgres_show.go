package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type PostgresAstronomyShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAstronomyShowRepository(db *pgxpool.Pool) *PostgresAstronomyShowRepository {
	return &PostgresAstronomyShowRepository{
		db: db,
	}
}

const showSelect = `
	SELECT
		s.id,
		s.title,
		s.description,
		s.image_url,
		COALESCE(array_agg(t.id ORDER BY t.name, t.id) FILTER (WHERE t.id IS NOT NULL), '{}'),
		COALESCE(array_agg(t.name ORDER BY t.name, t.id) FILTER (WHERE t.id IS NOT NULL), '{}')
	FROM astronomy_shows s
	LEFT JOIN astronomy_show_themes ast ON ast.astronomy_show_id = s.id
	LEFT JOIN show_themes t ON t.id = ast.show_theme_id
`

func (p *PostgresAstronomyShowRepository) GetAll(
	ctx context.Context,
	filters domain.AstronomyShowFilters) ([]*domain.AstronomyShow, error) {

	query := showSelect + `
		WHERE (COALESCE(cardinality($1::int[]), 0) = 0
			OR EXISTS (
				SELECT 1 FROM astronomy_show_themes f
				WHERE f.astronomy_show_id = s.id AND f.show_theme_id = ANY($1::int[])
			))
			AND ($2 = '' OR strpos(lower(s.title), lower($2)) > 0)
		GROUP BY s.id
		ORDER BY s.title, s.id
	`

	rows, err := p.db.Query(ctx, query, filters.ThemeIDs, filters.Title)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := []*domain.AstronomyShow{}

	for rows.Next() {
		show, err := scanShow(rows)
		if err != nil {
			return nil, err
		}

		shows = append(shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}

func (p *PostgresAstronomyShowRepository) GetById(ctx context.Context, id int) (*domain.AstronomyShow, error) {
	query := showSelect + `
		WHERE s.id = $1
		GROUP BY s.id
	`

	show, err := scanShow(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return show, nil
}

func (p *PostgresAstronomyShowRepository) Create(ctx context.Context, show *domain.AstronomyShow, themeIDs []int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO astronomy_shows (title, description)
			VALUES ($1, $2)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query, show.Title, show.Description).Scan(&show.ID)
		if err != nil {
			return err
		}

		show.Themes = []domain.ShowTheme{}

		if len(themeIDs) == 0 {
			return nil
		}

		query = `
			INSERT INTO astronomy_show_themes (astronomy_show_id, show_theme_id)
			SELECT $1, unnest($2::int[])
		`

		_, err = tx.Exec(ctx, query, show.ID, themeIDs)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		query = `SELECT id, name FROM show_themes WHERE id = ANY($1::int[]) ORDER BY name, id`

		rows, err := tx.Query(ctx, query, themeIDs)
		if err != nil {
			return err
		}

		show.Themes, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ShowTheme, error) {
			var theme domain.ShowTheme
			err := row.Scan(&theme.ID, &theme.Name)
			return theme, err
		})

		return err
	})
}

func (p *PostgresAstronomyShowRepository) UpdateImage(ctx context.Context, id int, imageURL string) error {
	query := `UPDATE astronomy_shows SET image_url = $1 WHERE id = $2`

	tag, err := p.db.Exec(ctx, query, imageURL, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func scanShow(row pgx.Row) (*domain.AstronomyShow, error) {
	var (
		show       domain.AstronomyShow
		themeIDs   []int
		themeNames []string
	)

	err := row.Scan(
		&show.ID,
		&show.Title,
		&show.Description,
		&show.ImageURL,
		&themeIDs,
		&themeNames,
	)
	if err != nil {
		return nil, err
	}

	show.Themes = make([]domain.ShowTheme, len(themeIDs))
	for i := range themeIDs {
		show.Themes[i] = domain.ShowTheme{ID: themeIDs[i], Name: themeNames[i]}
	}

	return &show, nil
}
