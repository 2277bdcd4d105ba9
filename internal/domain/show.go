package domain

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const ShowImageDir = "uploads/shows"

type ShowTheme struct {
	ID   int
	Name string
}

type AstronomyShow struct {
	ID          int
	Title       string
	Description *string
	ImageURL    *string
	Themes      []ShowTheme
}

type AstronomyShowFilters struct {
	ThemeIDs []int
	Title    string
}

// ShowImageFilePath builds the storage path of an uploaded show image:
// the slugified title, a random suffix and the original extension.
func ShowImageFilePath(title, filename string) string {
	ext := filepath.Ext(filename)
	name := slug.Make(title) + "-" + uuid.NewString() + ext

	return filepath.ToSlash(filepath.Join(ShowImageDir, name))
}

type ShowThemeRepository interface {
	GetAll(ctx context.Context) ([]ShowTheme, error)
	Create(ctx context.Context, theme *ShowTheme) error
}

type AstronomyShowRepository interface {
	GetAll(ctx context.Context, filters AstronomyShowFilters) ([]*AstronomyShow, error)
	GetById(ctx context.Context, id int) (*AstronomyShow, error)
	Create(ctx context.Context, show *AstronomyShow, themeIDs []int) error
	UpdateImage(ctx context.Context, id int, imageURL string) error
}
