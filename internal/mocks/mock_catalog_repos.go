package mocks

import (
	"context"

	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

type MockShowThemeRepo struct {
	domain.ShowThemeRepository
	GetAllFunc func(ctx context.Context) ([]domain.ShowTheme, error)
	CreateFunc func(ctx context.Context, theme *domain.ShowTheme) error
}

func (m *MockShowThemeRepo) GetAll(ctx context.Context) ([]domain.ShowTheme, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockShowThemeRepo) Create(ctx context.Context, theme *domain.ShowTheme) error {
	return m.CreateFunc(ctx, theme)
}

type MockAstronomyShowRepo struct {
	domain.AstronomyShowRepository
	GetAllFunc      func(ctx context.Context, filters domain.AstronomyShowFilters) ([]*domain.AstronomyShow, error)
	GetByIdFunc     func(ctx context.Context, id int) (*domain.AstronomyShow, error)
	CreateFunc      func(ctx context.Context, show *domain.AstronomyShow, themeIDs []int) error
	UpdateImageFunc func(ctx context.Context, id int, imageURL string) error
}

func (m *MockAstronomyShowRepo) GetAll(ctx context.Context, filters domain.AstronomyShowFilters) ([]*domain.AstronomyShow, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockAstronomyShowRepo) GetById(ctx context.Context, id int) (*domain.AstronomyShow, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockAstronomyShowRepo) Create(ctx context.Context, show *domain.AstronomyShow, themeIDs []int) error {
	return m.CreateFunc(ctx, show, themeIDs)
}

func (m *MockAstronomyShowRepo) UpdateImage(ctx context.Context, id int, imageURL string) error {
	return m.UpdateImageFunc(ctx, id, imageURL)
}

type MockPlanetariumDomeRepo struct {
	domain.PlanetariumDomeRepository
	GetAllFunc  func(ctx context.Context) ([]domain.PlanetariumDome, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.PlanetariumDome, error)
	CreateFunc  func(ctx context.Context, dome *domain.PlanetariumDome) error
	UpdateFunc  func(ctx context.Context, dome *domain.PlanetariumDome) error
}

func (m *MockPlanetariumDomeRepo) GetAll(ctx context.Context) ([]domain.PlanetariumDome, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockPlanetariumDomeRepo) GetById(ctx context.Context, id int) (*domain.PlanetariumDome, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockPlanetariumDomeRepo) Create(ctx context.Context, dome *domain.PlanetariumDome) error {
	return m.CreateFunc(ctx, dome)
}

func (m *MockPlanetariumDomeRepo) Update(ctx context.Context, dome *domain.PlanetariumDome) error {
	return m.UpdateFunc(ctx, dome)
}
