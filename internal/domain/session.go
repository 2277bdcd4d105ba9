package domain

import (
	"context"
	"time"
)

type ShowSession struct {
	ID                int
	AstronomyShowID   int
	PlanetariumDomeID int
	ShowTime          time.Time

	AstronomyShowTitle string
	AstronomyShowImage *string
	Dome               PlanetariumDome
	TicketsSold        int
}

func (s ShowSession) TicketsAvailable() int {
	return s.Dome.Capacity() - s.TicketsSold
}

type ShowSessionFilters struct {
	Date            *time.Time
	AstronomyShowID *int
}

type ShowSessionRepository interface {
	GetAll(ctx context.Context, filters ShowSessionFilters) ([]ShowSession, error)
	GetById(ctx context.Context, id int) (*ShowSession, error)
	GetByIds(ctx context.Context, ids []int) (map[int]ShowSession, error)
	Create(ctx context.Context, session *ShowSession) error
	Delete(ctx context.Context, id int) error
}
