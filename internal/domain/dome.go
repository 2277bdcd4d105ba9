package domain

import "context"

type PlanetariumDome struct {
	ID         int
	Name       string
	Rows       int
	SeatsInRow int
}

// Capacity is derived from the seating grid and never stored.
func (d PlanetariumDome) Capacity() int {
	return d.Rows * d.SeatsInRow
}

type PlanetariumDomeRepository interface {
	GetAll(ctx context.Context) ([]PlanetariumDome, error)
	GetById(ctx context.Context, id int) (*PlanetariumDome, error)
	Create(ctx context.Context, dome *PlanetariumDome) error
	Update(ctx context.Context, dome *PlanetariumDome) error
}
