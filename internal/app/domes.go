package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

func (app *Application) ListPlanetariumDomes(w http.ResponseWriter, r *http.Request) {
	domes, err := app.domeRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PlanetariumDomeListResponse{PlanetariumDomes: make([]api.PlanetariumDome, len(domes))}
	for i, d := range domes {
		resp.PlanetariumDomes[i] = toApiDome(d)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPlanetariumDome(w http.ResponseWriter, r *http.Request) {
	domeId, err := app.readIDParam(r, "domeId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	dome, err := app.domeRepo.GetById(r.Context(), domeId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiDome(*dome), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreatePlanetariumDome(w http.ResponseWriter, r *http.Request) {
	var input api.PlanetariumDomeRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	dome := domain.PlanetariumDome{
		Name:       strings.TrimSpace(input.Name),
		Rows:       input.Rows,
		SeatsInRow: input.SeatsInRow,
	}

	err = app.domeRepo.Create(r.Context(), &dome)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiDome(dome), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdatePlanetariumDome(w http.ResponseWriter, r *http.Request) {
	domeId, err := app.readIDParam(r, "domeId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.PlanetariumDomeRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	dome := domain.PlanetariumDome{
		ID:         domeId,
		Name:       strings.TrimSpace(input.Name),
		Rows:       input.Rows,
		SeatsInRow: input.SeatsInRow,
	}

	err = app.domeRepo.Update(r.Context(), &dome)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiDome(dome), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiDome(d domain.PlanetariumDome) api.PlanetariumDome {
	return api.PlanetariumDome{
		Id:         d.ID,
		Name:       d.Name,
		Rows:       d.Rows,
		SeatsInRow: d.SeatsInRow,
		Capacity:   d.Capacity(),
	}
}
