package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
	"github.com/oapi-codegen/runtime"
)

func (app *Application) ListShowSessions(w http.ResponseWriter, r *http.Request) {
	var params api.GetShowSessionsParams

	err := runtime.BindQueryParameter("form", true, false, "date", r.URL.Query(), &params.Date)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid date parameter, expected YYYY-MM-DD"))
		return
	}

	err = runtime.BindQueryParameter("form", true, false, "show", r.URL.Query(), &params.Show)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid show parameter"))
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.ShowSessionFilters{AstronomyShowID: params.Show}
	if params.Date != nil {
		filters.Date = &params.Date.Time
	}

	sessions, err := app.sessionRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowSessionListResponse{ShowSessions: make([]api.ShowSessionSummary, len(sessions))}
	for i, s := range sessions {
		resp.ShowSessions[i] = toApiSessionSummary(s)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetShowSession returns the session together with the places already sold,
// so clients can render the dome grid.
func (app *Application) GetShowSession(w http.ResponseWriter, r *http.Request) {
	sessionId, err := app.readIDParam(r, "sessionId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	session, err := app.sessionRepo.GetById(r.Context(), sessionId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	taken, err := app.reservationRepo.GetTicketsBySessionIds(r.Context(), []int{session.ID})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiSessionDetail(session, taken), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShowSession(w http.ResponseWriter, r *http.Request) {
	var input api.CreateShowSessionRequest

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

	session := domain.ShowSession{
		AstronomyShowID:   input.AstronomyShow,
		PlanetariumDomeID: input.PlanetariumDome,
		ShowTime:          input.ShowTime,
	}

	err = app.sessionRepo.Create(r.Context(), &session)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, "astronomy show or planetarium dome not found")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	created, err := app.sessionRepo.GetById(r.Context(), session.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiSessionDetail(created, nil), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteShowSession(w http.ResponseWriter, r *http.Request) {
	sessionId, err := app.readIDParam(r, "sessionId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.sessionRepo.Delete(r.Context(), sessionId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toApiSessionSummary(s domain.ShowSession) api.ShowSessionSummary {
	return api.ShowSessionSummary{
		Id:                  s.ID,
		ShowTime:            s.ShowTime,
		AstronomyShowId:     s.AstronomyShowID,
		AstronomyShowTitle:  s.AstronomyShowTitle,
		AstronomyShowImage:  s.AstronomyShowImage,
		PlanetariumDomeId:   s.PlanetariumDomeID,
		PlanetariumDomeName: s.Dome.Name,
		Capacity:            s.Dome.Capacity(),
		TicketsAvailable:    s.TicketsAvailable(),
	}
}

func toApiSessionDetail(s *domain.ShowSession, taken []domain.Ticket) api.ShowSessionDetail {
	places := make([]api.TakenPlace, len(taken))
	for i, t := range taken {
		places[i] = api.TakenPlace{Row: t.Row, Seat: t.Seat}
	}

	return api.ShowSessionDetail{
		Id:                 s.ID,
		ShowTime:           s.ShowTime,
		AstronomyShowId:    s.AstronomyShowID,
		AstronomyShowTitle: s.AstronomyShowTitle,
		AstronomyShowImage: s.AstronomyShowImage,
		PlanetariumDome:    toApiDome(s.Dome),
		TicketsAvailable:   s.TicketsAvailable(),
		TakenPlaces:        places,
	}
}
