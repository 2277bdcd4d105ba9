package app

import (
	"net/http"
	"strings"

	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

func (app *Application) ListShowThemes(w http.ResponseWriter, r *http.Request) {
	themes, err := app.themeRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowThemeListResponse{ShowThemes: toApiShowThemes(themes)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShowTheme(w http.ResponseWriter, r *http.Request) {
	var input api.CreateShowThemeRequest

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

	theme := domain.ShowTheme{Name: strings.TrimSpace(input.Name)}

	err = app.themeRepo.Create(r.Context(), &theme)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, api.ShowTheme{Id: theme.ID, Name: theme.Name}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiShowThemes(themes []domain.ShowTheme) []api.ShowTheme {
	result := make([]api.ShowTheme, len(themes))

	for i, t := range themes {
		result[i] = api.ShowTheme{Id: t.ID, Name: t.Name}
	}

	return result
}
