package app

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
	"github.com/oapi-codegen/runtime"
)

const maxImageSize = 10 << 20

var (
	errImageRequired = errors.New("image file is required")
	errImageInvalid  = errors.New("uploaded file is not a valid image")
)

func (app *Application) ListAstronomyShows(w http.ResponseWriter, r *http.Request) {
	var params api.GetAstronomyShowsParams

	err := runtime.BindQueryParameter("form", false, false, "showThemes", r.URL.Query(), &params.ShowThemes)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid showThemes parameter"))
		return
	}

	err = runtime.BindQueryParameter("form", true, false, "title", r.URL.Query(), &params.Title)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid title parameter"))
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	var filters domain.AstronomyShowFilters
	if params.ShowThemes != nil {
		filters.ThemeIDs = *params.ShowThemes
	}
	if params.Title != nil {
		filters.Title = strings.TrimSpace(*params.Title)
	}

	shows, err := app.showRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.AstronomyShowListResponse{AstronomyShows: toApiShowSummaries(shows)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetAstronomyShow(w http.ResponseWriter, r *http.Request) {
	showId, err := app.readIDParam(r, "showId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	show, err := app.showRepo.GetById(r.Context(), showId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiShowDetail(show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateAstronomyShow(w http.ResponseWriter, r *http.Request) {
	var input api.CreateAstronomyShowRequest

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

	show := domain.AstronomyShow{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
	}

	err = app.showRepo.Create(r.Context(), &show, input.ShowThemes)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, "one or more show themes not found")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiShowDetail(&show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UploadAstronomyShowImage stores the multipart "image" file and points the
// show at it. Anything that does not sniff as an image is rejected.
func (app *Application) UploadAstronomyShowImage(w http.ResponseWriter, r *http.Request) {
	showId, err := app.readIDParam(r, "showId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	show, err := app.showRepo.GetById(r.Context(), showId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)

	err = r.ParseMultipartForm(maxImageSize)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid multipart form: %w", err))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		app.badRequestResponse(w, r, errImageRequired)
		return
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		app.badRequestResponse(w, r, errImageInvalid)
		return
	}

	if !strings.HasPrefix(mtype.String(), "image/") {
		app.badRequestResponse(w, r, errImageInvalid)
		return
	}

	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	filename := header.Filename
	if filepath.Ext(filename) == "" {
		filename += mtype.Extension()
	}

	url, err := app.images.Save(r.Context(), domain.ShowImageFilePath(show.Title, filename), file)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.showRepo.UpdateImage(r.Context(), show.ID, url)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, api.ShowImageResponse{Id: show.ID, Image: url}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiShowSummaries(shows []*domain.AstronomyShow) []api.AstronomyShowSummary {
	result := make([]api.AstronomyShowSummary, len(shows))

	for i, s := range shows {
		themes := make([]string, len(s.Themes))
		for j, t := range s.Themes {
			themes[j] = t.Name
		}

		result[i] = api.AstronomyShowSummary{
			Id:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Image:       s.ImageURL,
			ShowThemes:  themes,
		}
	}

	return result
}

func toApiShowDetail(show *domain.AstronomyShow) api.AstronomyShowDetail {
	return api.AstronomyShowDetail{
		Id:          show.ID,
		Title:       show.Title,
		Description: show.Description,
		Image:       show.ImageURL,
		ShowThemes:  toApiShowThemes(show.Themes),
	}
}
