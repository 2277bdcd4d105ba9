package app

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
	"github.com/metinatakli/planetarium-reservation-system/internal/mocks"
	"github.com/metinatakli/planetarium-reservation-system/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateShowTheme(t *testing.T) {
	tests := []struct {
		name           string
		input          api.CreateShowThemeRequest
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "valid theme",
			input:      api.CreateShowThemeRequest{Name: "  Black holes "},
			wantStatus: http.StatusCreated,
		},
		{
			name:           "blank name",
			input:          api.CreateShowThemeRequest{Name: "   "},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrNotBlank,
		},
		{
			name:           "empty name",
			input:          api.CreateShowThemeRequest{},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *domain.ShowTheme
			app := newTestApplication(t, func(a *Application) {
				a.themeRepo = &mocks.MockShowThemeRepo{
					CreateFunc: func(ctx context.Context, theme *domain.ShowTheme) error {
						theme.ID = 4
						created = theme
						return nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/show-themes", tt.input)

			app.CreateShowTheme(w, r)

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{tt.wantStatus, tt.wantErrMessage})

			if tt.wantStatus == http.StatusCreated {
				require.NotNil(t, created)
				assert.Equal(t, "Black holes", created.Name)
				assert.Equal(t, api.ShowTheme{Id: 4, Name: "Black holes"}, decodeJSON[api.ShowTheme](t, w))
			}
		})
	}
}

func TestListAstronomyShows(t *testing.T) {
	shows := []*domain.AstronomyShow{
		{
			ID:     1,
			Title:  "Andromeda",
			Themes: []domain.ShowTheme{{ID: 1, Name: "Galaxies"}, {ID: 2, Name: "Stars"}},
		},
	}

	tests := []struct {
		name        string
		query       string
		wantFilters domain.AstronomyShowFilters
		wantStatus  int
	}{
		{
			name:        "no filters",
			query:       "",
			wantFilters: domain.AstronomyShowFilters{},
			wantStatus:  http.StatusOK,
		},
		{
			name:        "single theme id",
			query:       "?showThemes=1",
			wantFilters: domain.AstronomyShowFilters{ThemeIDs: []int{1}},
			wantStatus:  http.StatusOK,
		},
		{
			name:        "theme ids and title",
			query:       "?showThemes=1,2&title=%20androm%20",
			wantFilters: domain.AstronomyShowFilters{ThemeIDs: []int{1, 2}, Title: "androm"},
			wantStatus:  http.StatusOK,
		},
		{
			name:       "invalid theme id",
			query:      "?showThemes=1,x",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-positive theme id",
			query:      "?showThemes=0",
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFilters domain.AstronomyShowFilters
			app := newTestApplication(t, func(a *Application) {
				a.showRepo = &mocks.MockAstronomyShowRepo{
					GetAllFunc: func(ctx context.Context, filters domain.AstronomyShowFilters) ([]*domain.AstronomyShow, error) {
						gotFilters = filters
						return shows, nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodGet, "/astronomy-shows"+tt.query, nil)

			app.ListAstronomyShows(w, r)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			if diff := cmp.Diff(tt.wantFilters, gotFilters); diff != "" {
				t.Errorf("filters mismatch (-want +got):\n%s", diff)
			}

			want := api.AstronomyShowListResponse{
				AstronomyShows: []api.AstronomyShowSummary{
					{Id: 1, Title: "Andromeda", ShowThemes: []string{"Galaxies", "Stars"}},
				},
			}
			if diff := cmp.Diff(want, decodeJSON[api.AstronomyShowListResponse](t, w)); diff != "" {
				t.Errorf("response mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetAstronomyShow(t *testing.T) {
	tests := []struct {
		name       string
		showId     string
		repoErr    error
		wantStatus int
	}{
		{name: "found", showId: "1", wantStatus: http.StatusOK},
		{name: "not found", showId: "9", repoErr: domain.ErrRecordNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid id", showId: "abc", wantStatus: http.StatusBadRequest},
		{name: "zero id", showId: "0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(t, func(a *Application) {
				a.showRepo = &mocks.MockAstronomyShowRepo{
					GetByIdFunc: func(ctx context.Context, id int) (*domain.AstronomyShow, error) {
						if tt.repoErr != nil {
							return nil, tt.repoErr
						}
						return &domain.AstronomyShow{ID: id, Title: "Andromeda"}, nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodGet, "/astronomy-shows/"+tt.showId, nil)
			r = withURLParams(r, map[string]string{"showId": tt.showId})

			app.GetAstronomyShow(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCreateAstronomyShow(t *testing.T) {
	tests := []struct {
		name           string
		input          api.CreateAstronomyShowRequest
		repoErr        error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "with themes",
			input:      api.CreateAstronomyShowRequest{Title: "Andromeda", ShowThemes: []int{1, 2}},
			wantStatus: http.StatusCreated,
		},
		{
			name:           "duplicate themes",
			input:          api.CreateAstronomyShowRequest{Title: "Andromeda", ShowThemes: []int{1, 1}},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrUnique,
		},
		{
			name:       "unknown theme",
			input:      api.CreateAstronomyShowRequest{Title: "Andromeda", ShowThemes: []int{99}},
			repoErr:    domain.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(t, func(a *Application) {
				a.showRepo = &mocks.MockAstronomyShowRepo{
					CreateFunc: func(ctx context.Context, show *domain.AstronomyShow, themeIDs []int) error {
						if tt.repoErr != nil {
							return tt.repoErr
						}
						show.ID = 5
						for _, id := range themeIDs {
							show.Themes = append(show.Themes, domain.ShowTheme{ID: id, Name: "theme"})
						}
						return nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/astronomy-shows", tt.input)

			app.CreateAstronomyShow(w, r)

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{tt.wantStatus, tt.wantErrMessage})

			if tt.wantStatus == http.StatusCreated {
				resp := decodeJSON[api.AstronomyShowDetail](t, w)
				assert.Equal(t, 5, resp.Id)
				assert.Len(t, resp.ShowThemes, 2)
			}
		})
	}
}

func newMultipartRequest(t *testing.T, url, field, filename string, content []byte) *http.Request {
	t.Helper()

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	if field != "" {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, url, body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	return r
}

func TestUploadAstronomyShowImage(t *testing.T) {
	tests := []struct {
		name       string
		field      string
		filename   string
		content    []byte
		wantStatus int
		wantPrefix string
	}{
		{
			name:       "png image",
			field:      "image",
			filename:   "Andromeda.PNG",
			content:    pngHeader,
			wantStatus: http.StatusOK,
			wantPrefix: "uploads/shows/andromeda-galaxy-",
		},
		{
			name:       "text file",
			field:      "image",
			filename:   "notes.png",
			content:    []byte("definitely not an image"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing file",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mocks.MockImageStore{BaseURL: "/media"}
			var storedURL string

			app := newTestApplication(t, func(a *Application) {
				a.images = store
				a.showRepo = &mocks.MockAstronomyShowRepo{
					GetByIdFunc: func(ctx context.Context, id int) (*domain.AstronomyShow, error) {
						return &domain.AstronomyShow{ID: id, Title: "Andromeda Galaxy"}, nil
					},
					UpdateImageFunc: func(ctx context.Context, id int, imageURL string) error {
						storedURL = imageURL
						return nil
					},
				}
			})

			r := newMultipartRequest(t, "/astronomy-shows/3/image", tt.field, tt.filename, tt.content)
			r = withURLParams(r, map[string]string{"showId": "3"})
			w := httptest.NewRecorder()

			app.UploadAstronomyShowImage(w, r)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.wantStatus != http.StatusOK {
				assert.Empty(t, store.Stored())
				return
			}

			stored := store.Stored()
			require.Len(t, stored, 1)
			assert.True(t, strings.HasPrefix(stored[0].Name, tt.wantPrefix), stored[0].Name)
			assert.True(t, strings.HasSuffix(stored[0].Name, ".png"), stored[0].Name)
			assert.Equal(t, pngHeader, stored[0].Content)

			resp := decodeJSON[api.ShowImageResponse](t, w)
			assert.Equal(t, 3, resp.Id)
			assert.Equal(t, storedURL, resp.Image)
		})
	}
}

func TestPlanetariumDomes(t *testing.T) {
	t.Run("create computes capacity", func(t *testing.T) {
		app := newTestApplication(t, func(a *Application) {
			a.domeRepo = &mocks.MockPlanetariumDomeRepo{
				CreateFunc: func(ctx context.Context, dome *domain.PlanetariumDome) error {
					dome.ID = 1
					return nil
				},
			}
		})

		w, r := executeRequest(t, http.MethodPost, "/planetarium-domes",
			api.PlanetariumDomeRequest{Name: "Main Dome", Rows: 25, SeatsInRow: 25})

		app.CreatePlanetariumDome(w, r)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t,
			api.PlanetariumDome{Id: 1, Name: "Main Dome", Rows: 25, SeatsInRow: 25, Capacity: 625},
			decodeJSON[api.PlanetariumDome](t, w))
	})

	t.Run("rows must be positive", func(t *testing.T) {
		app := newTestApplication(t)

		w, r := executeRequest(t, http.MethodPost, "/planetarium-domes",
			api.PlanetariumDomeRequest{Name: "Main Dome", Rows: 0, SeatsInRow: 25})

		app.CreatePlanetariumDome(w, r)

		checkErrorResponse(t, w, struct {
			wantStatus     int
			wantErrMessage string
		}{http.StatusUnprocessableEntity, "must be at least 1"})
	})

	t.Run("update recomputes capacity", func(t *testing.T) {
		app := newTestApplication(t, func(a *Application) {
			a.domeRepo = &mocks.MockPlanetariumDomeRepo{
				UpdateFunc: func(ctx context.Context, dome *domain.PlanetariumDome) error {
					return nil
				},
			}
		})

		w, r := executeRequest(t, http.MethodPut, "/planetarium-domes/1",
			api.PlanetariumDomeRequest{Name: "Main Dome", Rows: 10, SeatsInRow: 12})
		r = withURLParams(r, map[string]string{"domeId": "1"})

		app.UpdatePlanetariumDome(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 120, decodeJSON[api.PlanetariumDome](t, w).Capacity)
	})

	t.Run("update missing dome", func(t *testing.T) {
		app := newTestApplication(t, func(a *Application) {
			a.domeRepo = &mocks.MockPlanetariumDomeRepo{
				UpdateFunc: func(ctx context.Context, dome *domain.PlanetariumDome) error {
					return domain.ErrRecordNotFound
				},
			}
		})

		w, r := executeRequest(t, http.MethodPut, "/planetarium-domes/8",
			api.PlanetariumDomeRequest{Name: "Main Dome", Rows: 10, SeatsInRow: 12})
		r = withURLParams(r, map[string]string{"domeId": "8"})

		app.UpdatePlanetariumDome(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestShowSessions(t *testing.T) {
	showTime := time.Date(2025, 5, 4, 20, 0, 0, 0, time.UTC)
	session := domain.ShowSession{
		ID:                 3,
		AstronomyShowID:    1,
		PlanetariumDomeID:  2,
		ShowTime:           showTime,
		AstronomyShowTitle: "Andromeda",
		Dome:               domain.PlanetariumDome{ID: 2, Name: "Main Dome", Rows: 25, SeatsInRow: 25},
		TicketsSold:        2,
	}

	t.Run("list passes filters", func(t *testing.T) {
		sessionRepo := new(mocks.MockShowSessionRepo)
		date := time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC)
		sessionRepo.On("GetAll", mock.Anything, domain.ShowSessionFilters{Date: &date, AstronomyShowID: ptr(1)}).
			Return([]domain.ShowSession{session}, nil)

		app := newTestApplication(t, func(a *Application) {
			a.sessionRepo = sessionRepo
		})

		w, r := executeRequest(t, http.MethodGet, "/show-sessions?date=2025-05-04&show=1", nil)

		app.ListShowSessions(w, r)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decodeJSON[api.ShowSessionListResponse](t, w)
		require.Len(t, resp.ShowSessions, 1)
		assert.Equal(t, 625, resp.ShowSessions[0].Capacity)
		assert.Equal(t, 623, resp.ShowSessions[0].TicketsAvailable)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("list rejects malformed date", func(t *testing.T) {
		app := newTestApplication(t)

		w, r := executeRequest(t, http.MethodGet, "/show-sessions?date=04.05.2025", nil)

		app.ListShowSessions(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("detail includes taken places", func(t *testing.T) {
		sessionRepo := new(mocks.MockShowSessionRepo)
		sessionRepo.On("GetById", mock.Anything, 3).Return(&session, nil)

		reservationRepo := new(mocks.MockReservationRepo)
		reservationRepo.On("GetTicketsBySessionIds", mock.Anything, []int{3}).Return([]domain.Ticket{
			{ID: 1, Row: 1, Seat: 1, ShowSessionID: 3},
			{ID: 2, Row: 25, Seat: 25, ShowSessionID: 3},
		}, nil)

		app := newTestApplication(t, func(a *Application) {
			a.sessionRepo = sessionRepo
			a.reservationRepo = reservationRepo
		})

		w, r := executeRequest(t, http.MethodGet, "/show-sessions/3", nil)
		r = withURLParams(r, map[string]string{"sessionId": "3"})

		app.GetShowSession(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		want := api.ShowSessionDetail{
			Id:                 3,
			ShowTime:           showTime,
			AstronomyShowId:    1,
			AstronomyShowTitle: "Andromeda",
			PlanetariumDome:    api.PlanetariumDome{Id: 2, Name: "Main Dome", Rows: 25, SeatsInRow: 25, Capacity: 625},
			TicketsAvailable:   623,
			TakenPlaces:        []api.TakenPlace{{Row: 1, Seat: 1}, {Row: 25, Seat: 25}},
		}
		if diff := cmp.Diff(want, decodeJSON[api.ShowSessionDetail](t, w)); diff != "" {
			t.Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("create with unknown dome", func(t *testing.T) {
		sessionRepo := new(mocks.MockShowSessionRepo)
		sessionRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrRecordNotFound)

		app := newTestApplication(t, func(a *Application) {
			a.sessionRepo = sessionRepo
		})

		w, r := executeRequest(t, http.MethodPost, "/show-sessions",
			api.CreateShowSessionRequest{AstronomyShow: 1, PlanetariumDome: 42, ShowTime: showTime})

		app.CreateShowSession(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		sessionRepo := new(mocks.MockShowSessionRepo)
		sessionRepo.On("Delete", mock.Anything, 3).Return(nil)
		sessionRepo.On("Delete", mock.Anything, 4).Return(domain.ErrRecordNotFound)
		sessionRepo.On("Delete", mock.Anything, 5).Return(errors.New("database error"))

		app := newTestApplication(t, func(a *Application) {
			a.sessionRepo = sessionRepo
		})

		for id, want := range map[string]int{
			"3": http.StatusNoContent,
			"4": http.StatusNotFound,
			"5": http.StatusInternalServerError,
		} {
			w, r := executeRequest(t, http.MethodDelete, "/show-sessions/"+id, nil)
			r = withURLParams(r, map[string]string{"sessionId": id})

			app.DeleteShowSession(w, r)

			assert.Equal(t, want, w.Code, "session %s", id)
		}
	})
}
