package app

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/healthcheck", app.GetHealth)
	r.Get("/openapi.json", app.GetOpenAPISpec)

	if app.config.Storage.Driver == "local" && app.config.Storage.Dir != "" {
		prefix := strings.TrimSuffix(app.config.Storage.BaseURL, "/") + "/"
		fs := http.StripPrefix(prefix, http.FileServer(http.Dir(app.config.Storage.Dir)))
		r.Handle(prefix+"*", fs)
	}

	r.Post("/users", app.RegisterUser)
	r.Post("/sessions", app.Login)
	r.Delete("/sessions", app.Logout)

	r.Group(func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Get("/users/me", app.GetCurrentUser)

		r.Get("/show-themes", app.ListShowThemes)
		r.With(app.requireStaff).Post("/show-themes", app.CreateShowTheme)

		r.Get("/astronomy-shows", app.ListAstronomyShows)
		r.With(app.requireStaff).Post("/astronomy-shows", app.CreateAstronomyShow)
		r.Get("/astronomy-shows/{showId}", app.GetAstronomyShow)
		r.With(app.requireStaff).Post("/astronomy-shows/{showId}/image", app.UploadAstronomyShowImage)

		r.Get("/planetarium-domes", app.ListPlanetariumDomes)
		r.With(app.requireStaff).Post("/planetarium-domes", app.CreatePlanetariumDome)
		r.Get("/planetarium-domes/{domeId}", app.GetPlanetariumDome)
		r.With(app.requireStaff).Put("/planetarium-domes/{domeId}", app.UpdatePlanetariumDome)

		r.Get("/show-sessions", app.ListShowSessions)
		r.With(app.requireStaff).Post("/show-sessions", app.CreateShowSession)
		r.Get("/show-sessions/{sessionId}", app.GetShowSession)
		r.With(app.requireStaff).Delete("/show-sessions/{sessionId}", app.DeleteShowSession)

		r.Get("/reservations", app.ListReservations)
		r.Post("/reservations", app.CreateReservation)
		r.Get("/reservations/{reservationId}", app.GetReservation)
		r.Delete("/reservations/{reservationId}", app.DeleteReservation)
		r.Get("/reservations/{reservationId}/tickets/{ticketId}/qr", app.GetTicketQRCode)
	})

	return r
}
