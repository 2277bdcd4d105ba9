package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
	"github.com/metinatakli/planetarium-reservation-system/internal/events"
	"github.com/oapi-codegen/runtime"
)

func (app *Application) ListReservations(w http.ResponseWriter, r *http.Request) {
	var params api.GetReservationsParams

	err := runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &params.Page)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid page parameter"))
		return
	}

	err = runtime.BindQueryParameter("form", true, false, "pageSize", r.URL.Query(), &params.PageSize)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid pageSize parameter"))
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	user := app.contextGetUser(r)

	reservations, metadata, err := app.reservationRepo.GetAllByUserId(r.Context(), user.ID, toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ReservationListResponse{
		Reservations: make([]api.Reservation, len(reservations)),
		Metadata:     toApiMetadata(metadata),
	}
	for i := range reservations {
		resp.Reservations[i] = toApiReservation(&reservations[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CreateReservation books every requested ticket or none of them. The tickets
// are checked against the current seating first, then the repository repeats
// the same check inside its transaction with the sessions locked.
func (app *Application) CreateReservation(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateReservationRequest

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

	user := app.contextGetUser(r)

	reservation := domain.Reservation{
		UserID:  user.ID,
		Tickets: make([]domain.Ticket, len(input.Tickets)),
	}
	for i, t := range input.Tickets {
		reservation.Tickets[i] = domain.Ticket{
			Row:           t.Row,
			Seat:          t.Seat,
			ShowSessionID: t.ShowSession,
		}
	}

	err = app.validateTickets(r.Context(), reservation)
	if err != nil {
		app.metrics.recordRejected(r.Context(), rejectionReason(err))
		app.ticketErrorResponse(w, r, err)
		return
	}

	candidates := reservation.Tickets
	err = app.reservationRepo.Create(r.Context(), &reservation,
		func(sessions map[int]domain.ShowSession, taken []domain.Ticket) error {
			return domain.ValidateTickets(candidates, sessions, taken)
		})
	if err != nil {
		if errors.Is(err, domain.ErrSeatTaken) {
			logger.Warn("seat taken while booking", "error", err)
		}

		app.metrics.recordRejected(r.Context(), rejectionReason(err))
		app.ticketErrorResponse(w, r, err)
		return
	}

	logger.Info("reservation created", "reservationId", reservation.ID, "tickets", len(reservation.Tickets))
	app.metrics.recordCreated(r.Context(), len(reservation.Tickets))

	app.notifyReservationCreated(r, user, reservation)

	err = app.writeJSON(w, http.StatusCreated, toApiReservation(&reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// validateTickets checks the batch against the sessions and tickets as they
// are now, without locking anything.
func (app *Application) validateTickets(ctx context.Context, reservation domain.Reservation) error {
	if len(reservation.Tickets) == 0 {
		return domain.ErrNoTickets
	}

	sessionIDs := reservation.SessionIDs()

	sessions, err := app.sessionRepo.GetByIds(ctx, sessionIDs)
	if err != nil {
		return err
	}

	taken, err := app.reservationRepo.GetTicketsBySessionIds(ctx, sessionIDs)
	if err != nil {
		return err
	}

	return domain.ValidateTickets(reservation.Tickets, sessions, taken)
}

// notifyReservationCreated sends the confirmation email and publishes the
// reservation.created event. Failures are only logged.
func (app *Application) notifyReservationCreated(r *http.Request, user *domain.User, reservation domain.Reservation) {
	logger := app.contextGetLogger(r)

	app.background(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		data := map[string]any{
			"name":          user.Name,
			"reservationID": reservation.ID,
			"tickets":       reservation.Tickets,
		}

		err := app.mailer.Send(user.Email, "reservation_confirmed.tmpl", data)
		if err != nil {
			logger.Error("failed to send reservation confirmation email", "reservationId", reservation.ID, "error", err)
		}

		err = app.publisher.PublishReservationCreated(ctx, toReservationCreatedEvent(reservation))
		if err != nil {
			logger.Error("failed to publish reservation created event", "reservationId", reservation.ID, "error", err)
		}
	})
}

func (app *Application) GetReservation(w http.ResponseWriter, r *http.Request) {
	reservationId, err := app.readIDParam(r, "reservationId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := app.contextGetUser(r)

	reservation, err := app.reservationRepo.GetByIdAndUserId(r.Context(), reservationId, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiReservation(reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	reservationId, err := app.readIDParam(r, "reservationId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := app.contextGetUser(r)

	err = app.reservationRepo.Delete(r.Context(), reservationId, user.ID)
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

func toPagination(params api.GetReservationsParams) domain.Pagination {
	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	return pagination
}

func toApiMetadata(m *domain.Metadata) api.Metadata {
	if m == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  m.CurrentPage,
		FirstPage:    m.FirstPage,
		LastPage:     m.LastPage,
		PageSize:     m.PageSize,
		TotalRecords: m.TotalRecords,
	}
}

func toApiReservation(reservation *domain.Reservation) api.Reservation {
	tickets := make([]api.Ticket, len(reservation.Tickets))
	for i, t := range reservation.Tickets {
		tickets[i] = api.Ticket{
			Id:          t.ID,
			Row:         t.Row,
			Seat:        t.Seat,
			ShowSession: t.ShowSessionID,
		}
	}

	return api.Reservation{
		Id:        reservation.ID,
		CreatedAt: reservation.CreatedAt,
		Tickets:   tickets,
	}
}

func toReservationCreatedEvent(reservation domain.Reservation) events.ReservationCreated {
	tickets := make([]events.TicketPayload, len(reservation.Tickets))
	for i, t := range reservation.Tickets {
		tickets[i] = events.TicketPayload{
			ID:            t.ID,
			ShowSessionID: t.ShowSessionID,
			Row:           t.Row,
			Seat:          t.Seat,
		}
	}

	return events.ReservationCreated{
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		Tickets:       tickets,
		CreatedAt:     reservation.CreatedAt,
	}
}
