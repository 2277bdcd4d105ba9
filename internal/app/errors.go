package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
	appvalidator "github.com/metinatakli/planetarium-reservation-system/internal/validator"
)

const (
	ErrInternalServer      = "The server encountered a problem and could not process your request"
	ErrNotFound            = "The requested resource not found"
	ErrMethodNotAllowed    = "The %s method is not supported for this resource"
	ErrUnauthorizedAccess  = "You must be authenticated to access this resource"
	ErrForbidden           = "You do not have permission to perform this action"
	ErrInvalidCredentials  = "Invalid authentication credentials"
	ErrFailedValidation    = "One or more fields are invalid"
	ErrInvalidInputData    = "invalid input data"
	ErrShowSessionNotFound = "show session referenced by tickets[%d] not found"
)

func (app *Application) logError(r *http.Request, err error) {
	app.contextGetLogger(r).Error(err.Error())
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, fmt.Sprintf(ErrMethodNotAllowed, r.Method))
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusConflict, err.Error())
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrUnauthorizedAccess)
}

func (app *Application) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrInvalidCredentials)
}

func (app *Application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusForbidden, ErrForbidden)
}

func (app *Application) validationErrorResponse(w http.ResponseWriter, r *http.Request, errs []api.ValidationError) {
	resp := api.ValidationErrorResponse{
		Message:          ErrFailedValidation,
		ValidationErrors: errs,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
	}

	err := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.badRequestResponse(w, r, err)
		return
	}

	errs := make([]api.ValidationError, len(validationErrs))
	for i, e := range validationErrs {
		errs[i] = api.ValidationError{
			Field: appvalidator.FieldPath(e),
			Issue: appvalidator.ValidationMessage(e),
		}
	}

	app.validationErrorResponse(w, r, errs)
}

// ticketErrorResponse maps a rejected reservation to its HTTP response:
// out of range → 422, seat taken → 409, unknown show session → 404,
// missing owner → 401.
func (app *Application) ticketErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	index := 0
	var ticketErr *domain.TicketError
	if errors.As(err, &ticketErr) {
		index = ticketErr.Index
	}

	var rangeErr *domain.TicketRangeError
	var takenErr *domain.SeatTakenError

	switch {
	case errors.As(err, &rangeErr):
		app.validationErrorResponse(w, r, []api.ValidationError{{
			Field: fmt.Sprintf("tickets[%d].%s", index, rangeErr.Field),
			Issue: rangeErr.Error(),
		}})
	case errors.As(err, &takenErr):
		app.conflictResponse(w, r, takenErr)
	case errors.Is(err, domain.ErrUserNotFound):
		app.unauthorizedAccessResponse(w, r)
	case errors.Is(err, domain.ErrRecordNotFound):
		app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf(ErrShowSessionNotFound, index))
	case errors.Is(err, domain.ErrNoTickets):
		app.validationErrorResponse(w, r, []api.ValidationError{{
			Field: "tickets",
			Issue: fmt.Sprintf(appvalidator.ErrMinItems, "1"),
		}})
	default:
		app.serverErrorResponse(w, r, err)
	}
}

// rejectionReason labels a failed booking for metrics.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTicketOutOfRange):
		return "out_of_range"
	case errors.Is(err, domain.ErrSeatTaken):
		return "seat_taken"
	case errors.Is(err, domain.ErrNoTickets):
		return "no_tickets"
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrRecordNotFound):
		return "not_found"
	default:
		return "error"
	}
}
