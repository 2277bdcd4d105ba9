package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
	"github.com/skip2/go-qrcode"
)

const qrCodeSize = 256

func (app *Application) GetTicketQRCode(w http.ResponseWriter, r *http.Request) {
	reservationId, err := app.readIDParam(r, "reservationId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ticketId, err := app.readIDParam(r, "ticketId")
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

	var ticket *domain.Ticket
	for i := range reservation.Tickets {
		if reservation.Tickets[i].ID == ticketId {
			ticket = &reservation.Tickets[i]
			break
		}
	}

	if ticket == nil {
		app.notFoundResponse(w, r)
		return
	}

	png, err := qrcode.Encode(ticketQRContent(reservation.ID, *ticket), qrcode.Medium, qrCodeSize)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func ticketQRContent(reservationId int, t domain.Ticket) string {
	return fmt.Sprintf("planetarium:reservation=%d;ticket=%d;session=%d;row=%d;seat=%d",
		reservationId, t.ID, t.ShowSessionID, t.Row, t.Seat)
}
