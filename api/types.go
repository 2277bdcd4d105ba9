// Package api holds the JSON contract of the HTTP API. The types mirror the
// schemas in openapi.yaml.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Name     string `json:"name" validate:"required,notblank,max=150"`
	Password string `json:"password" validate:"required,password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsStaff   bool      `json:"isStaff"`
	CreatedAt time.Time `json:"createdAt"`
}

type ShowTheme struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type CreateShowThemeRequest struct {
	Name string `json:"name" validate:"required,notblank,max=150"`
}

type ShowThemeListResponse struct {
	ShowThemes []ShowTheme `json:"showThemes"`
}

type AstronomyShowSummary struct {
	Id          int      `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	ShowThemes  []string `json:"showThemes"`
}

type AstronomyShowDetail struct {
	Id          int         `json:"id"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	Image       *string     `json:"image"`
	ShowThemes  []ShowTheme `json:"showThemes"`
}

type AstronomyShowListResponse struct {
	AstronomyShows []AstronomyShowSummary `json:"astronomyShows"`
}

type GetAstronomyShowsParams struct {
	ShowThemes *[]int  `json:"showThemes" validate:"omitempty,max=50,dive,min=1"`
	Title      *string `json:"title" validate:"omitempty,max=150"`
}

type CreateAstronomyShowRequest struct {
	Title       string  `json:"title" validate:"required,notblank,max=150"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	ShowThemes  []int   `json:"showThemes" validate:"omitempty,max=50,unique,dive,min=1"`
}

type ShowImageResponse struct {
	Id    int    `json:"id"`
	Image string `json:"image"`
}

type PlanetariumDome struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seatsInRow"`
	Capacity   int    `json:"capacity"`
}

type PlanetariumDomeRequest struct {
	Name       string `json:"name" validate:"required,notblank,max=150"`
	Rows       int    `json:"rows" validate:"min=1,max=500"`
	SeatsInRow int    `json:"seatsInRow" validate:"min=1,max=500"`
}

type PlanetariumDomeListResponse struct {
	PlanetariumDomes []PlanetariumDome `json:"planetariumDomes"`
}

type ShowSessionSummary struct {
	Id                  int       `json:"id"`
	ShowTime            time.Time `json:"showTime"`
	AstronomyShowId     int       `json:"astronomyShowId"`
	AstronomyShowTitle  string    `json:"astronomyShowTitle"`
	AstronomyShowImage  *string   `json:"astronomyShowImage"`
	PlanetariumDomeId   int       `json:"planetariumDomeId"`
	PlanetariumDomeName string    `json:"planetariumDomeName"`
	Capacity            int       `json:"capacity"`
	TicketsAvailable    int       `json:"ticketsAvailable"`
}

type TakenPlace struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type ShowSessionDetail struct {
	Id                 int             `json:"id"`
	ShowTime           time.Time       `json:"showTime"`
	AstronomyShowId    int             `json:"astronomyShowId"`
	AstronomyShowTitle string          `json:"astronomyShowTitle"`
	AstronomyShowImage *string         `json:"astronomyShowImage"`
	PlanetariumDome    PlanetariumDome `json:"planetariumDome"`
	TicketsAvailable   int             `json:"ticketsAvailable"`
	TakenPlaces        []TakenPlace    `json:"takenPlaces"`
}

type ShowSessionListResponse struct {
	ShowSessions []ShowSessionSummary `json:"showSessions"`
}

type GetShowSessionsParams struct {
	Date *openapi_types.Date `json:"date"`
	Show *int                `json:"show" validate:"omitempty,min=1"`
}

type CreateShowSessionRequest struct {
	AstronomyShow   int       `json:"astronomyShow" validate:"required,min=1"`
	PlanetariumDome int       `json:"planetariumDome" validate:"required,min=1"`
	ShowTime        time.Time `json:"showTime" validate:"required"`
}

type TicketRequest struct {
	Row         int `json:"row"`
	Seat        int `json:"seat"`
	ShowSession int `json:"showSession" validate:"required,min=1"`
}

type CreateReservationRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,max=50,dive"`
}

type Ticket struct {
	Id          int `json:"id"`
	Row         int `json:"row"`
	Seat        int `json:"seat"`
	ShowSession int `json:"showSession"`
}

type Reservation struct {
	Id        int       `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Tickets   []Ticket  `json:"tickets"`
}

type ReservationListResponse struct {
	Reservations []Reservation `json:"reservations"`
	Metadata     Metadata      `json:"metadata"`
}

type GetReservationsParams struct {
	Page     *int `json:"page" validate:"omitempty,min=1,max=10000"`
	PageSize *int `json:"pageSize" validate:"omitempty,min=1,max=100"`
}
