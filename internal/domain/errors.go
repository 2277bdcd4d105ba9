package domain

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid authentication credentials")
	ErrRecordNotFound     = errors.New("record not found")
	ErrEditConflict       = errors.New("edit conflict")
	ErrTicketOutOfRange   = errors.New("ticket is outside of the dome seating grid")
	ErrSeatTaken          = errors.New("seat is already taken")
	ErrNoTickets          = errors.New("reservation must contain at least one ticket")
	ErrUserNotFound       = errors.New("reservation owner does not exist")
)
