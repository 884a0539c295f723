package domain

import "errors"

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrNothingSelected      = errors.New("cannot confirm a booking with nothing selected")
	ErrSessionNotActive     = errors.New("no active booking session")
	ErrKindMismatch         = errors.New("operation does not apply to this service kind")
	ErrSeatAlreadyBooked    = errors.New("seat is already booked")
	ErrInvalidSeat          = errors.New("seat label is outside the seating grid")
	ErrUnknownSlot          = errors.New("time slot is not offered for this service")
	ErrUnknownBookingStatus = errors.New("unknown booking status")
)
