package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired       = "is required"
	ErrMinValue       = "must be at least %s"
	ErrMaxValue       = "must be at most %s"
	ErrSeatLabel      = "must be a seat label between A1 and F10"
	ErrTimeSlot       = "must be a time in HH:MM format"
	ErrDefaultInvalid = "is invalid"
)

var (
	seatLabelRgx = regexp.MustCompile(`^[A-F](10|[1-9])$`)
	timeSlotRgx  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat_label", validateSeatLabel)
	validator.RegisterValidation("time_slot", validateTimeSlot)

	return validator
}

func validateSeatLabel(fl validator.FieldLevel) bool {
	return seatLabelRgx.MatchString(fl.Field().String())
}

func validateTimeSlot(fl validator.FieldLevel) bool {
	return timeSlotRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "seat_label":
		return ErrSeatLabel
	case "time_slot":
		return ErrTimeSlot
	default:
		return ErrDefaultInvalid
	}
}
