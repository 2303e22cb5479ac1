package booking

import "errors"

var (
	ErrInvalidInput    = errors.New("truck id, load id and price are required")
	ErrBookingNotFound = errors.New("booking not found")
)
