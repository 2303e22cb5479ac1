package domain

import "time"

// Booking references exactly one truck and one load. ReferenceID is derived
// deterministically from the pair, so duplicate submissions collapse onto the
// same row.
type Booking struct {
	ID               string
	TruckID          string
	LoadID           string
	Price            float64
	Status           BookingStatus
	PaymentStatus    PaymentStatus
	ReferenceID      string
	PaymentLink      string
	PaymentExpiresAt time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
