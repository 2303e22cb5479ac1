package domain

import "time"

type Load struct {
	ID         string
	ShipperID  string
	PickupCity string
	DropCity   string
	PickupLat  float64
	PickupLng  float64
	DropLat    float64
	DropLng    float64
	Weight     float64
	Category   string
	Deadline   time.Time
	Status     FreightStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
