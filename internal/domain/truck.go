package domain

import "time"

type Truck struct {
	ID                string
	DriverID          string
	SourceCity        string
	DestinationCity   string
	SourceLat         float64
	SourceLng         float64
	DestLat           float64
	DestLng           float64
	DepartureTime     time.Time
	CapacityTotal     float64
	CapacityAvailable float64
	Status            FreightStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
