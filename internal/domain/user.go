package domain

import "time"

type UserRole string

const (
	UserRoleDriver  UserRole = "DRIVER"
	UserRoleShipper UserRole = "SHIPPER"
)

type User struct {
	ID          string
	PhoneNumber string
	Name        string
	Role        UserRole
	CreatedAt   time.Time
}

// PendingMatches is the last match list presented to a phone number, kept so
// a later "book N" selection resolves to a concrete resource id.
type PendingMatches struct {
	Kind        string    `json:"kind"` // "truck" or "load"
	OwnID       string    `json:"own_id"`
	MatchIDs    []string  `json:"match_ids"`
	PresentedAt time.Time `json:"presented_at"`
}
