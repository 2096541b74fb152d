package domain

import "time"

// HallType represents the kind of hall
type HallType string

const (
	HallTypeConference HallType = "conference"
	HallTypeMini       HallType = "mini"
)

// Hall represents a bookable conference hall.
// Halls are never deleted: deactivation (IsActive=false) stops new bookings
// but does not touch existing ones.
type Hall struct {
	ID          int64
	Name        string
	Type        HallType
	Capacity    int
	Description string
	Facilities  []string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AcceptsBookings returns true if the hall may receive new bookings
func (h *Hall) AcceptsBookings() bool {
	return h.IsActive
}

// ValidHallType reports whether t is one of the known hall types
func ValidHallType(t HallType) bool {
	return t == HallTypeConference || t == HallTypeMini
}
