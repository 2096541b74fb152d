package domain

import "time"

// Audit actions recorded for administrator operations
const (
	AuditActionApproveBooking = "approve_booking"
	AuditActionRejectBooking  = "reject_booking"
	AuditActionForceDelete    = "force_delete_booking"
	AuditActionCreateHall     = "create_hall"
	AuditActionUpdateHall     = "update_hall"
	AuditActionDeactivateHall = "deactivate_hall"
)

// AuditEntry is an append-only record of an administrator action
type AuditEntry struct {
	ID        int64
	UserID    int64
	Action    string
	Details   string
	CreatedAt time.Time
}
