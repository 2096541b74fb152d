package models

import "time"

// HallUsageStat количество активных бронирований по залу
type HallUsageStat struct {
	HallID   int64 `json:"hallId"`
	Bookings int64 `json:"bookings"`
}

// DashboardResponse сводка для административной панели
type DashboardResponse struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
	Processed int64 `json:"processed"`

	// Доля одобренных среди обработанных заявок, в процентах.
	// 0, если обработанных заявок ещё нет.
	ApprovalRate float64 `json:"approvalRate"`

	HallUsage []HallUsageStat `json:"hallUsage"`
}

// AuditEntryResponse запись журнала действий администраторов
type AuditEntryResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuditLogResponse последние записи журнала, от новых к старым
type AuditLogResponse struct {
	Entries []AuditEntryResponse `json:"entries"`
}
