package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	v, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return v
}

func TestBooking_Overlaps_HalfOpenIntervals(t *testing.T) {
	b := &Booking{
		StartTime: mustTime(t, "10:00"),
		EndTime:   mustTime(t, "11:00"),
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"identical", "10:00", "11:00", true},
		{"contains booking", "09:00", "12:00", true},
		{"inside booking", "10:15", "10:45", true},
		{"overlaps start", "09:30", "10:30", true},
		{"overlaps end", "10:30", "11:30", true},
		{"ends at booking start", "09:00", "10:00", false},
		{"starts at booking end", "11:00", "12:00", false},
		{"disjoint before", "08:00", "09:00", false},
		{"disjoint after", "12:00", "13:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(mustTime(t, tt.start), mustTime(t, tt.end)))
		})
	}
}

func TestBooking_StatusPredicates(t *testing.T) {
	tests := []struct {
		status   BookingStatus
		active   bool
		pending  bool
		terminal bool
	}{
		{StatusPending, true, true, false},
		{StatusApproved, true, false, true},
		{StatusRejected, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.active, b.IsActive())
			assert.Equal(t, tt.pending, b.IsPending())
			assert.Equal(t, tt.terminal, b.IsTerminal())
		})
	}
}

func TestBooking_CanBeEditedBy(t *testing.T) {
	b := &Booking{UserID: 10, Status: StatusPending}

	assert.True(t, b.CanBeEditedBy(10))
	assert.False(t, b.CanBeEditedBy(11))

	b.Status = StatusApproved
	assert.False(t, b.CanBeEditedBy(10))
}

func TestParseDate_LocalCivilDate(t *testing.T) {
	got, err := ParseDate("2026-03-10")

	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 10, got.Day())
	// Календарная дата локальная, а не полночь UTC: иначе западнее
	// Гринвича она съезжает на предыдущие сутки
	assert.Equal(t, time.Local, got.Location())

	_, err = ParseDate("10.03.2026")
	assert.Error(t, err)
}

func TestConflictError_MatchesSentinel(t *testing.T) {
	b := &Booking{
		ID:        42,
		Status:    StatusApproved,
		StartTime: mustTime(t, "09:00"),
		EndTime:   mustTime(t, "10:00"),
	}

	err := NewConflictError(b)

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, int64(42), err.BookingID)
	assert.Contains(t, err.Error(), "approved")
	assert.Contains(t, err.Error(), "09:00")
}
