package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
)

type fakeBookingRepo struct {
	counts map[domain.BookingStatus]int64
	usage  []domain.HallUsage
	err    error
}

func (f *fakeBookingRepo) CountByStatus(_ context.Context) (map[domain.BookingStatus]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.counts, nil
}

func (f *fakeBookingRepo) CountActivePerHall(_ context.Context) ([]domain.HallUsage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.usage, nil
}

type fakeAuditRepo struct {
	entries  []*domain.AuditEntry
	gotLimit uint64
	err      error
}

func (f *fakeAuditRepo) ListRecent(_ context.Context, limit uint64) ([]*domain.AuditEntry, error) {
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < uint64(len(f.entries)) {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDashboard(t *testing.T) {
	repo := &fakeBookingRepo{
		counts: map[domain.BookingStatus]int64{
			domain.StatusPending:  4,
			domain.StatusApproved: 9,
			domain.StatusRejected: 3,
		},
		usage: []domain.HallUsage{
			{HallID: 1, Bookings: 8},
			{HallID: 2, Bookings: 5},
		},
	}
	svc := New(repo, &fakeAuditRepo{}, nopLogger{})

	resp, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(16), resp.Total)
	assert.Equal(t, int64(4), resp.Pending)
	assert.Equal(t, int64(9), resp.Approved)
	assert.Equal(t, int64(3), resp.Rejected)
	assert.Equal(t, int64(12), resp.Processed)
	assert.InDelta(t, 75.0, resp.ApprovalRate, 0.001)
	require.Len(t, resp.HallUsage, 2)
	assert.Equal(t, int64(1), resp.HallUsage[0].HallID)
	assert.Equal(t, int64(8), resp.HallUsage[0].Bookings)
}

func TestDashboard_NoProcessedBookings(t *testing.T) {
	// pending в знаменатель не входят: доля одобрений без решений - ноль,
	// а не деление на ноль
	repo := &fakeBookingRepo{
		counts: map[domain.BookingStatus]int64{domain.StatusPending: 7},
	}
	svc := New(repo, &fakeAuditRepo{}, nopLogger{})

	resp, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Total)
	assert.Equal(t, int64(0), resp.Processed)
	assert.Zero(t, resp.ApprovalRate)
}

func TestDashboard_Empty(t *testing.T) {
	repo := &fakeBookingRepo{counts: map[domain.BookingStatus]int64{}}
	svc := New(repo, &fakeAuditRepo{}, nopLogger{})

	resp, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.Zero(t, resp.ApprovalRate)
	assert.Empty(t, resp.HallUsage)
}

func TestDashboard_RateRounding(t *testing.T) {
	repo := &fakeBookingRepo{
		counts: map[domain.BookingStatus]int64{
			domain.StatusApproved: 1,
			domain.StatusRejected: 2,
		},
	}
	svc := New(repo, &fakeAuditRepo{}, nopLogger{})

	resp, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.InDelta(t, 33.33, resp.ApprovalRate, 0.001)
}

func TestDashboard_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("db down")}
	svc := New(repo, &fakeAuditRepo{}, nopLogger{})

	_, err := svc.Dashboard(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestRecentActivity(t *testing.T) {
	audit := &fakeAuditRepo{
		entries: []*domain.AuditEntry{
			{ID: 2, UserID: 99, Action: domain.AuditActionApproveBooking, Details: "booking_id=7"},
			{ID: 1, UserID: 99, Action: domain.AuditActionCreateHall, Details: "hall_id=3"},
		},
	}
	svc := New(&fakeBookingRepo{}, audit, nopLogger{})

	resp, err := svc.RecentActivity(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, int64(2), resp.Entries[0].ID)
	assert.Equal(t, domain.AuditActionApproveBooking, resp.Entries[0].Action)
	assert.Equal(t, uint64(10), audit.gotLimit)
}

func TestRecentActivity_LimitBounds(t *testing.T) {
	audit := &fakeAuditRepo{}
	svc := New(&fakeBookingRepo{}, audit, nopLogger{})

	_, err := svc.RecentActivity(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), audit.gotLimit)

	_, err = svc.RecentActivity(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, uint64(200), audit.gotLimit)
}

func TestRecentActivity_RepositoryError(t *testing.T) {
	audit := &fakeAuditRepo{err: errors.New("db down")}
	svc := New(&fakeBookingRepo{}, audit, nopLogger{})

	_, err := svc.RecentActivity(context.Background(), 10)
	assert.ErrorIs(t, err, ErrInternal)
}
