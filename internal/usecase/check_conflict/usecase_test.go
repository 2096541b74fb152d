package check_conflict

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/ptr"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error

	gotHallID    int64
	gotExcludeID *int64
}

func (f *fakeBookingRepo) ListActiveForSlot(_ context.Context, hallID int64, _ time.Time, excludeID *int64) ([]*domain.Booking, error) {
	f.gotHallID = hallID
	f.gotExcludeID = excludeID
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	v, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return v
}

func booking(t *testing.T, id int64, status domain.BookingStatus, start, end string) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:        id,
		HallID:    1,
		UserID:    10,
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local),
		StartTime: ts(t, start),
		EndTime:   ts(t, end),
		Status:    status,
	}
}

func validRequest(t *testing.T, start, end string) *Request {
	t.Helper()
	return &Request{
		HallID:    1,
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local),
		StartTime: ts(t, start),
		EndTime:   ts(t, end),
	}
}

func TestExecute_NoBookings_NoConflict(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t, "09:00", "10:00"))

	require.NoError(t, err)
	assert.False(t, resp.HasConflict)
	assert.Nil(t, resp.Conflicting)
}

func TestExecute_OverlapDetected(t *testing.T) {
	tests := []struct {
		name         string
		existing     []string // start, end
		reqStart     string
		reqEnd       string
		wantConflict bool
	}{
		{"identical range", []string{"09:00", "10:00"}, "09:00", "10:00", true},
		{"request inside existing", []string{"09:00", "12:00"}, "10:00", "11:00", true},
		{"existing inside request", []string{"10:00", "11:00"}, "09:00", "12:00", true},
		{"partial overlap at start", []string{"09:00", "10:30"}, "10:00", "11:00", true},
		{"partial overlap at end", []string{"10:30", "12:00"}, "10:00", "11:00", true},
		{"back to back before", []string{"09:00", "10:00"}, "10:00", "11:00", false},
		{"back to back after", []string{"11:00", "12:00"}, "10:00", "11:00", false},
		{"disjoint earlier", []string{"08:00", "09:00"}, "10:00", "11:00", false},
		{"disjoint later", []string{"13:00", "14:00"}, "10:00", "11:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{
				bookings: []*domain.Booking{booking(t, 42, domain.StatusApproved, tt.existing[0], tt.existing[1])},
			}
			uc := NewUseCase(repo, nopLogger{})

			resp, err := uc.Execute(context.Background(), validRequest(t, tt.reqStart, tt.reqEnd))

			require.NoError(t, err)
			assert.Equal(t, tt.wantConflict, resp.HasConflict)
			if tt.wantConflict {
				require.NotNil(t, resp.Conflicting)
				assert.Equal(t, int64(42), resp.Conflicting.BookingID)
				assert.Equal(t, domain.StatusApproved, resp.Conflicting.Status)
			}
		})
	}
}

func TestExecute_FirstOverlapWins(t *testing.T) {
	// Репозиторий отдаёт бронирования в порядке start_time ASC
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			booking(t, 1, domain.StatusPending, "09:00", "10:30"),
			booking(t, 2, domain.StatusApproved, "10:00", "11:00"),
		},
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t, "10:00", "12:00"))

	require.NoError(t, err)
	require.True(t, resp.HasConflict)
	assert.Equal(t, int64(1), resp.Conflicting.BookingID)
}

func TestExecute_ExcludeIDPassedToRepo(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, nopLogger{})

	req := validRequest(t, "09:00", "10:00")
	req.ExcludeID = ptr.Ptr(int64(7))

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, repo.gotExcludeID)
	assert.Equal(t, int64(7), *repo.gotExcludeID)
}

func TestExecute_ConflictingErrorUnwrapsToSentinel(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{booking(t, 5, domain.StatusPending, "09:00", "11:00")},
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t, "10:00", "12:00"))

	require.NoError(t, err)
	require.True(t, resp.HasConflict)
	assert.ErrorIs(t, resp.Conflicting, domain.ErrSlotConflict)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"zero hall id", func(r *Request) { r.HallID = 0 }, ErrInvalidInput},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"missing start time", func(r *Request) { r.StartTime = types.TimeString("") }, ErrInvalidInput},
		{"inverted range", func(r *Request) { r.StartTime = ts(t, "11:00"); r.EndTime = ts(t, "10:00") }, ErrInvalidTimeRange},
		{"empty range", func(r *Request) { r.StartTime = ts(t, "10:00"); r.EndTime = ts(t, "10:00") }, ErrInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{}
			uc := NewUseCase(repo, nopLogger{})

			req := validRequest(t, "09:00", "10:00")
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t, "09:00", "10:00"))

	assert.ErrorIs(t, err, ErrInternal)
}
