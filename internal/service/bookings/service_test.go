package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	bookingRepo "github.com/aryanakulan-rgb/conferencehall-allocation/internal/infra/storage/booking"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/integrations/directoryservice"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/bookings/models"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/types"
)

type fakeBookingRepository struct {
	booking *domain.Booking
	list    []*domain.Booking
	getErr  error

	updatedStatus  *domain.BookingStatus
	updatedRemarks *string
	deletedID      int64
}

func (f *fakeBookingRepository) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeBookingRepository) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.list, nil
}

func (f *fakeBookingRepository) GetByHallWithFilter(_ context.Context, _ domain.HallScheduleFilter) ([]*domain.Booking, error) {
	return f.list, nil
}

func (f *fakeBookingRepository) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus, remarks *string) error {
	f.updatedStatus = &status
	f.updatedRemarks = remarks
	return nil
}

func (f *fakeBookingRepository) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return nil
}

type fakeAuditRepository struct {
	entries []*domain.AuditEntry
}

func (f *fakeAuditRepository) Append(_ context.Context, entry *domain.AuditEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

type fakeDirectory struct {
	profiles map[int64]*directoryservice.UserProfile
	calls    int
}

func (f *fakeDirectory) GetUserWithGracefulDegradation(_ context.Context, userID int64) (*directoryservice.UserProfile, error) {
	f.calls++
	if profile, ok := f.profiles[userID]; ok {
		return profile, nil
	}
	return nil, directoryservice.ErrServiceDegraded
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

func sampleBooking(t *testing.T, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:        5,
		HallID:    1,
		UserID:    10,
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local),
		StartTime: ts(t, "09:00"),
		EndTime:   ts(t, "10:00"),
		Purpose:   "Планёрка",
		Status:    status,
	}
}

func newService(repo *fakeBookingRepository, audit *fakeAuditRepository, dir *fakeDirectory) *Service {
	if audit == nil {
		audit = &fakeAuditRepository{}
	}
	if dir == nil {
		dir = &fakeDirectory{}
	}
	return NewService(repo, audit, dir, nopLogger{})
}

func TestGetByID_AccessControl(t *testing.T) {
	repo := &fakeBookingRepository{booking: sampleBooking(t, domain.StatusPending)}
	svc := newService(repo, nil, nil)

	t.Run("owner can read", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 5, 10, false)
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
	})

	t.Run("admin can read", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 5, 99, true)
		require.NoError(t, err)
	})

	t.Run("stranger denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 5, 99, false)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeBookingRepository{getErr: bookingRepo.ErrBookingNotFound}
	svc := newService(repo, nil, nil)

	_, err := svc.GetByID(context.Background(), 5, 10, false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_AccessControl(t *testing.T) {
	repo := &fakeBookingRepository{list: []*domain.Booking{sampleBooking(t, domain.StatusApproved)}}
	svc := newService(repo, nil, nil)

	t.Run("own history", func(t *testing.T) {
		resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
			UserID: 10, RequesterID: 10,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 1)
	})

	t.Run("foreign history requires admin", func(t *testing.T) {
		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
			UserID: 10, RequesterID: 20,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		status := "cancelled"
		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
			UserID: 10, RequesterID: 10, Status: &status,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestApprove(t *testing.T) {
	t.Run("pending approved and audited", func(t *testing.T) {
		repo := &fakeBookingRepository{booking: sampleBooking(t, domain.StatusPending)}
		audit := &fakeAuditRepository{}
		svc := newService(repo, audit, nil)

		resp, err := svc.Approve(context.Background(), 5, 77)

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusApproved), resp.Status)
		require.NotNil(t, repo.updatedStatus)
		assert.Equal(t, domain.StatusApproved, *repo.updatedStatus)
		assert.Nil(t, repo.updatedRemarks)
		require.Len(t, audit.entries, 1)
		assert.Equal(t, domain.AuditActionApproveBooking, audit.entries[0].Action)
		assert.Equal(t, int64(77), audit.entries[0].UserID)
	})

	t.Run("terminal statuses locked", func(t *testing.T) {
		for _, status := range []domain.BookingStatus{domain.StatusApproved, domain.StatusRejected} {
			repo := &fakeBookingRepository{booking: sampleBooking(t, status)}
			svc := newService(repo, nil, nil)

			_, err := svc.Approve(context.Background(), 5, 77)
			assert.ErrorIs(t, err, ErrInvalidState, "status=%s", status)
			assert.Nil(t, repo.updatedStatus)
		}
	})
}

func TestReject(t *testing.T) {
	t.Run("remarks required", func(t *testing.T) {
		repo := &fakeBookingRepository{booking: sampleBooking(t, domain.StatusPending)}
		svc := newService(repo, nil, nil)

		for _, remarks := range []string{"", "   ", "\t\n"} {
			_, err := svc.Reject(context.Background(), 5, &models.RejectBookingRequest{AdminID: 77, Remarks: remarks})
			assert.ErrorIs(t, err, ErrRemarksRequired, "remarks=%q", remarks)
		}
		assert.Nil(t, repo.updatedStatus)
	})

	t.Run("rejected with trimmed remarks and audited", func(t *testing.T) {
		repo := &fakeBookingRepository{booking: sampleBooking(t, domain.StatusPending)}
		audit := &fakeAuditRepository{}
		svc := newService(repo, audit, nil)

		resp, err := svc.Reject(context.Background(), 5, &models.RejectBookingRequest{
			AdminID: 77,
			Remarks: "  зал занят под собрание дирекции  ",
		})

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusRejected), resp.Status)
		require.NotNil(t, resp.Remarks)
		assert.Equal(t, "зал занят под собрание дирекции", *resp.Remarks)
		require.NotNil(t, repo.updatedRemarks)
		assert.Equal(t, "зал занят под собрание дирекции", *repo.updatedRemarks)
		require.Len(t, audit.entries, 1)
		assert.Equal(t, domain.AuditActionRejectBooking, audit.entries[0].Action)
	})

	t.Run("non-pending locked", func(t *testing.T) {
		repo := &fakeBookingRepository{booking: sampleBooking(t, domain.StatusApproved)}
		svc := newService(repo, nil, nil)

		_, err := svc.Reject(context.Background(), 5, &models.RejectBookingRequest{AdminID: 77, Remarks: "причина"})
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestCancel(t *testing.T) {
	t.Run("owner cancels pending", func(t *testing.T) {
		repo := &fakeBookingRepository{booking: sampleBooking(t, domain.StatusPending)}
		audit := &fakeAuditRepository{}
		svc := newService(repo, audit, nil)

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{RequesterID: 10})

		require.NoError(t, err)
		assert.Equal(t, int64(5), repo.deletedID)
		assert.Empty(t, audit.entries)
	})

	t.Run("owner cannot cancel approved", func(t *testing.T) {
		repo := &fakeBookingRepository{booking: sampleBooking(t, domain.StatusApproved)}
		svc := newService(repo, nil, nil)

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{RequesterID: 10})
		assert.ErrorIs(t, err, ErrInvalidState)
		assert.Zero(t, repo.deletedID)
	})

	t.Run("stranger denied", func(t *testing.T) {
		repo := &fakeBookingRepository{booking: sampleBooking(t, domain.StatusPending)}
		svc := newService(repo, nil, nil)

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{RequesterID: 99})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin force delete is audited", func(t *testing.T) {
		repo := &fakeBookingRepository{booking: sampleBooking(t, domain.StatusApproved)}
		audit := &fakeAuditRepository{}
		svc := newService(repo, audit, nil)

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{RequesterID: 99, IsAdmin: true})

		require.NoError(t, err)
		assert.Equal(t, int64(5), repo.deletedID)
		require.Len(t, audit.entries, 1)
		assert.Equal(t, domain.AuditActionForceDelete, audit.entries[0].Action)
		assert.Equal(t, int64(99), audit.entries[0].UserID)
	})
}

func TestGetHallSchedule_EnrichWithDirectory(t *testing.T) {
	first := sampleBooking(t, domain.StatusApproved)
	second := sampleBooking(t, domain.StatusPending)
	second.ID = 6
	second.StartTime = ts(t, "11:00")
	second.EndTime = ts(t, "12:00")

	repo := &fakeBookingRepository{list: []*domain.Booking{first, second}}
	dir := &fakeDirectory{profiles: map[int64]*directoryservice.UserProfile{
		10: {ID: 10, Name: "Арвинд Кумар", SectionName: "Отдел разработки"},
	}}
	svc := newService(repo, nil, dir)

	resp, err := svc.GetHallSchedule(context.Background(), &models.GetHallScheduleRequest{
		HallID:      1,
		EnrichUsers: true,
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	for _, b := range resp.Bookings {
		require.NotNil(t, b.UserName)
		assert.Equal(t, "Арвинд Кумар", *b.UserName)
		require.NotNil(t, b.SectionName)
		assert.Equal(t, "Отдел разработки", *b.SectionName)
	}
	// Оба бронирования одного пользователя - профиль запрошен один раз
	assert.Equal(t, 1, dir.calls)
}

func TestGetHallSchedule_DirectoryDegraded(t *testing.T) {
	repo := &fakeBookingRepository{list: []*domain.Booking{sampleBooking(t, domain.StatusApproved)}}
	dir := &fakeDirectory{} // все запросы падают
	svc := newService(repo, nil, dir)

	resp, err := svc.GetHallSchedule(context.Background(), &models.GetHallScheduleRequest{
		HallID:      1,
		EnrichUsers: true,
	})

	// Недоступность справочника не валит листинг
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Nil(t, resp.Bookings[0].UserName)
}

func TestGetHallSchedule_InvalidDate(t *testing.T) {
	repo := &fakeBookingRepository{}
	svc := newService(repo, nil, nil)

	bad := "10-03-2026"
	_, err := svc.GetHallSchedule(context.Background(), &models.GetHallScheduleRequest{
		HallID: 1,
		Date:   &bad,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
