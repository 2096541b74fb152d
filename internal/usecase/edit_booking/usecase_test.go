package edit_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	bookingRepo "github.com/aryanakulan-rgb/conferencehall-allocation/internal/infra/storage/booking"
	hallRepo "github.com/aryanakulan-rgb/conferencehall-allocation/internal/infra/storage/hall"
	checkConflict "github.com/aryanakulan-rgb/conferencehall-allocation/internal/usecase/check_conflict"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/types"
)

type fakeBookingRepository struct {
	booking   *domain.Booking
	getErr    error
	updateErr error
	updated   *domain.Booking
}

func (f *fakeBookingRepository) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeBookingRepository) UpdateFields(_ context.Context, b *domain.Booking) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = b
	return nil
}

type fakeHallRepository struct {
	hall *domain.Hall
	err  error
}

func (f *fakeHallRepository) GetByID(_ context.Context, _ int64) (*domain.Hall, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.hall, nil
}

type fakeChecker struct {
	resp *checkConflict.Response
	got  *checkConflict.Request
}

func (f *fakeChecker) Execute(_ context.Context, req *checkConflict.Request) (*checkConflict.Response, error) {
	f.got = req
	return f.resp, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func pendingBooking(t *testing.T) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:        5,
		HallID:    1,
		UserID:    10,
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local),
		StartTime: ts(t, "09:00"),
		EndTime:   ts(t, "10:00"),
		Purpose:   "Планёрка",
		Status:    domain.StatusPending,
	}
}

func activeHall() *domain.Hall {
	return &domain.Hall{ID: 1, Name: "Малый зал", Type: domain.HallTypeMini, Capacity: 8, IsActive: true}
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		BookingID:   5,
		RequesterID: 10,
		HallID:      1,
		Date:        time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local),
		StartTime:   ts(t, "14:00"),
		EndTime:     ts(t, "15:30"),
		Purpose:     "Перенесённая планёрка",
	}
}

func TestExecute_Success_UpdatesFields(t *testing.T) {
	bookings := &fakeBookingRepository{booking: pendingBooking(t)}
	halls := &fakeHallRepository{hall: activeHall()}
	checker := &fakeChecker{resp: &checkConflict.Response{HasConflict: false}}
	uc := NewUseCase(bookings, halls, checker, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, "14:00", resp.StartTime.String())
	assert.Equal(t, "15:30", resp.EndTime.String())
	assert.Equal(t, "Перенесённая планёрка", resp.Purpose)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	require.NotNil(t, bookings.updated)
	assert.Equal(t, "Перенесённая планёрка", bookings.updated.Purpose)
}

func TestExecute_ConflictCheckExcludesOwnID(t *testing.T) {
	bookings := &fakeBookingRepository{booking: pendingBooking(t)}
	halls := &fakeHallRepository{hall: activeHall()}
	checker := &fakeChecker{resp: &checkConflict.Response{HasConflict: false}}
	uc := NewUseCase(bookings, halls, checker, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	require.NotNil(t, checker.got)
	require.NotNil(t, checker.got.ExcludeID)
	assert.Equal(t, int64(5), *checker.got.ExcludeID)
}

func TestExecute_NotOwner(t *testing.T) {
	bookings := &fakeBookingRepository{booking: pendingBooking(t)}
	halls := &fakeHallRepository{hall: activeHall()}
	checker := &fakeChecker{resp: &checkConflict.Response{HasConflict: false}}
	uc := NewUseCase(bookings, halls, checker, fakeTxManager{}, nopLogger{})

	req := validRequest(t)
	req.RequesterID = 99

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, bookings.updated)
}

func TestExecute_NotPending(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusApproved, domain.StatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			b := pendingBooking(t)
			b.Status = status
			bookings := &fakeBookingRepository{booking: b}
			halls := &fakeHallRepository{hall: activeHall()}
			checker := &fakeChecker{resp: &checkConflict.Response{HasConflict: false}}
			uc := NewUseCase(bookings, halls, checker, fakeTxManager{}, nopLogger{})

			_, err := uc.Execute(context.Background(), validRequest(t))

			assert.ErrorIs(t, err, ErrInvalidState)
			assert.Nil(t, bookings.updated)
		})
	}
}

func TestExecute_Conflict(t *testing.T) {
	conflicting := &domain.ConflictError{
		BookingID: 77,
		Status:    domain.StatusPending,
		StartTime: ts(t, "14:00"),
		EndTime:   ts(t, "16:00"),
	}
	bookings := &fakeBookingRepository{booking: pendingBooking(t)}
	halls := &fakeHallRepository{hall: activeHall()}
	checker := &fakeChecker{resp: &checkConflict.Response{HasConflict: true, Conflicting: conflicting}}
	uc := NewUseCase(bookings, halls, checker, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, domain.ErrSlotConflict)
	assert.Nil(t, bookings.updated)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := &fakeBookingRepository{getErr: bookingRepo.ErrBookingNotFound}
	halls := &fakeHallRepository{hall: activeHall()}
	checker := &fakeChecker{resp: &checkConflict.Response{HasConflict: false}}
	uc := NewUseCase(bookings, halls, checker, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_TargetHallChecks(t *testing.T) {
	t.Run("hall not found", func(t *testing.T) {
		bookings := &fakeBookingRepository{booking: pendingBooking(t)}
		halls := &fakeHallRepository{err: hallRepo.ErrHallNotFound}
		checker := &fakeChecker{}
		uc := NewUseCase(bookings, halls, checker, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrHallNotFound)
	})

	t.Run("hall not active", func(t *testing.T) {
		hall := activeHall()
		hall.IsActive = false
		bookings := &fakeBookingRepository{booking: pendingBooking(t)}
		halls := &fakeHallRepository{hall: hall}
		checker := &fakeChecker{}
		uc := NewUseCase(bookings, halls, checker, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrHallNotActive)
	})
}

func TestExecute_SlotTakenAtWriteTime(t *testing.T) {
	bookings := &fakeBookingRepository{booking: pendingBooking(t), updateErr: bookingRepo.ErrSlotTaken}
	halls := &fakeHallRepository{hall: activeHall()}
	checker := &fakeChecker{resp: &checkConflict.Response{HasConflict: false}}
	uc := NewUseCase(bookings, halls, checker, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, domain.ErrSlotConflict)
}
