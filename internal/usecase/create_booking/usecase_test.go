package create_booking

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
	created   *domain.Booking
	createErr error
}

func (f *fakeBookingRepository) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *b
	created.ID = 100
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
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
	err  error
	got  *checkConflict.Request
}

func (f *fakeChecker) Execute(_ context.Context, req *checkConflict.Request) (*checkConflict.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
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

func activeHall() *domain.Hall {
	return &domain.Hall{
		ID:       1,
		Name:     "Большой конференц-зал",
		Type:     domain.HallTypeConference,
		Capacity: 40,
		IsActive: true,
	}
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		OwnerID:   10,
		HallID:    1,
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local),
		StartTime: ts(t, "09:00"),
		EndTime:   ts(t, "10:30"),
		Purpose:   "Планёрка отдела",
	}
}

func newUseCase(bookings *fakeBookingRepository, halls *fakeHallRepository, checker *fakeChecker, tx *fakeTxManager) *UseCase {
	return NewUseCase(bookings, halls, checker, tx, nopLogger{})
}

func TestExecute_Success_CreatesPending(t *testing.T) {
	bookings := &fakeBookingRepository{}
	halls := &fakeHallRepository{hall: activeHall()}
	checker := &fakeChecker{resp: &checkConflict.Response{HasConflict: false}}
	tx := &fakeTxManager{}

	resp, err := newUseCase(bookings, halls, checker, tx).Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(10), resp.UserID)
	assert.Equal(t, 1, tx.calls)
	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.StatusPending, bookings.created.Status)
}

func TestExecute_Conflict_ReturnsConflictError(t *testing.T) {
	conflicting := &domain.ConflictError{
		BookingID: 42,
		Status:    domain.StatusApproved,
		StartTime: ts(t, "09:00"),
		EndTime:   ts(t, "10:00"),
	}
	bookings := &fakeBookingRepository{}
	halls := &fakeHallRepository{hall: activeHall()}
	checker := &fakeChecker{resp: &checkConflict.Response{HasConflict: true, Conflicting: conflicting}}

	_, err := newUseCase(bookings, halls, checker, &fakeTxManager{}).Execute(context.Background(), validRequest(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotConflict)

	var ce *domain.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, int64(42), ce.BookingID)
	assert.Nil(t, bookings.created)
}

func TestExecute_SlotTakenAtWriteTime(t *testing.T) {
	// Конкурентная запись проскочила мимо проверки - exclusion-констрейнт
	// схемы срабатывает при вставке
	bookings := &fakeBookingRepository{createErr: bookingRepo.ErrSlotTaken}
	halls := &fakeHallRepository{hall: activeHall()}
	checker := &fakeChecker{resp: &checkConflict.Response{HasConflict: false}}

	_, err := newUseCase(bookings, halls, checker, &fakeTxManager{}).Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, domain.ErrSlotConflict)
}

func TestExecute_HallNotFound(t *testing.T) {
	bookings := &fakeBookingRepository{}
	halls := &fakeHallRepository{err: hallRepo.ErrHallNotFound}
	checker := &fakeChecker{}

	_, err := newUseCase(bookings, halls, checker, &fakeTxManager{}).Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrHallNotFound)
}

func TestExecute_HallNotActive(t *testing.T) {
	hall := activeHall()
	hall.IsActive = false
	bookings := &fakeBookingRepository{}
	halls := &fakeHallRepository{hall: hall}
	checker := &fakeChecker{}
	tx := &fakeTxManager{}

	_, err := newUseCase(bookings, halls, checker, tx).Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrHallNotActive)
	assert.Equal(t, 0, tx.calls)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"zero owner", func(r *Request) { r.OwnerID = 0 }, ErrInvalidInput},
		{"zero hall", func(r *Request) { r.HallID = 0 }, ErrInvalidInput},
		{"empty purpose", func(r *Request) { r.Purpose = "   " }, ErrInvalidInput},
		{"inverted range", func(r *Request) { r.StartTime = ts(t, "11:00"); r.EndTime = ts(t, "09:00") }, ErrInvalidTimeRange},
		{"empty range", func(r *Request) { r.EndTime = r.StartTime }, ErrInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &fakeBookingRepository{}
			halls := &fakeHallRepository{hall: activeHall()}
			checker := &fakeChecker{}

			req := validRequest(t)
			tt.mutate(req)

			_, err := newUseCase(bookings, halls, checker, &fakeTxManager{}).Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_CheckerReceivesRequestedSlot(t *testing.T) {
	bookings := &fakeBookingRepository{}
	halls := &fakeHallRepository{hall: activeHall()}
	checker := &fakeChecker{resp: &checkConflict.Response{HasConflict: false}}

	req := validRequest(t)
	_, err := newUseCase(bookings, halls, checker, &fakeTxManager{}).Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, checker.got)
	assert.Equal(t, req.HallID, checker.got.HallID)
	assert.Equal(t, req.StartTime, checker.got.StartTime)
	assert.Equal(t, req.EndTime, checker.got.EndTime)
	assert.Nil(t, checker.got.ExcludeID)
}
