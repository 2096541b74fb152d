package booking

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/dbmetrics"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/ptr"
)

// capturingExecutor перехватывает сгенерированный SQL, не выполняя его
type capturingExecutor struct {
	queries []string
}

func (e *capturingExecutor) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	e.queries = append(e.queries, query)
	return oneRowResult{}, nil
}

func (e *capturingExecutor) QueryContext(_ context.Context, query string, _ ...interface{}) (*sql.Rows, error) {
	e.queries = append(e.queries, query)
	return nil, errors.New("capture only")
}

func (e *capturingExecutor) QueryRowContext(_ context.Context, query string, _ ...interface{}) *sql.Row {
	e.queries = append(e.queries, query)
	return nil
}

type oneRowResult struct{}

func (oneRowResult) LastInsertId() (int64, error) { return 0, nil }
func (oneRowResult) RowsAffected() (int64, error) { return 1, nil }

// Колонка даты в таблице bookings называется booking_date.
// Запросы с голой колонкой date падают на реальной схеме.
const bareDateColumn = `\bdate\b`

func TestListActiveForSlot_FiltersOnBookingDateColumn(t *testing.T) {
	exec := &capturingExecutor{}
	repo := NewRepository(exec)

	_, _ = repo.ListActiveForSlot(context.Background(), 1, time.Now(), ptr.Ptr(int64(5)))

	require.Len(t, exec.queries, 1)
	assert.Contains(t, exec.queries[0], "booking_date =")
	assert.NotRegexp(t, bareDateColumn, exec.queries[0])
}

func TestGetByUserID_OrdersByBookingDateColumn(t *testing.T) {
	exec := &capturingExecutor{}
	repo := NewRepository(exec)

	_, _ = repo.GetByUserID(context.Background(), 10, nil)

	require.Len(t, exec.queries, 1)
	assert.Contains(t, exec.queries[0], "ORDER BY booking_date DESC")
	assert.NotRegexp(t, bareDateColumn, exec.queries[0])
}

func TestGetByHallWithFilter_RangeUsesBookingDateColumn(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	exec := &capturingExecutor{}
	repo := NewRepository(exec)

	_, _ = repo.GetByHallWithFilter(context.Background(), domain.HallScheduleFilter{
		HallID:    1,
		StartDate: &day,
		EndDate:   ptr.Ptr(day.AddDate(0, 0, 7)),
	})

	require.Len(t, exec.queries, 1)
	assert.Contains(t, exec.queries[0], "booking_date >=")
	assert.Contains(t, exec.queries[0], "booking_date <=")
	assert.NotRegexp(t, bareDateColumn, exec.queries[0])
}

func TestUpdateFields_SetsBookingDateColumn(t *testing.T) {
	exec := &capturingExecutor{}
	repo := NewRepository(exec)

	err := repo.UpdateFields(context.Background(), &domain.Booking{ID: 7, HallID: 1})

	require.NoError(t, err)
	require.Len(t, exec.queries, 1)
	assert.Contains(t, exec.queries[0], "booking_date =")
	assert.NotRegexp(t, bareDateColumn, exec.queries[0])
}

func TestListActiveForSlot_LocksRowsInsideTransaction(t *testing.T) {
	exec := &capturingExecutor{}
	repo := NewRepository(exec)
	ctx := dbmetrics.WithExecutor(context.Background(), exec)

	_, _ = repo.ListActiveForSlot(ctx, 1, time.Now(), nil)

	require.Len(t, exec.queries, 1)
	assert.Contains(t, exec.queries[0], "FOR UPDATE")
}
