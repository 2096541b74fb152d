package edit_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/middleware"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	editBooking "github.com/aryanakulan-rgb/conferencehall-allocation/internal/usecase/edit_booking"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/types"
)

type fakeUseCase struct {
	resp *editBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *editBooking.Request) (*editBooking.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func editRequest(t *testing.T) *http.Request {
	t.Helper()
	body := `{"hallId":1,"date":"2026-03-10","startTime":"10:00","endTime":"11:00","purpose":"Планёрка"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/bookings/7", strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, "10")
	return mux.SetURLVars(req, map[string]string{"bookingId": "7"})
}

func TestHandle_Conflict_ReturnsConflictingBookingDetails(t *testing.T) {
	conflictErr := domain.NewConflictError(&domain.Booking{
		ID:        42,
		Status:    domain.StatusApproved,
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
	})
	handler := NewHandler(&fakeUseCase{err: conflictErr}, nopLogger{})

	rec := httptest.NewRecorder()
	middleware.Auth(nopLogger{})(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, editRequest(t))

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp conflictResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Error)
	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
}

func TestHandle_InvalidState_ReturnsPlainConflict(t *testing.T) {
	handler := NewHandler(&fakeUseCase{err: editBooking.ErrInvalidState}, nopLogger{})

	rec := httptest.NewRecorder()
	middleware.Auth(nopLogger{})(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, editRequest(t))

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotContains(t, resp, "bookingId")
}
