package cancelBooking

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"roomBooker/internal/booking"
	"roomBooker/internal/http-server/handlers/booking/cancelBooking/mocks"
	"roomBooker/internal/lib/logger/handlers/slogdiscard"
	"roomBooker/internal/storage"
	"testing"
)

func TestCancelBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		bookingID      string
		mockSetup      func(canceller *mocks.BookingCanceller)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Success",
			bookingID: "3",
			mockSetup: func(canceller *mocks.BookingCanceller) {
				canceller.On("CancelBooking", int64(3)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Invalid booking id format",
			bookingID:      "x",
			mockSetup:      func(*mocks.BookingCanceller) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid booking id format"}`,
		},
		{
			name:      "Booking not found",
			bookingID: "3",
			mockSetup: func(canceller *mocks.BookingCanceller) {
				canceller.On("CancelBooking", int64(3)).Return(fmt.Errorf("booking.CancelBooking: %w", storage.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:      "Booking already elapsed",
			bookingID: "3",
			mockSetup: func(canceller *mocks.BookingCanceller) {
				canceller.On("CancelBooking", int64(3)).Return(fmt.Errorf("booking.CancelBooking: %w", booking.ErrAlreadyElapsed))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"booking end time has already passed"}`,
		},
		{
			name:      "Internal server error",
			bookingID: "3",
			mockSetup: func(canceller *mocks.BookingCanceller) {
				canceller.On("CancelBooking", int64(3)).Return(errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to cancel booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCanceller := mocks.NewBookingCanceller(t)
			tc.mockSetup(mockCanceller)

			router := chi.NewRouter()
			router.Delete("/bookings/{id}", New(logger, mockCanceller))

			req, err := http.NewRequest("DELETE", "/bookings/"+tc.bookingID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

func TestHandlerWithChiContext(t *testing.T) {
	t.Parallel()

	mockCanceller := mocks.NewBookingCanceller(t)
	handler := New(slogdiscard.NewDiscardLogger(), mockCanceller)

	req, err := http.NewRequest("DELETE", "/", nil)
	require.NoError(t, err)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "123")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	mockCanceller.On("CancelBooking", int64(123)).Return(nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
