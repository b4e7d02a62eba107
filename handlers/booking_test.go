package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carrental/models"
	"carrental/services/booking"
	"carrental/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookingService embeds the interface so each test overrides only the
// methods it exercises.
type stubBookingService struct {
	booking.BookingService

	createFn func(ctx context.Context, userID, carID string, in models.BookingInput) (*models.Booking, error)
	cancelFn func(ctx context.Context, bookingID, actingUserID string) (*models.Booking, error)
	updateFn func(ctx context.Context, bookingID string, status models.BookingStatus, paymentID string) (*models.Booking, error)
	carIDsFn func(now time.Time) ([]string, error)
}

func (s *stubBookingService) CreateBooking(ctx context.Context, userID, carID string, in models.BookingInput) (*models.Booking, error) {
	return s.createFn(ctx, userID, carID, in)
}

func (s *stubBookingService) CancelBooking(ctx context.Context, bookingID, actingUserID string) (*models.Booking, error) {
	return s.cancelFn(ctx, bookingID, actingUserID)
}

func (s *stubBookingService) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus, paymentID string) (*models.Booking, error) {
	return s.updateFn(ctx, bookingID, status, paymentID)
}

func (s *stubBookingService) UnavailableCarIDs(now time.Time) ([]string, error) {
	return s.carIDsFn(now)
}

func newBookingRouter(svc booking.BookingService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc, utils.GetLogger())

	auth := func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
	}
	r.POST("/api/booking/create-booking/:carId", auth, h.CreateBooking)
	r.POST("/api/booking/cancel-booking/:id", auth, h.CancelBooking)
	r.PATCH("/api/booking/update-booking/:bookingId", auth, h.UpdateStatus)
	r.GET("/api/booking/unavailable", h.UnavailableCars)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingHandler(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(ctx context.Context, userID, carID string, in models.BookingInput) (*models.Booking, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "car-1", carID)
			return &models.Booking{ID: "b-1", UserID: userID, CarID: carID, Status: models.BookingPending}, nil
		},
	}
	r := newBookingRouter(svc, "user-1")

	w := doJSON(t, r, http.MethodPost, "/api/booking/create-booking/car-1", gin.H{
		"startDate":   "2026-06-05T00:00:00Z",
		"endDate":     "2026-06-10T00:00:00Z",
		"totalAmount": 200,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Booking models.Booking `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "b-1", resp.Booking.ID)
}

func TestCreateBookingHandlerConflict(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(ctx context.Context, userID, carID string, in models.BookingInput) (*models.Booking, error) {
			return nil, &booking.Error{Code: booking.CodeConflict, Message: "car is already booked for the selected dates"}
		},
	}
	r := newBookingRouter(svc, "user-1")

	w := doJSON(t, r, http.MethodPost, "/api/booking/create-booking/car-1", gin.H{
		"startDate":   "2026-06-05T00:00:00Z",
		"endDate":     "2026-06-10T00:00:00Z",
		"totalAmount": 200,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateBookingHandlerBadPayload(t *testing.T) {
	svc := &stubBookingService{}
	r := newBookingRouter(svc, "user-1")

	w := doJSON(t, r, http.MethodPost, "/api/booking/create-booking/car-1", gin.H{
		"startDate": "not-a-date",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelBookingHandlerAlreadyCancelled(t *testing.T) {
	svc := &stubBookingService{
		cancelFn: func(ctx context.Context, bookingID, actingUserID string) (*models.Booking, error) {
			return nil, booking.ErrAlreadyCancelled
		},
	}
	r := newBookingRouter(svc, "user-1")

	w := doJSON(t, r, http.MethodPost, "/api/booking/cancel-booking/b-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Booking not found or already cancelled.", resp.Message)
}

func TestCancelBookingHandler(t *testing.T) {
	svc := &stubBookingService{
		cancelFn: func(ctx context.Context, bookingID, actingUserID string) (*models.Booking, error) {
			assert.Equal(t, "b-1", bookingID)
			assert.Equal(t, "user-1", actingUserID)
			return &models.Booking{ID: bookingID, Status: models.BookingCancelled}, nil
		},
	}
	r := newBookingRouter(svc, "user-1")

	w := doJSON(t, r, http.MethodPost, "/api/booking/cancel-booking/b-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestUpdateStatusHandlerConflict(t *testing.T) {
	svc := &stubBookingService{
		updateFn: func(ctx context.Context, bookingID string, status models.BookingStatus, paymentID string) (*models.Booking, error) {
			return nil, &booking.Error{Code: booking.CodeConflict, Message: "cannot mark a pending booking as paid"}
		},
	}
	r := newBookingRouter(svc, "user-1")

	w := doJSON(t, r, http.MethodPatch, "/api/booking/update-booking/b-1", gin.H{
		"status": "paid",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUnavailableCarsHandler(t *testing.T) {
	svc := &stubBookingService{
		carIDsFn: func(now time.Time) ([]string, error) {
			return []string{"car-1", "car-3"}, nil
		},
	}
	r := newBookingRouter(svc, "")

	w := doJSON(t, r, http.MethodGet, "/api/booking/unavailable", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success           bool     `json:"success"`
		UnavailableCarIDs []string `json:"unavailableCarIds"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"car-1", "car-3"}, resp.UnavailableCarIDs)
}
