package handlers

import (
	"errors"
	"net/http"
	"time"

	"carrental/models"
	"carrental/services/booking"
	"carrental/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler builds a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// bookingErrStatus maps booking service error codes to HTTP statuses so a
// client can tell "pick different dates" (409) from "this car no longer
// exists" (404).
func bookingErrStatus(err error) int {
	switch booking.ErrorCode(err) {
	case booking.CodeUnauthorized:
		return http.StatusUnauthorized
	case booking.CodeForbidden:
		return http.StatusForbidden
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeConflict:
		return http.StatusConflict
	case booking.CodeInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondBookingError(c *gin.Context, err error) {
	utils.JSONError(c, bookingErrStatus(err), err.Error(), "")
}

// CreateBooking handles POST /api/booking/create-booking/:carId.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	userID := c.GetString("userID")
	carID := c.Param("carId")

	newBooking, err := h.Service.CreateBooking(c.Request.Context(), userID, carID, input)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Car Booked Successfully",
		"booking": newBooking,
	})
}

// CancelBooking handles POST /api/booking/cancel-booking/:id.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("id")
	userID := c.GetString("userID")

	_, err := h.Service.CancelBooking(c.Request.Context(), bookingID, userID)
	if errors.Is(err, booking.ErrAlreadyCancelled) {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Booking not found or already cancelled.",
		})
		return
	}
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled successfully.",
	})
}

// DeleteBooking handles DELETE /api/booking/delete-booking/:bookingId.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	bookingID := c.Param("bookingId")

	if err := h.Service.DeleteCancelledBooking(c.Request.Context(), bookingID); err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cancelled booking deleted successfully",
	})
}

// UpdateStatus handles PATCH /api/booking/update-booking/:bookingId.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	bookingID := c.Param("bookingId")

	var input struct {
		Status    models.BookingStatus `json:"status" binding:"required"`
		PaymentID string               `json:"paymentId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdateStatus(c.Request.Context(), bookingID, input.Status, input.PaymentID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": updated})
}

// Reschedule handles POST /api/booking/update-booking/:id (admin date change).
func (h *BookingHandler) Reschedule(c *gin.Context) {
	bookingID := c.Param("id")

	var input struct {
		StartDate time.Time `json:"startDate" binding:"required"`
		EndDate   time.Time `json:"endDate" binding:"required"`
		CarID     string    `json:"carId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rng := models.DateRange{Start: input.StartDate, End: input.EndDate}
	updated, err := h.Service.Reschedule(c.Request.Context(), bookingID, rng, input.CarID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": updated})
}

// GetUserBookings handles GET /api/booking/get-booking.
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	bookings, err := h.Service.GetUserBookings(userID)
	if err != nil {
		h.Logger.Error("failed to fetch user bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error in get Bookings By User", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// GetBookingByID handles GET /api/booking/get-booking-by-id/:id.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	b, err := h.Service.GetBookingByID(c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// GetBookingsByCar handles GET /api/booking/get-booking-by-car/:carId.
func (h *BookingHandler) GetBookingsByCar(c *gin.Context) {
	carID := c.Param("carId")
	if carID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Car id is required", "")
		return
	}

	bookings, err := h.Service.GetBookingsByCar(carID)
	if err != nil {
		h.Logger.Error("failed to fetch bookings by car", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error in getting Booking", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// GetMultiple handles POST /api/booking/get-multiple.
func (h *BookingHandler) GetMultiple(c *gin.Context) {
	var input struct {
		BookingIDs []string `json:"bookingIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking IDs provided", err.Error())
		return
	}

	bookings, err := h.Service.GetMultiple(input.BookingIDs)
	if err != nil {
		h.Logger.Error("failed to fetch bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error getMultipleBooking", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// UnavailableCars handles GET /api/booking/unavailable.
func (h *BookingHandler) UnavailableCars(c *gin.Context) {
	carIDs, err := h.Service.UnavailableCarIDs(time.Now())
	if err != nil {
		h.Logger.Error("failed to fetch unavailable cars", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error unAvailableCars", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"unavailableCarIds": carIDs,
	})
}
