package handlers

import (
	"net/http"

	"carrental/services/booking"
	"carrental/services/user"
	"carrental/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes elevated-privilege operations: user listing, fleet-wide
// booking views and the admin side of the booking state machine.
type AdminHandler struct {
	UserService    user.UserService
	BookingService booking.BookingService
}

// NewAdminHandler builds an AdminHandler.
func NewAdminHandler(userSvc user.UserService, bookingSvc booking.BookingService) *AdminHandler {
	return &AdminHandler{UserService: userSvc, BookingService: bookingSvc}
}

// GetAllUsers handles GET /api/admin/get-all-users.
func (h *AdminHandler) GetAllUsers(c *gin.Context) {
	users, err := h.UserService.GetAllCustomers()
	if err != nil {
		utils.GetLogger().Error("failed to fetch users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "An error occurred while fetching users", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

// GetAllBookings handles GET /api/admin/get-bookings.
func (h *AdminHandler) GetAllBookings(c *gin.Context) {
	bookings, err := h.BookingService.GetAllBookings()
	if err != nil {
		utils.GetLogger().Error("failed to fetch bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error in getting bookings", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// GetProfile handles GET /api/admin/get-user.
func (h *AdminHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Please login", "")
		return
	}

	usr, bookings, err := h.UserService.GetProfile(userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "User not found", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"user":     usr,
		"bookings": bookings,
	})
}

// UpdateProfile handles POST /api/admin/update-profile.
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	var input struct {
		PhoneNumber     string `json:"phoneNumber"`
		ProfileImageURL string `json:"profileImageUrl"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	usr, err := h.UserService.UpdateProfile(c.GetString("userID"), input.PhoneNumber, input.ProfileImageURL)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "User not found", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"user":    usr,
	})
}

// ConfirmBooking handles POST /api/admin/confirm-booking.
func (h *AdminHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		BookingID string `json:"bookingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	confirmed, err := h.BookingService.ConfirmBooking(c.Request.Context(), input.BookingID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking confirmed",
		"booking": confirmed,
	})
}

// CancelBooking handles POST /api/admin/admin-cancel.
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	var input struct {
		BookingID string `json:"bookingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	// Admin path: no owner check on the booking.
	if _, err := h.BookingService.CancelBooking(c.Request.Context(), input.BookingID, ""); err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled successfully.",
	})
}

// PayCash handles POST /api/admin/pay-cash.
func (h *AdminHandler) PayCash(c *gin.Context) {
	var input struct {
		BookingID string `json:"bookingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	paid, err := h.BookingService.RecordCashPayment(c.Request.Context(), input.BookingID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cash payment recorded",
		"booking": paid,
	})
}
