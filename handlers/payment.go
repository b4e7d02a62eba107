package handlers

import (
	"io"
	"net/http"

	"carrental/models"
	"carrental/services/payment"
	"carrental/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the Stripe checkout endpoints and the webhook.
type PaymentHandler struct {
	Service payment.PaymentService
}

// NewPaymentHandler builds a PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreateCheckoutSession handles POST /api/payment/create-checkout-session.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var input models.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	url, err := h.Service.CreateCheckoutSession(c.Request.Context(), input)
	if err != nil {
		utils.GetLogger().Error("checkout session failed",
			zap.String("bookingID", input.BookingID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create checkout session", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}

// VerifyPayment handles POST /api/payment/verify-payment.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var input models.VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Service.VerifyPayment(c.Request.Context(), input.SessionID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Payment verification failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment verified",
		"booking": b,
	})
}

// Webhook handles POST /webhook. Stripe signs the raw body, so it must be
// read before any JSON binding touches it.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "unable to read request body", "")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := h.Service.HandleWebhookEvent(c.Request.Context(), payload, signature); err != nil {
		utils.GetLogger().Error("webhook processing failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "webhook error", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
