package models

// CheckoutInput is the request payload for creating a Stripe checkout session.
type CheckoutInput struct {
	BookingID string  `json:"bookingId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

// VerifyPaymentInput is the request payload for verifying a checkout session.
type VerifyPaymentInput struct {
	SessionID string `json:"sessionId" binding:"required"`
}
