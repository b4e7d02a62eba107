package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"carrental/config"
	"carrental/models"
	"carrental/services/booking"
	"carrental/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// PaymentService wraps the Stripe checkout flow for bookings.
type PaymentService interface {
	// CreateCheckoutSession opens a Stripe checkout session for a booking and
	// returns the hosted payment URL.
	CreateCheckoutSession(ctx context.Context, in models.CheckoutInput) (string, error)
	// VerifyPayment retrieves a checkout session and, if paid, marks the
	// referenced booking as paid.
	VerifyPayment(ctx context.Context, sessionID string) (*models.Booking, error)
	// HandleWebhookEvent verifies a webhook payload and applies
	// checkout.session.completed events to the booking.
	HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error
}

// StripePaymentService is the production implementation of PaymentService.
type StripePaymentService struct {
	Bookings booking.BookingService
}

// CreateCheckoutSession opens a Stripe checkout session for a booking. The
// booking id travels in the session metadata so the webhook and the verify
// endpoint can find it again.
func (s *StripePaymentService) CreateCheckoutSession(ctx context.Context, in models.CheckoutInput) (string, error) {
	if _, err := s.Bookings.GetBookingByID(in.BookingID); err != nil {
		return "", err
	}

	clientURL := config.AppConfig.ClientURL
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Booking #%s", in.BookingID)),
					},
					// Stripe expects the amount in cents.
					UnitAmount: stripe.Int64(int64(in.Amount * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(clientURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(clientURL + "/payment-cancelled"),
	}
	params.AddMetadata("bookingId", in.BookingID)

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	utils.GetLogger().Info("Checkout session created",
		zap.String("bookingID", in.BookingID),
		zap.String("sessionID", sess.ID))
	return sess.URL, nil
}

// VerifyPayment retrieves a checkout session and, if paid, marks the
// referenced booking as paid with the payment intent id.
func (s *StripePaymentService) VerifyPayment(ctx context.Context, sessionID string) (*models.Booking, error) {
	sess, err := session.Get(sessionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}

	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return nil, fmt.Errorf("payment not completed for session %s", sessionID)
	}

	bookingID := sess.Metadata["bookingId"]
	if bookingID == "" {
		return nil, fmt.Errorf("checkout session %s has no booking reference", sessionID)
	}

	paymentID := ""
	if sess.PaymentIntent != nil {
		paymentID = sess.PaymentIntent.ID
	}
	return s.Bookings.CompletePayment(ctx, bookingID, paymentID)
}

// HandleWebhookEvent verifies the payload signature and applies
// checkout.session.completed events. Other event types are acknowledged and
// ignored.
func (s *StripePaymentService) HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, config.AppConfig.StripeWebhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	if event.Type != "checkout.session.completed" {
		return nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to parse checkout session event: %w", err)
	}

	bookingID := sess.Metadata["bookingId"]
	if bookingID == "" {
		return fmt.Errorf("checkout session %s has no booking reference", sess.ID)
	}

	paymentID := ""
	if sess.PaymentIntent != nil {
		paymentID = sess.PaymentIntent.ID
	}

	if _, err := s.Bookings.CompletePayment(ctx, bookingID, paymentID); err != nil {
		return err
	}

	utils.GetLogger().Info("Webhook payment recorded",
		zap.String("bookingID", bookingID),
		zap.String("sessionID", sess.ID))
	return nil
}
