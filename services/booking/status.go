package booking

import (
	"context"

	"carrental/models"
	"carrental/utils"

	"go.uber.org/zap"
)

// UpdateStatus applies a state-machine transition with its side effects:
// confirmed writes status only, paid also records the payment, cancelled
// delegates to the transactional cancellation path.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus, paymentID string) (*models.Booking, error) {
	if !status.Valid() {
		return nil, newError(CodeInvalid, "unknown booking status %q", status)
	}

	b, err := s.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}

	switch status {
	case models.BookingCancelled:
		return s.CancelBooking(ctx, bookingID, "")
	case models.BookingPaid:
		return s.markPaid(b, paymentID)
	case models.BookingConfirmed:
		if !b.Status.CanTransitionTo(models.BookingConfirmed) {
			return nil, newError(CodeConflict, "cannot confirm a %s booking", b.Status)
		}
		if err := s.Repo.SetStatus(bookingID, models.BookingConfirmed); err != nil {
			return nil, newError(CodeInternal, "failed to update booking status: %v", err)
		}
		b.Status = models.BookingConfirmed
		s.notifyConfirmed(b)
		return b, nil
	default:
		return nil, newError(CodeConflict, "cannot transition back to %s", status)
	}
}

// ConfirmBooking transitions a pending booking to confirmed.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.UpdateStatus(ctx, bookingID, models.BookingConfirmed, "")
}

// RecordCashPayment marks a confirmed booking as paid without Stripe.
func (s *DefaultBookingService) RecordCashPayment(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}
	return s.markPaid(b, "cash")
}

// CompletePayment marks a confirmed booking as paid with the provider's
// payment identifier. A booking that already carries a different payment
// identifier is rejected; repeating the same identifier is a no-op.
func (s *DefaultBookingService) CompletePayment(ctx context.Context, bookingID, paymentID string) (*models.Booking, error) {
	b, err := s.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.PaymentID != "" && b.PaymentID != paymentID {
		return nil, newError(CodeConflict, "payment identifier mismatch for booking %s", bookingID)
	}
	if b.Status == models.BookingPaid {
		return b, nil
	}
	return s.markPaid(b, paymentID)
}

// notifyConfirmed emails the customer best-effort; a mail failure never
// fails the confirmation itself.
func (s *DefaultBookingService) notifyConfirmed(b *models.Booking) {
	usr, err := s.UserRepo.GetByID(b.UserID)
	if err != nil || usr == nil {
		utils.GetLogger().Warn("could not resolve user for confirmation email",
			zap.String("bookingID", b.ID), zap.Error(err))
		return
	}
	go func(email, bookingID string, amount float64) {
		if err := utils.SendBookingConfirmationEmail(email, bookingID, amount); err != nil {
			utils.GetLogger().Warn("confirmation email failed",
				zap.String("bookingID", bookingID), zap.Error(err))
		}
	}(usr.Email, b.ID, b.TotalAmount)
}

func (s *DefaultBookingService) markPaid(b *models.Booking, paymentID string) (*models.Booking, error) {
	if !b.Status.CanTransitionTo(models.BookingPaid) {
		return nil, newError(CodeConflict, "cannot mark a %s booking as paid", b.Status)
	}
	if err := s.Repo.MarkPaid(b.ID, paymentID); err != nil {
		return nil, newError(CodeInternal, "failed to record payment: %v", err)
	}

	utils.GetLogger().Info("Booking paid",
		zap.String("bookingID", b.ID),
		zap.String("paymentID", paymentID))

	b.Status = models.BookingPaid
	b.IsPaid = true
	b.PaymentID = paymentID
	return b, nil
}
