package booking

import (
	"context"

	"carrental/models"
	"carrental/utils"

	"go.uber.org/zap"
)

// CancelBooking cancels a booking and, in the same transaction, releases the
// car and detaches the booking from the user's list. When actingUserID is
// non-empty the booking must belong to that user. Cancelling an already
// cancelled booking returns ErrAlreadyCancelled and runs no cleanup twice;
// a paid booking is terminal and cannot be cancelled at all.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID, actingUserID string) (*models.Booking, error) {
	b, err := s.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}
	if actingUserID != "" && b.UserID != actingUserID {
		return nil, newError(CodeNotFound, "booking with id %s not found", bookingID)
	}
	if b.Status == models.BookingCancelled {
		return nil, ErrAlreadyCancelled
	}
	if !b.Status.CanTransitionTo(models.BookingCancelled) {
		return nil, newError(CodeConflict, "cannot cancel a %s booking", b.Status)
	}

	if err := s.Repo.CancelWithCleanup(ctx, b); err != nil {
		return nil, newError(CodeInternal, "failed to cancel booking: %v", err)
	}

	utils.GetLogger().Info("Booking cancelled",
		zap.String("bookingID", bookingID),
		zap.String("carID", b.CarID))

	b.Status = models.BookingCancelled
	return b, nil
}

// DeleteCancelledBooking hard-deletes a booking that is already cancelled.
// The transaction repeats the car/user cleanup defensively in case the
// cancellation path never ran it.
func (s *DefaultBookingService) DeleteCancelledBooking(ctx context.Context, bookingID string) error {
	b, err := s.GetBookingByID(bookingID)
	if err != nil {
		return err
	}
	if b.Status != models.BookingCancelled {
		return newError(CodeConflict, "only cancelled bookings can be deleted")
	}

	if err := s.Repo.DeleteWithCleanup(ctx, b); err != nil {
		return newError(CodeInternal, "failed to delete booking: %v", err)
	}

	utils.GetLogger().Info("Cancelled booking deleted", zap.String("bookingID", bookingID))
	return nil
}
