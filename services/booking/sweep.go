package booking

import (
	"context"
	"time"

	"carrental/utils"

	"go.uber.org/zap"
)

// UnavailableCarIDs returns cars with a confirmed booking spanning now.
func (s *DefaultBookingService) UnavailableCarIDs(now time.Time) ([]string, error) {
	return s.Repo.ActiveCarIDsAt(now)
}

// ExpireOverdue cancels bookings whose end date has passed and which never
// reached the paid or cancelled terminal state. Each booking goes through the
// full transactional cancellation so cars are released and user lists stay in
// sync, unlike a bare bulk status update. Failures are logged and skipped;
// the selection predicate excludes already-cancelled bookings so the next run
// picks up whatever was missed.
func (s *DefaultBookingService) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	logger := utils.GetLogger()

	overdue, err := s.Repo.FindOverdue(now)
	if err != nil {
		return 0, newError(CodeInternal, "failed to find overdue bookings: %v", err)
	}

	cancelled := 0
	for i := range overdue {
		b := &overdue[i]
		if err := s.Repo.CancelWithCleanup(ctx, b); err != nil {
			logger.Error("ExpireOverdue: failed to cancel booking",
				zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		cancelled++
	}

	if cancelled > 0 {
		logger.Info("ExpireOverdue: auto-cancelled overdue bookings", zap.Int("count", cancelled))
	}
	return cancelled, nil
}
