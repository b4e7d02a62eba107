package cron

import (
	"context"
	"time"

	"carrental/services/booking"
	"carrental/utils"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// expirySchedule runs the overdue sweep once a day at midnight.
const expirySchedule = "0 0 * * *"

// InitExpiryWorker starts the background scheduler that cancels bookings past
// their end date which never reached a terminal state. Returns the scheduler
// so the caller can shut it down.
func InitExpiryWorker(bookingSvc booking.BookingService) (gocron.Scheduler, error) {
	logger := utils.GetLogger()

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	job, err := sched.NewJob(
		gocron.CronJob(expirySchedule, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			count, err := bookingSvc.ExpireOverdue(ctx, time.Now())
			if err != nil {
				logger.Error("expiry sweep failed", zap.Error(err))
				return
			}
			if count > 0 {
				logger.Info("expiry sweep cancelled overdue bookings", zap.Int("count", count))
			}
		}),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, err
	}

	sched.Start()
	logger.Info("expiry worker started",
		zap.String("schedule", expirySchedule),
		zap.String("jobID", job.ID().String()))
	return sched, nil
}
