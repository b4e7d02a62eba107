package booking

import (
	"context"
	"time"

	"carrental/models"
)

// BookingService governs the booking lifecycle: availability, creation,
// status transitions, transactional cancellation/deletion and the expiry
// sweep.
type BookingService interface {
	// IsCarAvailable reports whether no non-cancelled booking on the car
	// overlaps the requested range.
	IsCarAvailable(carID string, rng models.DateRange) (bool, error)

	// CreateBooking inserts a pending booking for the customer, guarded by
	// role, car existence and availability.
	CreateBooking(ctx context.Context, userID, carID string, in models.BookingInput) (*models.Booking, error)

	// CancelBooking cancels a booking with full car/user cleanup. When
	// actingUserID is non-empty the booking must belong to that user.
	CancelBooking(ctx context.Context, bookingID, actingUserID string) (*models.Booking, error)

	// DeleteCancelledBooking hard-deletes a booking that is already cancelled.
	DeleteCancelledBooking(ctx context.Context, bookingID string) error

	// UpdateStatus applies a state-machine transition with its side effects.
	UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus, paymentID string) (*models.Booking, error)

	// ConfirmBooking transitions a pending booking to confirmed.
	ConfirmBooking(ctx context.Context, bookingID string) (*models.Booking, error)

	// RecordCashPayment marks a confirmed booking as paid without Stripe.
	RecordCashPayment(ctx context.Context, bookingID string) (*models.Booking, error)

	// CompletePayment marks a confirmed booking as paid with the provider's
	// payment identifier, rejecting identifier mismatches.
	CompletePayment(ctx context.Context, bookingID, paymentID string) (*models.Booking, error)

	// Reschedule moves a booking to new dates and optionally another car.
	Reschedule(ctx context.Context, bookingID string, rng models.DateRange, carID string) (*models.Booking, error)

	// GetBookingByID returns a single booking.
	GetBookingByID(id string) (*models.Booking, error)
	// GetUserBookings returns a user's bookings, newest first.
	GetUserBookings(userID string) ([]models.Booking, error)
	// GetBookingsByCar returns all bookings referencing a car.
	GetBookingsByCar(carID string) ([]models.Booking, error)
	// GetMultiple returns the bookings matching the given ids.
	GetMultiple(ids []string) ([]models.Booking, error)
	// GetAllBookings returns every booking, newest first.
	GetAllBookings() ([]models.Booking, error)

	// UnavailableCarIDs returns cars with a confirmed booking spanning now.
	UnavailableCarIDs(now time.Time) ([]string, error)

	// ExpireOverdue cancels bookings past their end date that never reached a
	// terminal state. Best-effort; returns the number cancelled.
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
}
