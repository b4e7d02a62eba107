package bookingRepo

import (
	"context"
	"errors"
	"time"

	"carrental/models"
)

// ErrOverlappingBooking is returned by CreateWithRefs when the availability
// re-check inside the transaction finds a conflicting booking.
var ErrOverlappingBooking = errors.New("car is already booked for the selected dates")

// BookingRepository defines methods for booking data access. The methods
// taking a context run multi-document transactions; everything else is a
// plain single-collection operation.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves all bookings, newest first.
	GetAll() ([]models.Booking, error)
	// GetByUser retrieves a user's bookings, newest first.
	GetByUser(userID string) ([]models.Booking, error)
	// GetByCar retrieves all bookings referencing a car.
	GetByCar(carID string) ([]models.Booking, error)
	// GetByIDs retrieves the bookings matching the given ids.
	GetByIDs(ids []string) ([]models.Booking, error)

	// CountOverlapping counts non-cancelled bookings for the car whose
	// interval overlaps rng. excludeID, when non-empty, leaves one booking
	// out of the count (used when rescheduling).
	CountOverlapping(carID string, rng models.DateRange, excludeID string) (int64, error)
	// ActiveCarIDsAt returns the car ids with a confirmed booking spanning at.
	ActiveCarIDsAt(at time.Time) ([]string, error)
	// FindOverdue returns bookings whose end date precedes now and whose
	// status is neither paid nor cancelled.
	FindOverdue(now time.Time) ([]models.Booking, error)

	// SetStatus writes only the status field.
	SetStatus(id string, status models.BookingStatus) error
	// MarkPaid writes status=paid, isPaid=true and the payment identifier.
	MarkPaid(id, paymentID string) error
	// SetDates reschedules a booking, optionally moving it to another car.
	SetDates(id string, rng models.DateRange, carID string) error

	// CreateWithRefs atomically re-checks availability, inserts the booking
	// and appends its id to the car's and user's booking lists.
	CreateWithRefs(ctx context.Context, booking *models.Booking) error
	// CancelWithCleanup atomically cancels the booking, releases the car and
	// detaches the booking from the user's list.
	CancelWithCleanup(ctx context.Context, booking *models.Booking) error
	// DeleteWithCleanup atomically deletes the booking document and performs
	// the same car/user cleanup as cancellation.
	DeleteWithCleanup(ctx context.Context, booking *models.Booking) error
}
