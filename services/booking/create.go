package booking

import (
	"context"
	"errors"

	bookingRepo "carrental/database/repository/booking"
	"carrental/models"
	"carrental/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking inserts a pending booking for the customer. Guards: a user id
// must be present, admins cannot book, the car must exist and the range must
// be free. The availability check runs twice: once up front for a fast
// rejection and again inside the insert transaction so two concurrent
// requests cannot both slip past the read.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID, carID string, in models.BookingInput) (*models.Booking, error) {
	if userID == "" {
		return nil, newError(CodeUnauthorized, "please login to book")
	}

	rng := models.DateRange{Start: in.StartDate, End: in.EndDate}
	if err := rng.Validate(); err != nil {
		return nil, newError(CodeInvalid, "%v", err)
	}
	if in.TotalAmount <= 0 {
		return nil, newError(CodeInvalid, "total amount must be positive")
	}

	usr, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return nil, newError(CodeInternal, "failed to fetch user: %v", err)
	}
	if usr == nil {
		return nil, newError(CodeUnauthorized, "user with id %s not found", userID)
	}
	if usr.IsAdmin() {
		return nil, newError(CodeForbidden, "admin cannot book a car")
	}

	car, err := s.CarRepo.GetByID(carID)
	if err != nil {
		return nil, newError(CodeInternal, "failed to fetch car: %v", err)
	}
	if car == nil {
		return nil, newError(CodeNotFound, "car with id %s not found", carID)
	}

	available, err := s.IsCarAvailable(carID, rng)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, newError(CodeConflict, "car is already booked for the selected dates")
	}

	newBooking := &models.Booking{
		ID:          uuid.New().String(),
		UserID:      userID,
		CarID:       carID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		TotalAmount: in.TotalAmount,
		Status:      models.BookingPending,
	}

	if err := s.Repo.CreateWithRefs(ctx, newBooking); err != nil {
		if errors.Is(err, bookingRepo.ErrOverlappingBooking) {
			return nil, newError(CodeConflict, "car is already booked for the selected dates")
		}
		return nil, newError(CodeInternal, "failed to create booking: %v", err)
	}

	utils.GetLogger().Info("Booking created",
		zap.String("bookingID", newBooking.ID),
		zap.String("carID", carID),
		zap.String("userID", userID))
	return newBooking, nil
}

// Reschedule moves a booking to new dates and optionally another car. The
// booking itself is excluded from the overlap check so shrinking or shifting
// within its own window is allowed.
func (s *DefaultBookingService) Reschedule(ctx context.Context, bookingID string, rng models.DateRange, carID string) (*models.Booking, error) {
	if err := rng.Validate(); err != nil {
		return nil, newError(CodeInvalid, "%v", err)
	}

	b, err := s.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}

	targetCar := b.CarID
	if carID != "" {
		car, err := s.CarRepo.GetByID(carID)
		if err != nil {
			return nil, newError(CodeInternal, "failed to fetch car: %v", err)
		}
		if car == nil {
			return nil, newError(CodeNotFound, "car with id %s not found", carID)
		}
		targetCar = carID
	}

	count, err := s.Repo.CountOverlapping(targetCar, rng, bookingID)
	if err != nil {
		return nil, newError(CodeInternal, "availability check failed: %v", err)
	}
	if count > 0 {
		return nil, newError(CodeConflict, "car not available for new dates")
	}

	if err := s.Repo.SetDates(bookingID, rng, carID); err != nil {
		return nil, newError(CodeInternal, "failed to update booking: %v", err)
	}
	return s.GetBookingByID(bookingID)
}
