package booking

import (
	bookingRepo "carrental/database/repository/booking"
	carRepo "carrental/database/repository/car"
	userRepo "carrental/database/repository/user"
	"carrental/models"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	CarRepo  carRepo.CarRepository
	UserRepo userRepo.UserRepository
}

// IsCarAvailable reports whether no non-cancelled booking on the car overlaps
// the requested range. Read-only; the creation path re-checks inside its
// transaction.
func (s *DefaultBookingService) IsCarAvailable(carID string, rng models.DateRange) (bool, error) {
	if err := rng.Validate(); err != nil {
		return false, newError(CodeInvalid, "%v", err)
	}
	count, err := s.Repo.CountOverlapping(carID, rng, "")
	if err != nil {
		return false, newError(CodeInternal, "availability check failed: %v", err)
	}
	return count == 0, nil
}

// GetBookingByID returns a single booking.
func (s *DefaultBookingService) GetBookingByID(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, newError(CodeInternal, "failed to fetch booking: %v", err)
	}
	if b == nil {
		return nil, newError(CodeNotFound, "booking with id %s not found", id)
	}
	return b, nil
}

// GetUserBookings returns a user's bookings, newest first.
func (s *DefaultBookingService) GetUserBookings(userID string) ([]models.Booking, error) {
	return s.Repo.GetByUser(userID)
}

// GetBookingsByCar returns all bookings referencing a car.
func (s *DefaultBookingService) GetBookingsByCar(carID string) ([]models.Booking, error) {
	return s.Repo.GetByCar(carID)
}

// GetMultiple returns the bookings matching the given ids.
func (s *DefaultBookingService) GetMultiple(ids []string) ([]models.Booking, error) {
	return s.Repo.GetByIDs(ids)
}

// GetAllBookings returns every booking, newest first.
func (s *DefaultBookingService) GetAllBookings() ([]models.Booking, error) {
	return s.Repo.GetAll()
}
