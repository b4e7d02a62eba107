package car

import (
	"fmt"

	carRepo "carrental/database/repository/car"
	userRepo "carrental/database/repository/user"
	"carrental/models"
	"carrental/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrAdminOnly is returned when a non-admin attempts fleet management.
var ErrAdminOnly = fmt.Errorf("only admin can manage cars")

// CarService manages the rental fleet.
type CarService interface {
	// AddCar registers a new car; only admins may call it.
	AddCar(actingUserID string, in models.CarInput) (*models.Car, error)
	// GetCarByID returns a single car.
	GetCarByID(id string) (*models.Car, error)
	// GetAllCars returns the whole fleet, newest first.
	GetAllCars() ([]models.Car, error)
	// UpdatePrice changes the daily price of a car.
	UpdatePrice(id string, pricePerDay float64) (*models.Car, error)
	// DeleteCar removes a car from the fleet.
	DeleteCar(id string) error
	// ToggleAvailable flips the cached availability flag.
	ToggleAvailable(id string) (*models.Car, error)
}

// DefaultCarService is the production implementation of CarService.
type DefaultCarService struct {
	Repo     carRepo.CarRepository
	UserRepo userRepo.UserRepository
}

// AddCar registers a new car; only admins may call it.
func (s *DefaultCarService) AddCar(actingUserID string, in models.CarInput) (*models.Car, error) {
	usr, err := s.UserRepo.GetByID(actingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil || !usr.IsAdmin() {
		return nil, ErrAdminOnly
	}

	newCar := &models.Car{
		ID:          uuid.New().String(),
		Brand:       in.Brand,
		Model:       in.Model,
		Year:        in.Year,
		PricePerDay: in.PricePerDay,
		FuelType:    in.FuelType,
		Seats:       in.Seats,
		CarImage:    in.CarImageURL,
		Description: in.Description,
		Available:   true,
	}
	if err := s.Repo.Create(newCar); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Car added",
		zap.String("carID", newCar.ID),
		zap.String("brand", newCar.Brand),
		zap.String("model", newCar.Model))
	return newCar, nil
}

// GetCarByID returns a single car.
func (s *DefaultCarService) GetCarByID(id string) (*models.Car, error) {
	car, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, fmt.Errorf("car with id %s not found", id)
	}
	return car, nil
}

// GetAllCars returns the whole fleet, newest first.
func (s *DefaultCarService) GetAllCars() ([]models.Car, error) {
	return s.Repo.GetAll()
}

// UpdatePrice changes the daily price of a car.
func (s *DefaultCarService) UpdatePrice(id string, pricePerDay float64) (*models.Car, error) {
	if pricePerDay <= 0 {
		return nil, fmt.Errorf("price per day must be positive")
	}
	if err := s.Repo.SetPricePerDay(id, pricePerDay); err != nil {
		return nil, err
	}
	return s.GetCarByID(id)
}

// DeleteCar removes a car from the fleet.
func (s *DefaultCarService) DeleteCar(id string) error {
	return s.Repo.Delete(id)
}

// ToggleAvailable flips the cached availability flag.
func (s *DefaultCarService) ToggleAvailable(id string) (*models.Car, error) {
	car, err := s.GetCarByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.SetAvailable(id, !car.Available); err != nil {
		return nil, err
	}
	car.Available = !car.Available
	return car, nil
}
