package carRepo

import "carrental/models"

// CarRepository defines methods for car data access.
type CarRepository interface {
	// GetByID retrieves a car by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Car, error)
	// GetAll retrieves all cars, newest first.
	GetAll() ([]models.Car, error)
	// Create inserts a new car record.
	Create(car *models.Car) error
	// Update modifies an existing car record.
	Update(car *models.Car) error
	// Delete removes a car record by its ID.
	Delete(id string) error
	// SetPricePerDay updates only the daily price.
	SetPricePerDay(id string, price float64) error
	// SetAvailable updates only the availability flag.
	SetAvailable(id string, available bool) error
}
