package models

import "time"

// Car represents a rentable vehicle. Available and BookingID are derived
// caches maintained by the booking lifecycle; the booking collection is the
// source of truth for overlap checks.
type Car struct {
	ID          string    `bson:"id" json:"id"`
	Brand       string    `bson:"brand" json:"brand"`
	Model       string    `bson:"model" json:"model"`
	Year        int       `bson:"year,omitempty" json:"year,omitempty"`
	PricePerDay float64   `bson:"price_per_day" json:"pricePerDay"`
	FuelType    string    `bson:"fuel_type" json:"fuelType"`
	Seats       int       `bson:"seats" json:"seats"`
	CarImage    string    `bson:"car_image" json:"carImage"`
	Description string    `bson:"description" json:"description"`
	Available   bool      `bson:"available" json:"available"`
	BookingID   string    `bson:"booking_id,omitempty" json:"bookingId,omitempty"`
	Bookings    []string  `bson:"bookings,omitempty" json:"bookings,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// CarInput is the request payload for adding a car.
type CarInput struct {
	Brand       string  `json:"brand" binding:"required"`
	Model       string  `json:"model" binding:"required"`
	Year        int     `json:"year"`
	PricePerDay float64 `json:"pricePerDay" binding:"required,gt=0"`
	FuelType    string  `json:"fuelType" binding:"required"`
	Seats       int     `json:"seats" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
	CarImageURL string  `json:"carImageUrl" binding:"required"`
}
