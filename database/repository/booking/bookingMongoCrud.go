// File: database/repository/booking/bookingMongoCrud.go
package bookingRepo

import (
	"fmt"
	"time"

	"carrental/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a booking by its unique ID. Returns (nil, nil) when absent.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// GetAll retrieves all bookings, newest first.
func (r *MongoBookingRepo) GetAll() ([]models.Booking, error) {
	return r.find(bson.M{})
}

// GetByUser retrieves a user's bookings, newest first.
func (r *MongoBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	return r.find(bson.M{"user_id": userID})
}

// GetByCar retrieves all bookings referencing a car.
func (r *MongoBookingRepo) GetByCar(carID string) ([]models.Booking, error) {
	return r.find(bson.M{"car_id": carID})
}

// GetByIDs retrieves the bookings matching the given ids.
func (r *MongoBookingRepo) GetByIDs(ids []string) ([]models.Booking, error) {
	return r.find(bson.M{"id": bson.M{"$in": ids}})
}

func (r *MongoBookingRepo) find(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// SetStatus writes only the status field.
func (r *MongoBookingRepo) SetStatus(id string, status models.BookingStatus) error {
	return r.updateOne(id, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}})
}

// MarkPaid writes status=paid, isPaid=true and the payment identifier.
func (r *MongoBookingRepo) MarkPaid(id, paymentID string) error {
	return r.updateOne(id, bson.M{"$set": bson.M{
		"status":     models.BookingPaid,
		"is_paid":    true,
		"payment_id": paymentID,
		"updated_at": time.Now(),
	}})
}

// SetDates reschedules a booking, optionally moving it to another car.
func (r *MongoBookingRepo) SetDates(id string, rng models.DateRange, carID string) error {
	set := bson.M{
		"start_date": rng.Start,
		"end_date":   rng.End,
		"updated_at": time.Now(),
	}
	if carID != "" {
		set["car_id"] = carID
	}
	return r.updateOne(id, bson.M{"$set": set})
}

func (r *MongoBookingRepo) updateOne(id string, update bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.bookingColl.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}
