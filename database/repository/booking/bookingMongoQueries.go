// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"fmt"
	"time"

	"carrental/models"

	"go.mongodb.org/mongo-driver/bson"
)

// overlapFilter matches non-cancelled bookings for the car whose stored
// half-open interval intersects rng. Strict comparisons keep adjacent
// bookings (one ends exactly when the next begins) from colliding.
func overlapFilter(carID string, rng models.DateRange) bson.M {
	return bson.M{
		"car_id": carID,
		"status": bson.M{"$ne": models.BookingCancelled},
		"$and": bson.A{
			bson.M{"start_date": bson.M{"$lt": rng.End}},
			bson.M{"end_date": bson.M{"$gt": rng.Start}},
		},
	}
}

// CountOverlapping counts non-cancelled bookings for the car overlapping rng.
func (r *MongoBookingRepo) CountOverlapping(carID string, rng models.DateRange, excludeID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := overlapFilter(carID, rng)
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	count, err := r.bookingColl.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping bookings for car %s: %w", carID, err)
	}
	return count, nil
}

// ActiveCarIDsAt returns the car ids with a confirmed booking spanning at.
func (r *MongoBookingRepo) ActiveCarIDsAt(at time.Time) ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":     models.BookingConfirmed,
		"start_date": bson.M{"$lte": at},
		"end_date":   bson.M{"$gte": at},
	}
	ids, err := r.bookingColl.Distinct(ctx, "car_id", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active car ids: %w", err)
	}

	carIDs := make([]string, 0, len(ids))
	for _, v := range ids {
		if s, ok := v.(string); ok {
			carIDs = append(carIDs, s)
		}
	}
	return carIDs, nil
}

// FindOverdue returns bookings whose end date precedes now and whose status
// is neither paid nor cancelled.
func (r *MongoBookingRepo) FindOverdue(now time.Time) ([]models.Booking, error) {
	return r.find(bson.M{
		"end_date": bson.M{"$lt": now},
		"status":   bson.M{"$nin": bson.A{models.BookingPaid, models.BookingCancelled}},
	})
}
