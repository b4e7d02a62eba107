// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"carrental/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// runTxn executes fn inside a single MongoDB transaction. Any error from fn
// aborts the transaction and surfaces to the caller; no partial state is left
// behind.
func (r *MongoBookingRepo) runTxn(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

// CreateWithRefs atomically re-checks availability, inserts the booking and
// appends its id to the car's and user's booking lists. Re-checking inside
// the transaction closes the window where two concurrent requests both pass
// a read-only availability check before either writes.
func (r *MongoBookingRepo) CreateWithRefs(ctx context.Context, booking *models.Booking) error {
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	return r.runTxn(ctx, func(sc mongo.SessionContext) error {
		count, err := r.bookingColl.CountDocuments(sc, overlapFilter(booking.CarID, booking.Range()))
		if err != nil {
			return fmt.Errorf("overlap re-check failed: %w", err)
		}
		if count > 0 {
			return ErrOverlappingBooking
		}

		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}

		res, err := r.carColl.UpdateOne(sc,
			bson.M{"id": booking.CarID},
			bson.M{"$addToSet": bson.M{"bookings": booking.ID}},
		)
		if err != nil {
			return fmt.Errorf("embed booking reference on car failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("car with id %s not found", booking.CarID)
		}

		res, err = r.userColl.UpdateOne(sc,
			bson.M{"id": booking.UserID},
			bson.M{"$addToSet": bson.M{"bookings": booking.ID}},
		)
		if err != nil {
			return fmt.Errorf("embed booking reference on user failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("user with id %s not found", booking.UserID)
		}
		return nil
	})
}

// CancelWithCleanup atomically cancels the booking, releases the car and
// detaches the booking from the user's list.
func (r *MongoBookingRepo) CancelWithCleanup(ctx context.Context, booking *models.Booking) error {
	return r.runTxn(ctx, func(sc mongo.SessionContext) error {
		res, err := r.bookingColl.UpdateOne(sc,
			bson.M{"id": booking.ID},
			bson.M{"$set": bson.M{
				"status":     models.BookingCancelled,
				"updated_at": time.Now(),
			}},
		)
		if err != nil {
			return fmt.Errorf("cancel booking failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("booking with id %s not found", booking.ID)
		}
		return r.cleanupRefs(sc, booking)
	})
}

// DeleteWithCleanup atomically deletes the booking document and performs the
// same car/user cleanup as cancellation, in case cleanup had not already run.
func (r *MongoBookingRepo) DeleteWithCleanup(ctx context.Context, booking *models.Booking) error {
	return r.runTxn(ctx, func(sc mongo.SessionContext) error {
		res, err := r.bookingColl.DeleteOne(sc, bson.M{"id": booking.ID})
		if err != nil {
			return fmt.Errorf("delete booking failed: %w", err)
		}
		if res.DeletedCount == 0 {
			return fmt.Errorf("booking with id %s not found", booking.ID)
		}
		return r.cleanupRefs(sc, booking)
	})
}

// cleanupRefs releases the car and pulls the booking id from both
// denormalized lists.
func (r *MongoBookingRepo) cleanupRefs(sc mongo.SessionContext, booking *models.Booking) error {
	if _, err := r.carColl.UpdateOne(sc,
		bson.M{"id": booking.CarID},
		bson.M{
			"$set":   bson.M{"available": true},
			"$unset": bson.M{"booking_id": ""},
			"$pull":  bson.M{"bookings": booking.ID},
		},
	); err != nil {
		return fmt.Errorf("release car failed: %w", err)
	}

	if _, err := r.userColl.UpdateOne(sc,
		bson.M{"id": booking.UserID},
		bson.M{"$pull": bson.M{"bookings": booking.ID}},
	); err != nil {
		return fmt.Errorf("detach booking from user failed: %w", err)
	}
	return nil
}
