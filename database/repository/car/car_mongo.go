package carRepo

import (
	"context"
	"fmt"
	"time"

	"carrental/database"
	"carrental/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCarRepo implements CarRepository using MongoDB.
type MongoCarRepo struct {
	coll *mongo.Collection
}

// NewMongoCarRepo creates a new instance of CarRepository using MongoDB.
func NewMongoCarRepo() CarRepository {
	coll := database.DB().Collection("cars")
	repo := &MongoCarRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCarRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "available", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a car by its unique ID. Returns (nil, nil) when absent.
func (r *MongoCarRepo) GetByID(id string) (*models.Car, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var car models.Car
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&car); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch car with id %s: %w", id, err)
	}
	return &car, nil
}

// GetAll retrieves all cars, newest first.
func (r *MongoCarRepo) GetAll() ([]models.Car, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cars: %w", err)
	}
	defer cursor.Close(ctx)

	var cars []models.Car
	for cursor.Next(ctx) {
		var c models.Car
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode car: %w", err)
		}
		cars = append(cars, c)
	}
	return cars, nil
}

// Create inserts a new car document.
func (r *MongoCarRepo) Create(car *models.Car) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	car.CreatedAt = now
	car.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, car)
	if err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}
	return nil
}

// Update modifies an existing car document.
func (r *MongoCarRepo) Update(car *models.Car) error {
	car.UpdatedAt = time.Now()
	return r.updateOne(car.ID, bson.M{"$set": car})
}

// Delete removes a car document by its ID.
func (r *MongoCarRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete car with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("car with id %s not found", id)
	}
	return nil
}

// SetPricePerDay updates only the daily price.
func (r *MongoCarRepo) SetPricePerDay(id string, price float64) error {
	return r.updateOne(id, bson.M{"$set": bson.M{
		"price_per_day": price,
		"updated_at":    time.Now(),
	}})
}

// SetAvailable updates only the availability flag.
func (r *MongoCarRepo) SetAvailable(id string, available bool) error {
	return r.updateOne(id, bson.M{"$set": bson.M{
		"available":  available,
		"updated_at": time.Now(),
	}})
}

func (r *MongoCarRepo) updateOne(id string, update bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update car with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("car with id %s not found", id)
	}
	return nil
}
