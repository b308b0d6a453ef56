package chefRepo

import (
	"context"
	"fmt"
	"time"

	"chefly/config"
	"chefly/database"
	"chefly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoChefRepo implements ChefRepository using MongoDB.
type MongoChefRepo struct {
	coll *mongo.Collection
}

// NewMongoChefRepo creates a new instance of ChefRepository using MongoDB.
func NewMongoChefRepo() ChefRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("chefs")
	return &MongoChefRepo{coll: coll}
}

func (r *MongoChefRepo) GetByID(id string) (*models.Chef, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var chef models.Chef
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&chef); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch chef with id %s: %w", id, err)
	}
	return &chef, nil
}

func (r *MongoChefRepo) GetAll() ([]models.Chef, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Sort on createdAt so callers see a stable insertion order.
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve chefs: %w", err)
	}
	defer cursor.Close(ctx)
	var chefs []models.Chef
	if err := cursor.All(ctx, &chefs); err != nil {
		return nil, fmt.Errorf("failed to decode chefs: %w", err)
	}
	return chefs, nil
}

func (r *MongoChefRepo) GetServiceByID(serviceID string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var chef models.Chef
	filter := bson.M{"services.id": serviceID}
	if err := r.coll.FindOne(ctx, filter).Decode(&chef); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", serviceID, err)
	}
	svc := chef.ServiceByID(serviceID)
	if svc == nil {
		return nil, ErrNotFound
	}
	return svc, nil
}

func (r *MongoChefRepo) Create(chef *models.Chef) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, chef); err != nil {
		return fmt.Errorf("failed to create chef: %w", err)
	}
	return nil
}

func (r *MongoChefRepo) Update(chef *models.Chef) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": chef.ID}
	update := bson.M{"$set": chef}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update chef with id %s: %w", chef.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoChefRepo) UpdateStats(id string, rating float64, totalBookings int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	update := bson.M{"$set": bson.M{
		"rating":        rating,
		"totalBookings": totalBookings,
		"updatedAt":     time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update stats for chef %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoChefRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete chef with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
