package repositories

import (
	"context"
	"time"

	"github.com/pet-connect/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DeviceEventRepository defines the interface for QR-scan event records.
// Feeding and location events are append-only.
type DeviceEventRepository interface {
	RecordFeed(ctx context.Context, event *models.FeedEvent) error
	RecordLocation(ctx context.Context, event *models.LocationEvent) error
	GetRecentFeeds(ctx context.Context, petID uint, limit int64) ([]models.FeedEvent, error)
	GetRecentLocations(ctx context.Context, petID uint, limit int64) ([]models.LocationEvent, error)
	DeleteEventsByPetID(ctx context.Context, petID uint) error
}

// MongoDeviceEventRepository implements DeviceEventRepository for MongoDB
type MongoDeviceEventRepository struct {
	feeds     *mongo.Collection
	locations *mongo.Collection
}

// NewMongoDeviceEventRepository creates a new MongoDeviceEventRepository
func NewMongoDeviceEventRepository(db *mongo.Database) *MongoDeviceEventRepository {
	return &MongoDeviceEventRepository{
		feeds:     db.Collection("feeds"),
		locations: db.Collection("locations"),
	}
}

// RecordFeed appends a feeding event with a server-assigned timestamp
func (r *MongoDeviceEventRepository) RecordFeed(ctx context.Context, event *models.FeedEvent) error {
	event.ID = primitive.NewObjectID()
	event.Timestamp = time.Now()
	_, err := r.feeds.InsertOne(ctx, event)
	return err
}

// RecordLocation appends a location event with a server-assigned timestamp
func (r *MongoDeviceEventRepository) RecordLocation(ctx context.Context, event *models.LocationEvent) error {
	event.ID = primitive.NewObjectID()
	event.Timestamp = time.Now()
	_, err := r.locations.InsertOne(ctx, event)
	return err
}

// GetRecentFeeds retrieves the most recent feeding events for a pet, newest first
func (r *MongoDeviceEventRepository) GetRecentFeeds(ctx context.Context, petID uint, limit int64) ([]models.FeedEvent, error) {
	events := []models.FeedEvent{}
	findOptions := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.feeds.Find(ctx, bson.M{"pet_id": petID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetRecentLocations retrieves the most recent location events for a pet, newest first
func (r *MongoDeviceEventRepository) GetRecentLocations(ctx context.Context, petID uint, limit int64) ([]models.LocationEvent, error) {
	events := []models.LocationEvent{}
	findOptions := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.locations.Find(ctx, bson.M{"pet_id": petID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteEventsByPetID removes all events of a pet. Called when the pet is
// deleted; the relational cascade cannot reach these collections.
func (r *MongoDeviceEventRepository) DeleteEventsByPetID(ctx context.Context, petID uint) error {
	if _, err := r.feeds.DeleteMany(ctx, bson.M{"pet_id": petID}); err != nil {
		return err
	}
	_, err := r.locations.DeleteMany(ctx, bson.M{"pet_id": petID})
	return err
}
