package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeedEvent records a physical feeding of a pet, stored in MongoDB. Feeding
// events are append-only and may be recorded by any holder of the pet's QR
// code.
type FeedEvent struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PetID     uint               `json:"pet_id" bson:"pet_id"`
	Notes     string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
}

// LocationEvent records a sighting location for a pet, stored in MongoDB.
type LocationEvent struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PetID     uint               `json:"pet_id" bson:"pet_id"`
	Latitude  float64            `json:"latitude" bson:"latitude"`
	Longitude float64            `json:"longitude" bson:"longitude"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
}

// RecordFeedRequest defines the request body for recording a feeding
type RecordFeedRequest struct {
	Notes string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// RecordLocationRequest defines the request body for recording a location.
// Pointers distinguish a missing coordinate from a legitimate zero value.
type RecordLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

// ScanPet is the unauthenticated view of a pet resolved by QR code: public
// pet fields plus the owner's public summary.
type ScanPet struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	User        UserSummary `json:"user"`
}
