package domain

import (
	"errors"
	"time"
)

var ErrWeightNotFound = errors.New("weight record not found")

// WeightRecord is a single body-weight measurement for a client.
type WeightRecord struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	ClientID   string    `json:"client_id" bson:"client_id"`
	WeightKg   float64   `json:"weight_kg" bson:"weight_kg"`
	RecordedAt time.Time `json:"recorded_at" bson:"recorded_at"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
