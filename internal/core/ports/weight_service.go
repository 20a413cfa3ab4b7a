package ports

import (
	"context"
	"time"

	"github.com/traincore/coaching-api/internal/core/domain"
)

// RecordWeightInput carries a new weight measurement. ClientID may only
// differ from the caller when the caller is an admin.
type RecordWeightInput struct {
	ClientID   string
	WeightKg   float64
	RecordedAt time.Time
}

// WeightService defines weight-tracking use cases. All operations are
// ownership-gated: a client touches only their own records.
type WeightService interface {
	Record(ctx context.Context, caller Caller, in RecordWeightInput) (*domain.WeightRecord, error)
	ListByClient(ctx context.Context, caller Caller, clientID string) ([]*domain.WeightRecord, error)
	Delete(ctx context.Context, caller Caller, id string) error
}
