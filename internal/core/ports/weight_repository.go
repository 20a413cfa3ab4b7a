package ports

import (
	"context"

	"github.com/traincore/coaching-api/internal/core/domain"
)

// WeightRepository defines persistence for body-weight records.
type WeightRepository interface {
	Create(ctx context.Context, rec *domain.WeightRecord) (*domain.WeightRecord, error)
	FindByID(ctx context.Context, id string) (*domain.WeightRecord, error)
	// ListByClient returns the client's records ordered by recorded_at descending.
	ListByClient(ctx context.Context, clientID string) ([]*domain.WeightRecord, error)
	Delete(ctx context.Context, id string) error
}
