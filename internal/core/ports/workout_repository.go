package ports

import (
	"context"

	"github.com/traincore/coaching-api/internal/core/domain"
)

// WorkoutRepository defines persistence operations for workout plans.
// Exercises and sets are embedded in the plan document, so nested lookups
// resolve through the owning plan.
type WorkoutRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error)
	FindByID(ctx context.Context, id string) (*domain.WorkoutPlan, error)
	// FindByExerciseID retrieves the plan containing the given exercise.
	FindByExerciseID(ctx context.Context, exerciseID string) (*domain.WorkoutPlan, error)
	// FindBySetID retrieves the plan containing the given set.
	FindBySetID(ctx context.Context, setID string) (*domain.WorkoutPlan, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.WorkoutPlan, error)
	// Update replaces the plan's mutable fields (title, notes, exercises)
	// and bumps updated_at.
	Update(ctx context.Context, plan *domain.WorkoutPlan) error
	Delete(ctx context.Context, id string) error
}
