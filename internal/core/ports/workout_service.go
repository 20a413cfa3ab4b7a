package ports

import (
	"context"

	"github.com/traincore/coaching-api/internal/core/domain"
)

// SetInput carries a new set's prescription.
type SetInput struct {
	TargetReps int
	ActualReps int
	WeightKg   float64
}

// ExerciseInput carries a new exercise and its initial sets.
type ExerciseInput struct {
	Name        string
	MuscleGroup string
	Day         string
	Position    int
	Sets        []SetInput
}

// CreatePlanInput carries a new workout plan for a client.
type CreatePlanInput struct {
	ClientID  string
	Title     string
	Notes     string
	Exercises []ExerciseInput
}

// UpdatePlanInput is a partial plan mutation. Nil fields keep stored values.
type UpdatePlanInput struct {
	Title *string
	Notes *string
}

// UpdateExerciseInput is a partial exercise mutation.
type UpdateExerciseInput struct {
	Name        *string
	MuscleGroup *string
	Day         *string
	Position    *int
}

// UpdateSetInput is a partial set mutation. The derived volume is recomputed
// from the resulting (actual_reps, weight_kg) pair regardless of which fields
// were supplied.
type UpdateSetInput struct {
	TargetReps *int
	ActualReps *int
	WeightKg   *float64
}

// WorkoutService defines use-case operations over workout plans and their
// nested exercises and sets. Read and set-update paths take the Caller so the
// ownership check runs before any data is returned or mutated; the remaining
// mutations are reachable only through admin-gated routes.
type WorkoutService interface {
	CreatePlan(ctx context.Context, in CreatePlanInput) (*domain.WorkoutPlan, error)
	GetPlan(ctx context.Context, caller Caller, planID string) (*domain.WorkoutPlan, error)
	ListClientPlans(ctx context.Context, caller Caller, clientID string) ([]*domain.WorkoutPlan, error)
	UpdatePlan(ctx context.Context, planID string, in UpdatePlanInput) (*domain.WorkoutPlan, error)
	DeletePlan(ctx context.Context, planID string) error

	ListExercises(ctx context.Context, caller Caller, planID string) ([]domain.Exercise, error)
	AddExercise(ctx context.Context, planID string, in ExerciseInput) (*domain.Exercise, error)
	UpdateExercise(ctx context.Context, exerciseID string, in UpdateExerciseInput) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, exerciseID string) error

	AddSet(ctx context.Context, exerciseID string, in SetInput) (*domain.ExerciseSet, error)
	UpdateSet(ctx context.Context, caller Caller, setID string, in UpdateSetInput) (*domain.ExerciseSet, error)
	DeleteSet(ctx context.Context, setID string) error
}
