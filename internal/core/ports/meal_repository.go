package ports

import (
	"context"

	"github.com/traincore/coaching-api/internal/core/domain"
)

// MealRepository defines persistence operations for meal plans. Meals and
// foods are embedded in the plan document.
type MealRepository interface {
	Create(ctx context.Context, plan *domain.MealPlan) (*domain.MealPlan, error)
	FindByID(ctx context.Context, id string) (*domain.MealPlan, error)
	// FindByMealID retrieves the plan containing the given meal.
	FindByMealID(ctx context.Context, mealID string) (*domain.MealPlan, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.MealPlan, error)
	Update(ctx context.Context, plan *domain.MealPlan) error
	Delete(ctx context.Context, id string) error
}
