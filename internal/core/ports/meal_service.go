package ports

import (
	"context"

	"github.com/traincore/coaching-api/internal/core/domain"
)

// FoodInput carries a single food entry with its macros.
type FoodInput struct {
	Name     string
	Grams    float64
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// MealInput carries a new meal and its foods.
type MealInput struct {
	Name      string
	TimeOfDay string
	Foods     []FoodInput
}

// CreateMealPlanInput carries a new meal plan for a client.
type CreateMealPlanInput struct {
	ClientID string
	Title    string
	Notes    string
	Meals    []MealInput
}

// UpdateMealPlanInput is a partial plan mutation.
type UpdateMealPlanInput struct {
	Title *string
	Notes *string
}

// UpdateMealInput is a partial meal mutation. A non-nil Foods slice replaces
// the stored foods wholesale.
type UpdateMealInput struct {
	Name      *string
	TimeOfDay *string
	Foods     []FoodInput
}

// MealService defines use-case operations over meal plans and their nested
// meals and foods.
type MealService interface {
	CreatePlan(ctx context.Context, in CreateMealPlanInput) (*domain.MealPlan, error)
	GetPlan(ctx context.Context, caller Caller, planID string) (*domain.MealPlan, error)
	ListClientPlans(ctx context.Context, caller Caller, clientID string) ([]*domain.MealPlan, error)
	UpdatePlan(ctx context.Context, planID string, in UpdateMealPlanInput) (*domain.MealPlan, error)
	DeletePlan(ctx context.Context, planID string) error

	ListMeals(ctx context.Context, caller Caller, planID string) ([]domain.Meal, error)
	AddMeal(ctx context.Context, planID string, in MealInput) (*domain.Meal, error)
	UpdateMeal(ctx context.Context, mealID string, in UpdateMealInput) (*domain.Meal, error)
	DeleteMeal(ctx context.Context, mealID string) error
}
