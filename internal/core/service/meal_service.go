package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/traincore/coaching-api/internal/core/domain"
	"github.com/traincore/coaching-api/internal/core/ports"
)

// MealService implements meal plan use cases, mirroring the workout service's
// ownership rules.
type MealService struct {
	repo ports.MealRepository
	log  zerolog.Logger
}

func NewMealService(repo ports.MealRepository, log zerolog.Logger) *MealService {
	return &MealService{repo: repo, log: log}
}

func (s *MealService) CreatePlan(ctx context.Context, in ports.CreateMealPlanInput) (*domain.MealPlan, error) {
	now := time.Now().UTC()
	plan := &domain.MealPlan{
		ClientID:  in.ClientID,
		Title:     in.Title,
		Notes:     in.Notes,
		Meals:     buildMeals(in.Meals),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("plan_id", created.ID).Str("client_id", created.ClientID).Msg("meal plan created")
	return created, nil
}

func (s *MealService) GetPlan(ctx context.Context, caller ports.Caller, planID string) (*domain.MealPlan, error) {
	plan, err := s.repo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(caller.ID, caller.Role, plan.ClientID) {
		return nil, domain.ErrForbidden
	}
	return plan, nil
}

func (s *MealService) ListClientPlans(ctx context.Context, caller ports.Caller, clientID string) ([]*domain.MealPlan, error) {
	if !domain.CanAccess(caller.ID, caller.Role, clientID) {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByClient(ctx, clientID)
}

func (s *MealService) UpdatePlan(ctx context.Context, planID string, in ports.UpdateMealPlanInput) (*domain.MealPlan, error) {
	plan, err := s.repo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		plan.Title = *in.Title
	}
	if in.Notes != nil {
		plan.Notes = *in.Notes
	}

	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *MealService) DeletePlan(ctx context.Context, planID string) error {
	if err := s.repo.Delete(ctx, planID); err != nil {
		return err
	}
	s.log.Info().Str("plan_id", planID).Msg("meal plan deleted")
	return nil
}

// ListMeals returns the meals of a plan after the ownership check.
func (s *MealService) ListMeals(ctx context.Context, caller ports.Caller, planID string) ([]domain.Meal, error) {
	plan, err := s.GetPlan(ctx, caller, planID)
	if err != nil {
		return nil, err
	}
	return plan.Meals, nil
}

func (s *MealService) AddMeal(ctx context.Context, planID string, in ports.MealInput) (*domain.Meal, error) {
	plan, err := s.repo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	meal := buildMeal(in)
	plan.Meals = append(plan.Meals, meal)

	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) UpdateMeal(ctx context.Context, mealID string, in ports.UpdateMealInput) (*domain.Meal, error) {
	plan, err := s.repo.FindByMealID(ctx, mealID)
	if err != nil {
		return nil, err
	}

	idx, err := plan.FindMeal(mealID)
	if err != nil {
		return nil, err
	}

	meal := &plan.Meals[idx]
	if in.Name != nil {
		meal.Name = *in.Name
	}
	if in.TimeOfDay != nil {
		meal.TimeOfDay = *in.TimeOfDay
	}
	if in.Foods != nil {
		meal.Foods = buildFoods(in.Foods)
	}

	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) DeleteMeal(ctx context.Context, mealID string) error {
	plan, err := s.repo.FindByMealID(ctx, mealID)
	if err != nil {
		return err
	}

	idx, err := plan.FindMeal(mealID)
	if err != nil {
		return err
	}

	plan.Meals = append(plan.Meals[:idx], plan.Meals[idx+1:]...)
	return s.repo.Update(ctx, plan)
}

func buildMeals(inputs []ports.MealInput) []domain.Meal {
	meals := make([]domain.Meal, 0, len(inputs))
	for _, in := range inputs {
		meals = append(meals, buildMeal(in))
	}
	return meals
}

func buildMeal(in ports.MealInput) domain.Meal {
	return domain.Meal{
		ID:        newEntityID(),
		Name:      in.Name,
		TimeOfDay: in.TimeOfDay,
		Foods:     buildFoods(in.Foods),
	}
}

func buildFoods(inputs []ports.FoodInput) []domain.Food {
	foods := make([]domain.Food, 0, len(inputs))
	for _, in := range inputs {
		foods = append(foods, domain.Food{
			ID:       newEntityID(),
			Name:     in.Name,
			Grams:    in.Grams,
			Calories: in.Calories,
			ProteinG: in.ProteinG,
			CarbsG:   in.CarbsG,
			FatG:     in.FatG,
		})
	}
	return foods
}
