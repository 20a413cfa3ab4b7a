package domain

import (
	"errors"
	"time"
)

var ErrMealPlanNotFound = errors.New("meal plan not found")
var ErrMealNotFound = errors.New("meal not found")

// Food is a single ingredient entry inside a meal, with its macros.
type Food struct {
	ID       string  `json:"id" bson:"id"`
	Name     string  `json:"name" bson:"name"`
	Grams    float64 `json:"grams" bson:"grams"`
	Calories float64 `json:"calories" bson:"calories"`
	ProteinG float64 `json:"protein_g" bson:"protein_g"`
	CarbsG   float64 `json:"carbs_g" bson:"carbs_g"`
	FatG     float64 `json:"fat_g" bson:"fat_g"`
}

// Meal is one eating occasion within a meal plan.
type Meal struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	TimeOfDay string `json:"time_of_day" bson:"time_of_day"`
	Foods     []Food `json:"foods" bson:"foods"`
}

// MealPlan is the aggregate root for a client's nutrition program. Meals and
// foods are embedded and inherit ownership through ClientID.
type MealPlan struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ClientID  string    `json:"client_id" bson:"client_id"`
	Title     string    `json:"title" bson:"title"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Meals     []Meal    `json:"meals" bson:"meals"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// FindMeal locates a meal by id. Returns its index or ErrMealNotFound.
func (p *MealPlan) FindMeal(mealID string) (int, error) {
	for i := range p.Meals {
		if p.Meals[i].ID == mealID {
			return i, nil
		}
	}
	return 0, ErrMealNotFound
}
