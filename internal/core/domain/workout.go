package domain

import (
	"errors"
	"time"
)

var ErrPlanNotFound = errors.New("workout plan not found")
var ErrExerciseNotFound = errors.New("exercise not found")
var ErrSetNotFound = errors.New("exercise set not found")

// ExerciseSet is a single prescribed set within an exercise. Volume is a
// derived field: ActualReps * WeightKg, recomputed whenever either factor
// changes.
type ExerciseSet struct {
	ID         string  `json:"id" bson:"id"`
	TargetReps int     `json:"target_reps" bson:"target_reps"`
	ActualReps int     `json:"actual_reps" bson:"actual_reps"`
	WeightKg   float64 `json:"weight_kg" bson:"weight_kg"`
	Volume     float64 `json:"volume" bson:"volume"`
}

// Recalculate refreshes the derived volume from the current reps and weight.
func (s *ExerciseSet) Recalculate() {
	s.Volume = float64(s.ActualReps) * s.WeightKg
}

// Exercise groups the sets of one movement inside a workout plan.
type Exercise struct {
	ID          string        `json:"id" bson:"id"`
	Name        string        `json:"name" bson:"name"`
	MuscleGroup string        `json:"muscle_group" bson:"muscle_group"`
	Day         string        `json:"day" bson:"day"`
	Position    int           `json:"position" bson:"position"`
	Sets        []ExerciseSet `json:"sets" bson:"sets"`
}

// WorkoutPlan is the aggregate root for a client's training program.
// Exercises and their sets are embedded; ownership of every nested entity
// resolves transitively through ClientID.
type WorkoutPlan struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	ClientID  string     `json:"client_id" bson:"client_id"`
	Title     string     `json:"title" bson:"title"`
	Notes     string     `json:"notes,omitempty" bson:"notes,omitempty"`
	Exercises []Exercise `json:"exercises" bson:"exercises"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// FindSet locates a set by id across all exercises of the plan.
// Returns the owning exercise index and set index, or ErrSetNotFound.
func (p *WorkoutPlan) FindSet(setID string) (int, int, error) {
	for ei := range p.Exercises {
		for si := range p.Exercises[ei].Sets {
			if p.Exercises[ei].Sets[si].ID == setID {
				return ei, si, nil
			}
		}
	}
	return 0, 0, ErrSetNotFound
}

// FindExercise locates an exercise by id. Returns its index or ErrExerciseNotFound.
func (p *WorkoutPlan) FindExercise(exerciseID string) (int, error) {
	for i := range p.Exercises {
		if p.Exercises[i].ID == exerciseID {
			return i, nil
		}
	}
	return 0, ErrExerciseNotFound
}
