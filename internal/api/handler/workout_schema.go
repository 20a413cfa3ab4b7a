package handler

// --- Workout request types ---

type setRequest struct {
	TargetReps int     `json:"target_reps" validate:"required,gt=0"`
	ActualReps int     `json:"actual_reps" validate:"gte=0"`
	WeightKg   float64 `json:"weight_kg"   validate:"gte=0"`
}

type exerciseRequest struct {
	Name        string       `json:"name"         validate:"required"`
	MuscleGroup string       `json:"muscle_group" validate:"required"`
	Day         string       `json:"day"`
	Position    int          `json:"position"     validate:"gte=0"`
	Sets        []setRequest `json:"sets"         validate:"dive"`
}

type createWorkoutPlanRequest struct {
	ClientID  string            `json:"client_id" validate:"required"`
	Title     string            `json:"title"     validate:"required"`
	Notes     string            `json:"notes"`
	Exercises []exerciseRequest `json:"exercises" validate:"dive"`
}

type updateWorkoutPlanRequest struct {
	Title *string `json:"title"`
	Notes *string `json:"notes"`
}

type updateExerciseRequest struct {
	Name        *string `json:"name"`
	MuscleGroup *string `json:"muscle_group"`
	Day         *string `json:"day"`
	Position    *int    `json:"position" validate:"omitempty,gte=0"`
}

// updateSetRequest is a partial mutation: omitted fields keep stored values.
// The derived volume is recomputed server-side from the resulting pair.
type updateSetRequest struct {
	TargetReps *int     `json:"target_reps" validate:"omitempty,gt=0"`
	ActualReps *int     `json:"actual_reps" validate:"omitempty,gte=0"`
	WeightKg   *float64 `json:"weight_kg"   validate:"omitempty,gte=0"`
}
