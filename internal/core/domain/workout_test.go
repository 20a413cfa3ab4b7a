package domain

import "testing"

func TestExerciseSet_Recalculate(t *testing.T) {
	set := ExerciseSet{TargetReps: 10, ActualReps: 8, WeightKg: 20}
	set.Recalculate()
	if set.Volume != 160 {
		t.Fatalf("expected volume 160, got %v", set.Volume)
	}

	set.ActualReps = 0
	set.Recalculate()
	if set.Volume != 0 {
		t.Fatalf("expected volume 0 for zero reps, got %v", set.Volume)
	}
}

func TestWorkoutPlan_FindSet(t *testing.T) {
	plan := WorkoutPlan{
		Exercises: []Exercise{
			{ID: "ex1", Sets: []ExerciseSet{{ID: "s1"}, {ID: "s2"}}},
			{ID: "ex2", Sets: []ExerciseSet{{ID: "s3"}}},
		},
	}

	ei, si, err := plan.FindSet("s3")
	if err != nil || ei != 1 || si != 0 {
		t.Fatalf("FindSet(s3) = (%d, %d, %v)", ei, si, err)
	}

	if _, _, err := plan.FindSet("missing"); err != ErrSetNotFound {
		t.Fatalf("expected ErrSetNotFound, got %v", err)
	}
}

func TestWorkoutPlan_FindExercise(t *testing.T) {
	plan := WorkoutPlan{Exercises: []Exercise{{ID: "ex1"}, {ID: "ex2"}}}

	idx, err := plan.FindExercise("ex2")
	if err != nil || idx != 1 {
		t.Fatalf("FindExercise(ex2) = (%d, %v)", idx, err)
	}

	if _, err := plan.FindExercise("missing"); err != ErrExerciseNotFound {
		t.Fatalf("expected ErrExerciseNotFound, got %v", err)
	}
}
