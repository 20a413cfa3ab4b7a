package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/traincore/coaching-api/internal/core/domain"
	"github.com/traincore/coaching-api/internal/core/ports"
)

// WorkoutService implements workout plan use cases. Reads and the set update
// run the ownership check before touching data; the remaining mutations are
// admin-gated at the router.
type WorkoutService struct {
	repo ports.WorkoutRepository
	log  zerolog.Logger
}

func NewWorkoutService(repo ports.WorkoutRepository, log zerolog.Logger) *WorkoutService {
	return &WorkoutService{repo: repo, log: log}
}

func (s *WorkoutService) CreatePlan(ctx context.Context, in ports.CreatePlanInput) (*domain.WorkoutPlan, error) {
	now := time.Now().UTC()
	plan := &domain.WorkoutPlan{
		ClientID:  in.ClientID,
		Title:     in.Title,
		Notes:     in.Notes,
		Exercises: buildExercises(in.Exercises),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("plan_id", created.ID).Str("client_id", created.ClientID).Msg("workout plan created")
	return created, nil
}

func (s *WorkoutService) GetPlan(ctx context.Context, caller ports.Caller, planID string) (*domain.WorkoutPlan, error) {
	plan, err := s.repo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(caller.ID, caller.Role, plan.ClientID) {
		return nil, domain.ErrForbidden
	}
	return plan, nil
}

func (s *WorkoutService) ListClientPlans(ctx context.Context, caller ports.Caller, clientID string) ([]*domain.WorkoutPlan, error) {
	if !domain.CanAccess(caller.ID, caller.Role, clientID) {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByClient(ctx, clientID)
}

func (s *WorkoutService) UpdatePlan(ctx context.Context, planID string, in ports.UpdatePlanInput) (*domain.WorkoutPlan, error) {
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

func (s *WorkoutService) DeletePlan(ctx context.Context, planID string) error {
	if err := s.repo.Delete(ctx, planID); err != nil {
		return err
	}
	s.log.Info().Str("plan_id", planID).Msg("workout plan deleted")
	return nil
}

// ListExercises returns the exercises of a plan after the ownership check.
func (s *WorkoutService) ListExercises(ctx context.Context, caller ports.Caller, planID string) ([]domain.Exercise, error) {
	plan, err := s.GetPlan(ctx, caller, planID)
	if err != nil {
		return nil, err
	}
	return plan.Exercises, nil
}

func (s *WorkoutService) AddExercise(ctx context.Context, planID string, in ports.ExerciseInput) (*domain.Exercise, error) {
	plan, err := s.repo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	exercise := buildExercise(in)
	plan.Exercises = append(plan.Exercises, exercise)

	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (s *WorkoutService) UpdateExercise(ctx context.Context, exerciseID string, in ports.UpdateExerciseInput) (*domain.Exercise, error) {
	plan, err := s.repo.FindByExerciseID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	idx, err := plan.FindExercise(exerciseID)
	if err != nil {
		return nil, err
	}

	ex := &plan.Exercises[idx]
	if in.Name != nil {
		ex.Name = *in.Name
	}
	if in.MuscleGroup != nil {
		ex.MuscleGroup = *in.MuscleGroup
	}
	if in.Day != nil {
		ex.Day = *in.Day
	}
	if in.Position != nil {
		ex.Position = *in.Position
	}

	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return ex, nil
}

func (s *WorkoutService) DeleteExercise(ctx context.Context, exerciseID string) error {
	plan, err := s.repo.FindByExerciseID(ctx, exerciseID)
	if err != nil {
		return err
	}

	idx, err := plan.FindExercise(exerciseID)
	if err != nil {
		return err
	}

	plan.Exercises = append(plan.Exercises[:idx], plan.Exercises[idx+1:]...)
	return s.repo.Update(ctx, plan)
}

func (s *WorkoutService) AddSet(ctx context.Context, exerciseID string, in ports.SetInput) (*domain.ExerciseSet, error) {
	plan, err := s.repo.FindByExerciseID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	idx, err := plan.FindExercise(exerciseID)
	if err != nil {
		return nil, err
	}

	set := buildSet(in)
	plan.Exercises[idx].Sets = append(plan.Exercises[idx].Sets, set)

	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return &set, nil
}

// UpdateSet applies a partial mutation to a set. Clients may update sets of
// their own plans only; the volume is recomputed from the resulting reps and
// weight whichever of the two was supplied.
func (s *WorkoutService) UpdateSet(ctx context.Context, caller ports.Caller, setID string, in ports.UpdateSetInput) (*domain.ExerciseSet, error) {
	plan, err := s.repo.FindBySetID(ctx, setID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(caller.ID, caller.Role, plan.ClientID) {
		return nil, domain.ErrForbidden
	}

	ei, si, err := plan.FindSet(setID)
	if err != nil {
		return nil, err
	}

	set := &plan.Exercises[ei].Sets[si]
	if in.TargetReps != nil {
		set.TargetReps = *in.TargetReps
	}
	if in.ActualReps != nil {
		set.ActualReps = *in.ActualReps
	}
	if in.WeightKg != nil {
		set.WeightKg = *in.WeightKg
	}
	set.Recalculate()

	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, err
	}

	s.log.Info().Str("set_id", setID).Float64("volume", set.Volume).Msg("set updated")
	return set, nil
}

func (s *WorkoutService) DeleteSet(ctx context.Context, setID string) error {
	plan, err := s.repo.FindBySetID(ctx, setID)
	if err != nil {
		return err
	}

	ei, si, err := plan.FindSet(setID)
	if err != nil {
		return err
	}

	sets := plan.Exercises[ei].Sets
	plan.Exercises[ei].Sets = append(sets[:si], sets[si+1:]...)
	return s.repo.Update(ctx, plan)
}

func buildExercises(inputs []ports.ExerciseInput) []domain.Exercise {
	exercises := make([]domain.Exercise, 0, len(inputs))
	for _, in := range inputs {
		exercises = append(exercises, buildExercise(in))
	}
	return exercises
}

func buildExercise(in ports.ExerciseInput) domain.Exercise {
	sets := make([]domain.ExerciseSet, 0, len(in.Sets))
	for _, si := range in.Sets {
		sets = append(sets, buildSet(si))
	}
	return domain.Exercise{
		ID:          newEntityID(),
		Name:        in.Name,
		MuscleGroup: in.MuscleGroup,
		Day:         in.Day,
		Position:    in.Position,
		Sets:        sets,
	}
}

func buildSet(in ports.SetInput) domain.ExerciseSet {
	set := domain.ExerciseSet{
		ID:         newEntityID(),
		TargetReps: in.TargetReps,
		ActualReps: in.ActualReps,
		WeightKg:   in.WeightKg,
	}
	set.Recalculate()
	return set
}
