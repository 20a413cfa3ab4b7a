package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/traincore/coaching-api/internal/core/domain"
	"github.com/traincore/coaching-api/internal/core/ports"
)

type stubWorkoutRepo struct {
	plans   map[string]*domain.WorkoutPlan
	nextID  int
	updates int
}

func newStubWorkoutRepo() *stubWorkoutRepo {
	return &stubWorkoutRepo{plans: make(map[string]*domain.WorkoutPlan)}
}

func cloneWorkoutPlan(p *domain.WorkoutPlan) *domain.WorkoutPlan {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Exercises = make([]domain.Exercise, len(p.Exercises))
	for i, ex := range p.Exercises {
		clone.Exercises[i] = ex
		clone.Exercises[i].Sets = append([]domain.ExerciseSet(nil), ex.Sets...)
	}
	return &clone
}

func (r *stubWorkoutRepo) Create(_ context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	copy := cloneWorkoutPlan(plan)
	r.nextID++
	copy.ID = "wp_" + strconv.Itoa(r.nextID)
	r.plans[copy.ID] = cloneWorkoutPlan(copy)
	return copy, nil
}

func (r *stubWorkoutRepo) FindByID(_ context.Context, id string) (*domain.WorkoutPlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, domain.ErrPlanNotFound
	}
	return cloneWorkoutPlan(p), nil
}

func (r *stubWorkoutRepo) FindByExerciseID(_ context.Context, exerciseID string) (*domain.WorkoutPlan, error) {
	for _, p := range r.plans {
		if _, err := p.FindExercise(exerciseID); err == nil {
			return cloneWorkoutPlan(p), nil
		}
	}
	return nil, domain.ErrPlanNotFound
}

func (r *stubWorkoutRepo) FindBySetID(_ context.Context, setID string) (*domain.WorkoutPlan, error) {
	for _, p := range r.plans {
		if _, _, err := p.FindSet(setID); err == nil {
			return cloneWorkoutPlan(p), nil
		}
	}
	return nil, domain.ErrPlanNotFound
}

func (r *stubWorkoutRepo) ListByClient(_ context.Context, clientID string) ([]*domain.WorkoutPlan, error) {
	out := make([]*domain.WorkoutPlan, 0)
	for _, p := range r.plans {
		if p.ClientID == clientID {
			out = append(out, cloneWorkoutPlan(p))
		}
	}
	return out, nil
}

func (r *stubWorkoutRepo) Update(_ context.Context, plan *domain.WorkoutPlan) error {
	if _, ok := r.plans[plan.ID]; !ok {
		return domain.ErrPlanNotFound
	}
	r.updates++
	r.plans[plan.ID] = cloneWorkoutPlan(plan)
	return nil
}

func (r *stubWorkoutRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.plans[id]; !ok {
		return domain.ErrPlanNotFound
	}
	delete(r.plans, id)
	return nil
}

func seedWorkoutPlan(t *testing.T, svc *WorkoutService, clientID string) *domain.WorkoutPlan {
	t.Helper()
	plan, err := svc.CreatePlan(context.Background(), ports.CreatePlanInput{
		ClientID: clientID,
		Title:    "Push Pull Legs",
		Exercises: []ports.ExerciseInput{
			{
				Name:        "Bench Press",
				MuscleGroup: "chest",
				Day:         "monday",
				Position:    1,
				Sets: []ports.SetInput{
					{TargetReps: 10, ActualReps: 10, WeightKg: 60},
					{TargetReps: 8, ActualReps: 6, WeightKg: 70},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("seed plan failed: %v", err)
	}
	return plan
}

func TestWorkoutService_CreatePlan_AssignsNestedIDs(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := NewWorkoutService(repo, zerolog.Nop())

	plan := seedWorkoutPlan(t, svc, "client_a")

	if plan.ID == "" {
		t.Fatalf("expected plan id")
	}
	ex := plan.Exercises[0]
	if ex.ID == "" {
		t.Fatalf("expected exercise id")
	}
	for _, set := range ex.Sets {
		if set.ID == "" {
			t.Fatalf("expected set id")
		}
	}
	if ex.Sets[0].Volume != 600 {
		t.Fatalf("expected initial volume 600, got %v", ex.Sets[0].Volume)
	}
}

func TestWorkoutService_GetPlan_Ownership(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := NewWorkoutService(repo, zerolog.Nop())
	plan := seedWorkoutPlan(t, svc, "client_a")

	owner := ports.Caller{ID: "client_a", Role: domain.RoleClient}
	if _, err := svc.GetPlan(context.Background(), owner, plan.ID); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}

	admin := ports.Caller{ID: "coach", Role: domain.RoleAdmin}
	if _, err := svc.GetPlan(context.Background(), admin, plan.ID); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}

	other := ports.Caller{ID: "client_b", Role: domain.RoleClient}
	if _, err := svc.GetPlan(context.Background(), other, plan.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestWorkoutService_ListClientPlans_Forbidden(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := NewWorkoutService(repo, zerolog.Nop())
	seedWorkoutPlan(t, svc, "client_a")

	other := ports.Caller{ID: "client_b", Role: domain.RoleClient}
	if _, err := svc.ListClientPlans(context.Background(), other, "client_a"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	owner := ports.Caller{ID: "client_a", Role: domain.RoleClient}
	plans, err := svc.ListClientPlans(context.Background(), owner, "client_a")
	if err != nil {
		t.Fatalf("owner list failed: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(plans))
	}
}

func TestWorkoutService_UpdateSet_RecomputesVolume(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := NewWorkoutService(repo, zerolog.Nop())
	plan := seedWorkoutPlan(t, svc, "client_a")
	setID := plan.Exercises[0].Sets[0].ID

	reps := 8
	weight := 20.0
	owner := ports.Caller{ID: "client_a", Role: domain.RoleClient}
	set, err := svc.UpdateSet(context.Background(), owner, setID, ports.UpdateSetInput{
		ActualReps: &reps,
		WeightKg:   &weight,
	})
	if err != nil {
		t.Fatalf("UpdateSet failed: %v", err)
	}
	if set.Volume != 160 {
		t.Fatalf("expected volume 160, got %v", set.Volume)
	}
	if set.TargetReps != 10 {
		t.Fatalf("untouched field changed: target_reps %d", set.TargetReps)
	}

	stored, _ := repo.FindBySetID(context.Background(), setID)
	_, si, _ := stored.FindSet(setID)
	if got := stored.Exercises[0].Sets[si].Volume; got != 160 {
		t.Fatalf("expected persisted volume 160, got %v", got)
	}
}

func TestWorkoutService_UpdateSet_PartialRecompute(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := NewWorkoutService(repo, zerolog.Nop())
	plan := seedWorkoutPlan(t, svc, "client_a")
	setID := plan.Exercises[0].Sets[0].ID

	// Only the weight changes; volume must still use the stored reps.
	weight := 65.0
	owner := ports.Caller{ID: "client_a", Role: domain.RoleClient}
	set, err := svc.UpdateSet(context.Background(), owner, setID, ports.UpdateSetInput{WeightKg: &weight})
	if err != nil {
		t.Fatalf("UpdateSet failed: %v", err)
	}
	if set.Volume != 650 {
		t.Fatalf("expected volume 650, got %v", set.Volume)
	}
}

func TestWorkoutService_UpdateSet_ForbiddenNoMutation(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := NewWorkoutService(repo, zerolog.Nop())
	plan := seedWorkoutPlan(t, svc, "client_a")
	setID := plan.Exercises[0].Sets[0].ID

	updatesBefore := repo.updates
	reps := 1
	other := ports.Caller{ID: "client_b", Role: domain.RoleClient}
	if _, err := svc.UpdateSet(context.Background(), other, setID, ports.UpdateSetInput{ActualReps: &reps}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.updates != updatesBefore {
		t.Fatalf("repository was mutated on a forbidden update")
	}

	stored, _ := repo.FindBySetID(context.Background(), setID)
	_, si, _ := stored.FindSet(setID)
	if stored.Exercises[0].Sets[si].ActualReps != 10 {
		t.Fatalf("set was mutated on a forbidden update")
	}
}

func TestWorkoutService_UpdateSet_NotFound(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := NewWorkoutService(repo, zerolog.Nop())
	seedWorkoutPlan(t, svc, "client_a")

	admin := ports.Caller{ID: "coach", Role: domain.RoleAdmin}
	reps := 5
	if _, err := svc.UpdateSet(context.Background(), admin, "missing", ports.UpdateSetInput{ActualReps: &reps}); err != domain.ErrPlanNotFound {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestWorkoutService_AddAndDeleteExercise(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := NewWorkoutService(repo, zerolog.Nop())
	plan := seedWorkoutPlan(t, svc, "client_a")

	added, err := svc.AddExercise(context.Background(), plan.ID, ports.ExerciseInput{
		Name: "Squat", MuscleGroup: "legs", Day: "wednesday", Position: 1,
		Sets: []ports.SetInput{{TargetReps: 5, ActualReps: 5, WeightKg: 100}},
	})
	if err != nil {
		t.Fatalf("AddExercise failed: %v", err)
	}
	if added.ID == "" || added.Sets[0].Volume != 500 {
		t.Fatalf("unexpected exercise: %+v", added)
	}

	if err := svc.DeleteExercise(context.Background(), added.ID); err != nil {
		t.Fatalf("DeleteExercise failed: %v", err)
	}
	stored, _ := repo.FindByID(context.Background(), plan.ID)
	if len(stored.Exercises) != 1 {
		t.Fatalf("expected 1 exercise left, got %d", len(stored.Exercises))
	}
}

func TestWorkoutService_DeleteSet(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := NewWorkoutService(repo, zerolog.Nop())
	plan := seedWorkoutPlan(t, svc, "client_a")
	setID := plan.Exercises[0].Sets[1].ID

	if err := svc.DeleteSet(context.Background(), setID); err != nil {
		t.Fatalf("DeleteSet failed: %v", err)
	}
	stored, _ := repo.FindByID(context.Background(), plan.ID)
	if len(stored.Exercises[0].Sets) != 1 {
		t.Fatalf("expected 1 set left, got %d", len(stored.Exercises[0].Sets))
	}
	if _, _, err := stored.FindSet(setID); err != domain.ErrSetNotFound {
		t.Fatalf("expected deleted set to be gone, got %v", err)
	}
}

func TestWorkoutService_UpdatePlan_Partial(t *testing.T) {
	repo := newStubWorkoutRepo()
	svc := NewWorkoutService(repo, zerolog.Nop())
	plan := seedWorkoutPlan(t, svc, "client_a")

	notes := "deload week"
	updated, err := svc.UpdatePlan(context.Background(), plan.ID, ports.UpdatePlanInput{Notes: &notes})
	if err != nil {
		t.Fatalf("UpdatePlan failed: %v", err)
	}
	if updated.Title != "Push Pull Legs" || updated.Notes != "deload week" {
		t.Fatalf("unexpected plan: title=%q notes=%q", updated.Title, updated.Notes)
	}
}
