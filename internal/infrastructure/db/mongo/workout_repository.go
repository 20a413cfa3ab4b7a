package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/traincore/coaching-api/internal/core/domain"
)

const workoutCollection = "workout_plans"

// WorkoutRepository persists workout plans as single documents with embedded
// exercises and sets, so ownership of any nested entity resolves through one
// lookup on the plan.
type WorkoutRepository struct {
	coll *mongo.Collection
}

func NewWorkoutRepository(db *mongo.Database) *WorkoutRepository {
	return &WorkoutRepository{coll: db.Collection(workoutCollection)}
}

func (r *WorkoutRepository) Create(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if plan.ID == "" {
		plan.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, plan); err != nil {
		return nil, fmt.Errorf("insert workout plan: %w", err)
	}
	return plan, nil
}

func (r *WorkoutRepository) FindByID(ctx context.Context, id string) (*domain.WorkoutPlan, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *WorkoutRepository) FindByExerciseID(ctx context.Context, exerciseID string) (*domain.WorkoutPlan, error) {
	return r.findOne(ctx, bson.M{"exercises.id": exerciseID})
}

func (r *WorkoutRepository) FindBySetID(ctx context.Context, setID string) (*domain.WorkoutPlan, error) {
	return r.findOne(ctx, bson.M{"exercises.sets.id": setID})
}

func (r *WorkoutRepository) findOne(ctx context.Context, filter bson.M) (*domain.WorkoutPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var plan domain.WorkoutPlan
	if err := r.coll.FindOne(ctx, filter).Decode(&plan); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("find workout plan: %w", err)
	}
	return &plan, nil
}

func (r *WorkoutRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.WorkoutPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"client_id": clientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list workout plans: %w", err)
	}
	defer cur.Close(ctx)

	var plans []*domain.WorkoutPlan
	for cur.Next(ctx) {
		var plan domain.WorkoutPlan
		if err := cur.Decode(&plan); err != nil {
			return nil, fmt.Errorf("decode workout plan: %w", err)
		}
		plans = append(plans, &plan)
	}
	return plans, cur.Err()
}

func (r *WorkoutRepository) Update(ctx context.Context, plan *domain.WorkoutPlan) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"title":      plan.Title,
		"notes":      plan.Notes,
		"exercises":  plan.Exercises,
		"updated_at": time.Now().UTC(),
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": plan.ID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update workout plan: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}

func (r *WorkoutRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete workout plan: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup indexes for ownership and nested-entity
// resolution.
func (r *WorkoutRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "exercises.id", Value: 1}}},
		{Keys: bson.D{{Key: "exercises.sets.id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
