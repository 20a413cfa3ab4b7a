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

const mealCollection = "meal_plans"

// MealRepository persists meal plans as single documents with embedded meals
// and foods.
type MealRepository struct {
	coll *mongo.Collection
}

func NewMealRepository(db *mongo.Database) *MealRepository {
	return &MealRepository{coll: db.Collection(mealCollection)}
}

func (r *MealRepository) Create(ctx context.Context, plan *domain.MealPlan) (*domain.MealPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if plan.ID == "" {
		plan.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, plan); err != nil {
		return nil, fmt.Errorf("insert meal plan: %w", err)
	}
	return plan, nil
}

func (r *MealRepository) FindByID(ctx context.Context, id string) (*domain.MealPlan, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MealRepository) FindByMealID(ctx context.Context, mealID string) (*domain.MealPlan, error) {
	return r.findOne(ctx, bson.M{"meals.id": mealID})
}

func (r *MealRepository) findOne(ctx context.Context, filter bson.M) (*domain.MealPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var plan domain.MealPlan
	if err := r.coll.FindOne(ctx, filter).Decode(&plan); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMealPlanNotFound
		}
		return nil, fmt.Errorf("find meal plan: %w", err)
	}
	return &plan, nil
}

func (r *MealRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.MealPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"client_id": clientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list meal plans: %w", err)
	}
	defer cur.Close(ctx)

	var plans []*domain.MealPlan
	for cur.Next(ctx) {
		var plan domain.MealPlan
		if err := cur.Decode(&plan); err != nil {
			return nil, fmt.Errorf("decode meal plan: %w", err)
		}
		plans = append(plans, &plan)
	}
	return plans, cur.Err()
}

func (r *MealRepository) Update(ctx context.Context, plan *domain.MealPlan) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"title":      plan.Title,
		"notes":      plan.Notes,
		"meals":      plan.Meals,
		"updated_at": time.Now().UTC(),
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": plan.ID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update meal plan: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMealPlanNotFound
	}
	return nil
}

func (r *MealRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete meal plan: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMealPlanNotFound
	}
	return nil
}

func (r *MealRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "meals.id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
