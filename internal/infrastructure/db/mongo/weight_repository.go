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

const weightCollection = "weight_records"

type WeightRepository struct {
	coll *mongo.Collection
}

func NewWeightRepository(db *mongo.Database) *WeightRepository {
	return &WeightRepository{coll: db.Collection(weightCollection)}
}

func (r *WeightRepository) Create(ctx context.Context, rec *domain.WeightRecord) (*domain.WeightRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if rec.ID == "" {
		rec.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return nil, fmt.Errorf("insert weight record: %w", err)
	}
	return rec, nil
}

func (r *WeightRepository) FindByID(ctx context.Context, id string) (*domain.WeightRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec domain.WeightRecord
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWeightNotFound
		}
		return nil, fmt.Errorf("find weight record: %w", err)
	}
	return &rec, nil
}

func (r *WeightRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.WeightRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "recorded_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"client_id": clientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list weight records: %w", err)
	}
	defer cur.Close(ctx)

	var recs []*domain.WeightRecord
	for cur.Next(ctx) {
		var rec domain.WeightRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode weight record: %w", err)
		}
		recs = append(recs, &rec)
	}
	return recs, cur.Err()
}

func (r *WeightRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete weight record: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWeightNotFound
	}
	return nil
}

func (r *WeightRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "recorded_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
