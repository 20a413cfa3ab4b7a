package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/traincore/coaching-api/internal/core/domain"
)

const (
	homeCollection        = "home_content"
	contactCollection     = "contact_info"
	testimonialCollection = "testimonials"
	videoCollection       = "videos"
)

// ContentRepository persists the marketing content. The home and contact
// rows are singletons keyed by their well-known ids; upserting against a
// fixed _id makes the one-row invariant hold without a read-then-branch.
type ContentRepository struct {
	home         *mongo.Collection
	contact      *mongo.Collection
	testimonials *mongo.Collection
	videos       *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{
		home:         db.Collection(homeCollection),
		contact:      db.Collection(contactCollection),
		testimonials: db.Collection(testimonialCollection),
		videos:       db.Collection(videoCollection),
	}
}

func (r *ContentRepository) GetHome(ctx context.Context) (*domain.HomeContent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var content domain.HomeContent
	err := r.home.FindOne(ctx, bson.M{"_id": domain.HomeContentID}).Decode(&content)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find home content: %w", err)
	}
	return &content, nil
}

func (r *ContentRepository) UpsertHome(ctx context.Context, content *domain.HomeContent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.home.ReplaceOne(ctx, bson.M{"_id": domain.HomeContentID}, content, opts); err != nil {
		return fmt.Errorf("upsert home content: %w", err)
	}
	return nil
}

func (r *ContentRepository) GetContact(ctx context.Context) (*domain.ContactInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var info domain.ContactInfo
	err := r.contact.FindOne(ctx, bson.M{"_id": domain.ContactInfoID}).Decode(&info)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find contact info: %w", err)
	}
	return &info, nil
}

func (r *ContentRepository) UpsertContact(ctx context.Context, info *domain.ContactInfo) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.contact.ReplaceOne(ctx, bson.M{"_id": domain.ContactInfoID}, info, opts); err != nil {
		return fmt.Errorf("upsert contact info: %w", err)
	}
	return nil
}

func (r *ContentRepository) ListTestimonials(ctx context.Context, publishedOnly bool) ([]*domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.testimonials.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.Testimonial
	for cur.Next(ctx) {
		var t domain.Testimonial
		if err := cur.Decode(&t); err != nil {
			return nil, fmt.Errorf("decode testimonial: %w", err)
		}
		items = append(items, &t)
	}
	return items, cur.Err()
}

func (r *ContentRepository) FindTestimonial(ctx context.Context, id string) (*domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Testimonial
	if err := r.testimonials.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("find testimonial: %w", err)
	}
	return &t, nil
}

func (r *ContentRepository) CreateTestimonial(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if t.ID == "" {
		t.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.testimonials.InsertOne(ctx, t); err != nil {
		return nil, fmt.Errorf("insert testimonial: %w", err)
	}
	return t, nil
}

func (r *ContentRepository) UpdateTestimonial(ctx context.Context, id string, t *domain.Testimonial) (*domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	t.ID = id
	res, err := r.testimonials.ReplaceOne(ctx, bson.M{"_id": id}, t)
	if err != nil {
		return nil, fmt.Errorf("update testimonial: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTestimonialNotFound
	}
	return t, nil
}

func (r *ContentRepository) DeleteTestimonial(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.testimonials.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTestimonialNotFound
	}
	return nil
}

func (r *ContentRepository) ListVideos(ctx context.Context) ([]*domain.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cur, err := r.videos.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.Video
	for cur.Next(ctx) {
		var v domain.Video
		if err := cur.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode video: %w", err)
		}
		items = append(items, &v)
	}
	return items, cur.Err()
}

func (r *ContentRepository) FindVideo(ctx context.Context, id string) (*domain.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var v domain.Video
	if err := r.videos.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, fmt.Errorf("find video: %w", err)
	}
	return &v, nil
}

func (r *ContentRepository) CreateVideo(ctx context.Context, v *domain.Video) (*domain.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if v.ID == "" {
		v.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.videos.InsertOne(ctx, v); err != nil {
		return nil, fmt.Errorf("insert video: %w", err)
	}
	return v, nil
}

func (r *ContentRepository) UpdateVideo(ctx context.Context, id string, v *domain.Video) (*domain.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	v.ID = id
	res, err := r.videos.ReplaceOne(ctx, bson.M{"_id": id}, v)
	if err != nil {
		return nil, fmt.Errorf("update video: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrVideoNotFound
	}
	return v, nil
}

func (r *ContentRepository) DeleteVideo(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.videos.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}
