package ports

import (
	"context"

	"github.com/traincore/coaching-api/internal/core/domain"
)

// HomeContentInput is the full home-page payload; upserts replace the row.
type HomeContentInput struct {
	Headline     string
	Subheadline  string
	AboutText    string
	HeroImageURL string
}

// ContactInfoInput is the full contact payload; upserts replace the row.
type ContactInfoInput struct {
	Email        string
	Phone        string
	Address      string
	InstagramURL string
	WhatsApp     string
}

// TestimonialInput carries a new testimonial.
type TestimonialInput struct {
	AuthorName string
	Quote      string
	Rating     int
	Published  bool
}

// UpdateTestimonialInput is a partial testimonial mutation.
type UpdateTestimonialInput struct {
	AuthorName *string
	Quote      *string
	Rating     *int
	Published  *bool
}

// VideoInput carries a new video entry.
type VideoInput struct {
	Title       string
	URL         string
	Description string
	Position    int
}

// UpdateVideoInput is a partial video mutation.
type UpdateVideoInput struct {
	Title       *string
	URL         *string
	Description *string
	Position    *int
}

// ContentService defines the marketing content use cases. Reads are public;
// every mutation sits behind the admin role gate at the router.
type ContentService interface {
	GetHome(ctx context.Context) (*domain.HomeContent, error)
	UpsertHome(ctx context.Context, in HomeContentInput) (*domain.HomeContent, error)

	GetContact(ctx context.Context) (*domain.ContactInfo, error)
	UpsertContact(ctx context.Context, in ContactInfoInput) (*domain.ContactInfo, error)

	// ListTestimonials returns only published entries unless includeDrafts.
	ListTestimonials(ctx context.Context, includeDrafts bool) ([]*domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, in TestimonialInput) (*domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, in UpdateTestimonialInput) (*domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error

	ListVideos(ctx context.Context) ([]*domain.Video, error)
	CreateVideo(ctx context.Context, in VideoInput) (*domain.Video, error)
	UpdateVideo(ctx context.Context, id string, in UpdateVideoInput) (*domain.Video, error)
	DeleteVideo(ctx context.Context, id string) error
}
