package ports

import (
	"context"

	"github.com/traincore/coaching-api/internal/core/domain"
)

// ContentRepository defines persistence for the marketing content: the two
// singleton rows (home, contact) plus testimonials and videos.
type ContentRepository interface {
	// GetHome returns the singleton home row, or nil when never written.
	GetHome(ctx context.Context) (*domain.HomeContent, error)
	// UpsertHome writes the singleton home row against its fixed id.
	UpsertHome(ctx context.Context, content *domain.HomeContent) error

	GetContact(ctx context.Context) (*domain.ContactInfo, error)
	UpsertContact(ctx context.Context, info *domain.ContactInfo) error

	ListTestimonials(ctx context.Context, publishedOnly bool) ([]*domain.Testimonial, error)
	FindTestimonial(ctx context.Context, id string) (*domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, t *domain.Testimonial) (*domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error

	ListVideos(ctx context.Context) ([]*domain.Video, error)
	FindVideo(ctx context.Context, id string) (*domain.Video, error)
	CreateVideo(ctx context.Context, v *domain.Video) (*domain.Video, error)
	UpdateVideo(ctx context.Context, id string, v *domain.Video) (*domain.Video, error)
	DeleteVideo(ctx context.Context, id string) error
}
