package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/traincore/coaching-api/internal/core/domain"
	"github.com/traincore/coaching-api/internal/core/ports"
)

// ContentService implements the marketing content use cases. The singleton
// rows (home, contact) are written through fixed-id upserts so the system can
// never hold more than one of each.
type ContentService struct {
	repo ports.ContentRepository
	log  zerolog.Logger
}

func NewContentService(repo ports.ContentRepository, log zerolog.Logger) *ContentService {
	return &ContentService{repo: repo, log: log}
}

// GetHome returns the home content, or an empty record when nothing has been
// published yet; the public site treats both the same.
func (s *ContentService) GetHome(ctx context.Context) (*domain.HomeContent, error) {
	content, err := s.repo.GetHome(ctx)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return &domain.HomeContent{ID: domain.HomeContentID}, nil
	}
	return content, nil
}

func (s *ContentService) UpsertHome(ctx context.Context, in ports.HomeContentInput) (*domain.HomeContent, error) {
	content := &domain.HomeContent{
		ID:           domain.HomeContentID,
		Headline:     in.Headline,
		Subheadline:  in.Subheadline,
		AboutText:    in.AboutText,
		HeroImageURL: in.HeroImageURL,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.repo.UpsertHome(ctx, content); err != nil {
		return nil, err
	}
	s.log.Info().Msg("home content updated")
	return content, nil
}

func (s *ContentService) GetContact(ctx context.Context) (*domain.ContactInfo, error) {
	info, err := s.repo.GetContact(ctx)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return &domain.ContactInfo{ID: domain.ContactInfoID}, nil
	}
	return info, nil
}

func (s *ContentService) UpsertContact(ctx context.Context, in ports.ContactInfoInput) (*domain.ContactInfo, error) {
	info := &domain.ContactInfo{
		ID:           domain.ContactInfoID,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		InstagramURL: in.InstagramURL,
		WhatsApp:     in.WhatsApp,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.repo.UpsertContact(ctx, info); err != nil {
		return nil, err
	}
	s.log.Info().Msg("contact info updated")
	return info, nil
}

func (s *ContentService) ListTestimonials(ctx context.Context, includeDrafts bool) ([]*domain.Testimonial, error) {
	return s.repo.ListTestimonials(ctx, !includeDrafts)
}

func (s *ContentService) CreateTestimonial(ctx context.Context, in ports.TestimonialInput) (*domain.Testimonial, error) {
	now := time.Now().UTC()
	t := &domain.Testimonial{
		AuthorName: in.AuthorName,
		Quote:      in.Quote,
		Rating:     in.Rating,
		Published:  in.Published,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s.repo.CreateTestimonial(ctx, t)
}

func (s *ContentService) UpdateTestimonial(ctx context.Context, id string, in ports.UpdateTestimonialInput) (*domain.Testimonial, error) {
	existing, err := s.repo.FindTestimonial(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.AuthorName != nil {
		existing.AuthorName = *in.AuthorName
	}
	if in.Quote != nil {
		existing.Quote = *in.Quote
	}
	if in.Rating != nil {
		existing.Rating = *in.Rating
	}
	if in.Published != nil {
		existing.Published = *in.Published
	}
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.UpdateTestimonial(ctx, id, existing)
}

func (s *ContentService) DeleteTestimonial(ctx context.Context, id string) error {
	return s.repo.DeleteTestimonial(ctx, id)
}

func (s *ContentService) ListVideos(ctx context.Context) ([]*domain.Video, error) {
	return s.repo.ListVideos(ctx)
}

func (s *ContentService) CreateVideo(ctx context.Context, in ports.VideoInput) (*domain.Video, error) {
	now := time.Now().UTC()
	v := &domain.Video{
		Title:       in.Title,
		URL:         in.URL,
		Description: in.Description,
		Position:    in.Position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repo.CreateVideo(ctx, v)
}

func (s *ContentService) UpdateVideo(ctx context.Context, id string, in ports.UpdateVideoInput) (*domain.Video, error) {
	existing, err := s.repo.FindVideo(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		existing.Title = *in.Title
	}
	if in.URL != nil {
		existing.URL = *in.URL
	}
	if in.Description != nil {
		existing.Description = *in.Description
	}
	if in.Position != nil {
		existing.Position = *in.Position
	}
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.UpdateVideo(ctx, id, existing)
}

func (s *ContentService) DeleteVideo(ctx context.Context, id string) error {
	return s.repo.DeleteVideo(ctx, id)
}
