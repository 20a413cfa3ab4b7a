package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/traincore/coaching-api/internal/core/domain"
	"github.com/traincore/coaching-api/internal/core/ports"
)

// WeightService implements weight tracking. Every operation is ownership
// gated: a client records and reads only their own measurements.
type WeightService struct {
	repo ports.WeightRepository
	log  zerolog.Logger
}

func NewWeightService(repo ports.WeightRepository, log zerolog.Logger) *WeightService {
	return &WeightService{repo: repo, log: log}
}

func (s *WeightService) Record(ctx context.Context, caller ports.Caller, in ports.RecordWeightInput) (*domain.WeightRecord, error) {
	clientID := in.ClientID
	if clientID == "" {
		clientID = caller.ID
	}
	if !domain.CanAccess(caller.ID, caller.Role, clientID) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	recordedAt := in.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = now
	}

	rec := &domain.WeightRecord{
		ClientID:   clientID,
		WeightKg:   in.WeightKg,
		RecordedAt: recordedAt,
		CreatedAt:  now,
	}

	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("client_id", clientID).Float64("weight_kg", in.WeightKg).Msg("weight recorded")
	return created, nil
}

func (s *WeightService) ListByClient(ctx context.Context, caller ports.Caller, clientID string) ([]*domain.WeightRecord, error) {
	if !domain.CanAccess(caller.ID, caller.Role, clientID) {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByClient(ctx, clientID)
}

func (s *WeightService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanAccess(caller.ID, caller.Role, rec.ClientID) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
