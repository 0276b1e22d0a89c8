package service

import (
	"context"
	"log/slog"
	"time"

	"guardpost/internal/domain"

	"github.com/google/uuid"
)

type CheckpointService struct {
	repo   CheckpointRepository
	cache  CheckpointCacheService
	logger *slog.Logger
}

func NewCheckpointAdminService(repo CheckpointRepository, cache CheckpointCacheService, logger *slog.Logger) *CheckpointService {
	return &CheckpointService{repo: repo, cache: cache, logger: logger}
}

func (s *CheckpointService) Create(ctx context.Context, req domain.CreateCheckpointRequest) (uuid.UUID, error) {
	requireLocation := true
	if req.RequireLocation != nil {
		requireLocation = *req.RequireLocation
	}

	cp := &domain.Checkpoint{
		ID:       uuid.New(),
		Name:     req.Name,
		SiteName: req.SiteName,
		Location: domain.Coordinate{
			Lat: req.Lat,
			Lng: req.Lng,
		},
		RadiusMeters:    req.RadiusMeters,
		CheckFreqMin:    req.CheckFreqMin,
		Questions:       req.Questions,
		RequireLocation: requireLocation,
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, cp); err != nil {
		return uuid.Nil, err
	}
	s.invalidateCache(ctx)
	return cp.ID, nil
}

func (s *CheckpointService) List(ctx context.Context, page, limit int) ([]*domain.Checkpoint, int64, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *CheckpointService) Get(ctx context.Context, id uuid.UUID) (*domain.Checkpoint, error) {
	return s.repo.Get(ctx, id)
}

func (s *CheckpointService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateCheckpointRequest) error {
	cp, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Name != nil {
		cp.Name = *req.Name
	}
	if req.SiteName != nil {
		cp.SiteName = *req.SiteName
	}
	if req.Lat != nil {
		cp.Location.Lat = *req.Lat
	}
	if req.Lng != nil {
		cp.Location.Lng = *req.Lng
	}
	if req.RadiusMeters != nil {
		cp.RadiusMeters = *req.RadiusMeters
	}
	if req.CheckFreqMin != nil {
		cp.CheckFreqMin = *req.CheckFreqMin
	}
	if req.Questions != nil {
		cp.Questions = req.Questions
	}
	if req.RequireLocation != nil {
		cp.RequireLocation = *req.RequireLocation
	}
	if err := s.repo.Update(ctx, cp); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *CheckpointService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// Cache is repopulated lazily by the next reader. A failed invalidation is
// logged, not returned: the write already succeeded and the cache TTL bounds
// the staleness window.
func (s *CheckpointService) invalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("checkpoint cache invalidation failed", slog.Any("error", err))
	}
}
