package service

import (
	"context"
	"time"

	"guardpost/internal/domain"

	"github.com/google/uuid"
)

type jobSiteService struct {
	repo JobSiteRepository
}

func NewJobSiteService(repo JobSiteRepository) JobSiteService {
	return &jobSiteService{repo: repo}
}

func (s *jobSiteService) Create(ctx context.Context, req domain.CreateJobSiteRequest) (uuid.UUID, error) {
	site := &domain.JobSite{
		ID:              uuid.New(),
		Name:            req.Name,
		ClientName:      req.ClientName,
		RadiusMeters:    req.RadiusMeters,
		RequireLocation: req.RequireLocation,
		CreatedAt:       time.Now().UTC(),
	}
	if req.Lat != nil && req.Lng != nil {
		site.Location = &domain.Coordinate{Lat: *req.Lat, Lng: *req.Lng}
	}
	if err := s.repo.Create(ctx, site); err != nil {
		return uuid.Nil, err
	}
	return site.ID, nil
}

func (s *jobSiteService) List(ctx context.Context) ([]*domain.JobSite, error) {
	return s.repo.List(ctx)
}

func (s *jobSiteService) Get(ctx context.Context, id uuid.UUID) (*domain.JobSite, error) {
	return s.repo.Get(ctx, id)
}
