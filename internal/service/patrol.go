package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"guardpost/internal/compliance"
	"guardpost/internal/domain"
	"guardpost/internal/geo"
	"guardpost/pkg/e"

	"github.com/google/uuid"
)

const activeCheckpointsTTL = 5 * time.Minute

type patrolService struct {
	checkpoints CheckpointRepository
	checkins    CheckInRepository
	cache       CheckpointCacheService
	logger      *slog.Logger
}

func NewPatrolService(
	checkpoints CheckpointRepository,
	checkins CheckInRepository,
	cache CheckpointCacheService,
	logger *slog.Logger,
) PatrolService {
	return &patrolService{
		checkpoints: checkpoints,
		checkins:    checkins,
		cache:       cache,
		logger:      logger,
	}
}

func (s *patrolService) CheckIn(ctx context.Context, req domain.CheckInRequest) (*domain.CheckInEvent, error) {
	cp, err := s.checkpoints.Get(ctx, req.CheckpointID)
	if err != nil {
		return nil, err
	}
	if !cp.IsActive {
		return nil, e.ErrCheckpointInactive
	}
	if cp.RequireLocation && req.Location == nil {
		return nil, e.ErrLocationUnavailable
	}
	if err := checkMandatoryAnswers(cp, req.Answers); err != nil {
		return nil, err
	}

	ev := &domain.CheckInEvent{
		ID:           uuid.New(),
		CheckpointID: cp.ID,
		EmployeeID:   req.EmployeeID,
		ScannedQR:    req.ScannedQR,
		Answers:      req.Answers,
		Notes:        req.Notes,
		Photos:       req.Photos,
		CheckedAt:    time.Now().UTC(),
	}

	// Failed verification never blocks the check-in; the event records the
	// outcome and compliance reporting surfaces it.
	if req.Location != nil {
		v := geo.Verify(*req.Location, cp.Location, float64(cp.RadiusMeters))
		ev.ReportedLocation = req.Location
		ev.DistanceMeters = math.Round(v.DistanceMeters)
		ev.LocationVerified = v.Verified
		if !v.Verified {
			s.logger.Warn("check-in outside checkpoint radius",
				slog.String("checkpoint_id", cp.ID.String()),
				slog.String("employee_id", req.EmployeeID.String()),
				slog.Float64("distance_m", ev.DistanceMeters),
				slog.Int("radius_m", cp.RadiusMeters),
			)
		}
	}

	if err := s.checkins.Insert(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

func (s *patrolService) GetCadence(ctx context.Context, checkpointID uuid.UUID, now time.Time) (*domain.CadenceState, error) {
	cp, err := s.checkpoints.Get(ctx, checkpointID)
	if err != nil {
		return nil, err
	}
	if !cp.IsActive {
		return nil, e.ErrCheckpointInactive
	}

	last, err := s.checkins.LastCheckinAt(ctx, checkpointID)
	if err != nil {
		return nil, err
	}

	state := compliance.Cadence(cp, last, cp.CreatedAt, now)
	return &state, nil
}

func (s *patrolService) GetCompliance(ctx context.Context, scope domain.ComplianceScope, now time.Time) (*domain.ComplianceSnapshot, error) {
	checkpoints, err := s.activeCheckpoints(ctx, scope.SiteName)
	if err != nil {
		return nil, err
	}

	checkins, err := s.checkins.ListInScope(ctx, scope)
	if err != nil {
		return nil, err
	}

	snap := compliance.Aggregate(checkins, checkpoints, scope, now)
	return &snap, nil
}

// activeCheckpoints serves the all-sites set through the Redis cache; a
// site-scoped query goes straight to Postgres since the cache holds only the
// full set.
func (s *patrolService) activeCheckpoints(ctx context.Context, siteName string) ([]*domain.Checkpoint, error) {
	if siteName != "" {
		return s.checkpoints.ListActive(ctx, siteName)
	}

	cached, err := s.cache.GetActive(ctx)
	if err != nil {
		s.logger.Warn("checkpoint cache read failed", slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	checkpoints, err := s.checkpoints.ListActive(ctx, "")
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetActive(ctx, checkpoints, activeCheckpointsTTL); err != nil {
		s.logger.Warn("checkpoint cache write failed", slog.Any("error", err))
	}
	return checkpoints, nil
}

func checkMandatoryAnswers(cp *domain.Checkpoint, answers []domain.Answer) error {
	answered := make(map[uuid.UUID]bool, len(answers))
	for _, a := range answers {
		if a.Answer != "" {
			answered[a.QuestionID] = true
		}
	}
	for _, q := range cp.Questions {
		if q.IsMandatory && !answered[q.ID] {
			return e.Wrap(fmt.Sprintf("mandatory question %q not answered", q.Text), e.ErrInvalidInput)
		}
	}
	return nil
}
