package workers

import (
	"context"
	"log/slog"
	"time"

	"guardpost/internal/compliance"
	"guardpost/internal/domain"

	"github.com/google/uuid"
)

const cacheTTL = 5 * time.Minute

type CheckpointSource interface {
	ListActive(ctx context.Context, siteName string) ([]*domain.Checkpoint, error)
}

type CheckpointCache interface {
	GetActive(ctx context.Context) ([]*domain.Checkpoint, error)
	SetActive(ctx context.Context, checkpoints []*domain.Checkpoint, ttl time.Duration) error
}

type CheckInSource interface {
	LastCheckinAt(ctx context.Context, checkpointID uuid.UUID) (*time.Time, error)
}

type AlertQueue interface {
	Enqueue(ctx context.Context, alert domain.OverdueAlert) error
}

// OverdueMonitor scans active checkpoints on a fixed interval and queues one
// alert per overdue transition. A checkpoint that stays overdue across cycles
// is not re-alerted until it recovers.
type OverdueMonitor struct {
	checkpoints CheckpointSource
	cache       CheckpointCache
	checkins    CheckInSource
	queue       AlertQueue
	logger      *slog.Logger
	interval    time.Duration

	alerted map[uuid.UUID]bool
}

func NewOverdueMonitor(
	checkpoints CheckpointSource,
	cache CheckpointCache,
	checkins CheckInSource,
	queue AlertQueue,
	logger *slog.Logger,
	interval time.Duration,
) *OverdueMonitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &OverdueMonitor{
		checkpoints: checkpoints,
		cache:       cache,
		checkins:    checkins,
		queue:       queue,
		logger:      logger,
		interval:    interval,
		alerted:     make(map[uuid.UUID]bool),
	}
}

func (m *OverdueMonitor) Run(ctx context.Context) {
	m.logger.Info("overdue monitor started", slog.Duration("interval", m.interval))

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("overdue monitor stopped", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			m.scan(ctx)
		}
	}
}

func (m *OverdueMonitor) scan(ctx context.Context) {
	checkpoints, err := m.activeCheckpoints(ctx)
	if err != nil {
		m.logger.Error("load active checkpoints failed", slog.Any("error", err))
		return
	}

	now := time.Now().UTC()
	overdue := 0

	for _, cp := range checkpoints {
		last, err := m.checkins.LastCheckinAt(ctx, cp.ID)
		if err != nil {
			m.logger.Error("last check-in lookup failed",
				slog.String("checkpoint_id", cp.ID.String()),
				slog.Any("error", err),
			)
			continue
		}

		state := compliance.Cadence(cp, last, cp.CreatedAt, now)
		if !state.IsOverdue {
			delete(m.alerted, cp.ID)
			continue
		}
		overdue++

		if m.alerted[cp.ID] {
			continue
		}
		alert := domain.OverdueAlert{
			CheckpointID:   cp.ID,
			CheckpointName: cp.Name,
			SiteName:       cp.SiteName,
			MinutesOverdue: state.MinutesOverdue,
			NeverChecked:   state.NeverChecked,
			DetectedAt:     now,
		}
		if err := m.queue.Enqueue(ctx, alert); err != nil {
			m.logger.Error("enqueue alert failed",
				slog.String("checkpoint_id", cp.ID.String()),
				slog.Any("error", err),
			)
			continue
		}
		m.alerted[cp.ID] = true
		m.logger.Info("overdue alert queued",
			slog.String("checkpoint_id", cp.ID.String()),
			slog.String("checkpoint", cp.Name),
			slog.Float64("minutes_overdue", state.MinutesOverdue),
		)
	}

	m.logger.Debug("scan finished",
		slog.Int("checkpoints", len(checkpoints)),
		slog.Int("overdue", overdue),
	)
}

func (m *OverdueMonitor) activeCheckpoints(ctx context.Context) ([]*domain.Checkpoint, error) {
	cached, err := m.cache.GetActive(ctx)
	if err != nil {
		m.logger.Warn("checkpoint cache read failed", slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	checkpoints, err := m.checkpoints.ListActive(ctx, "")
	if err != nil {
		return nil, err
	}
	if err := m.cache.SetActive(ctx, checkpoints, cacheTTL); err != nil {
		m.logger.Warn("checkpoint cache write failed", slog.Any("error", err))
	}
	return checkpoints, nil
}
