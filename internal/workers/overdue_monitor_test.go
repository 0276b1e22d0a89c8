package workers

import (
	"bytes"
	"context"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"guardpost/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

type fakeCheckpointSource struct {
	checkpoints []*domain.Checkpoint
	calls       int
}

func (f *fakeCheckpointSource) ListActive(_ context.Context, _ string) ([]*domain.Checkpoint, error) {
	f.calls++
	return f.checkpoints, nil
}

type fakeCache struct {
	active   []*domain.Checkpoint
	setCalls int
}

func (f *fakeCache) GetActive(_ context.Context) ([]*domain.Checkpoint, error) {
	return f.active, nil
}

func (f *fakeCache) SetActive(_ context.Context, cps []*domain.Checkpoint, _ time.Duration) error {
	f.setCalls++
	f.active = cps
	return nil
}

type fakeCheckInSource struct {
	last map[uuid.UUID]*time.Time
}

func (f *fakeCheckInSource) LastCheckinAt(_ context.Context, id uuid.UUID) (*time.Time, error) {
	return f.last[id], nil
}

type fakeQueue struct {
	alerts []domain.OverdueAlert
}

func (f *fakeQueue) Enqueue(_ context.Context, a domain.OverdueAlert) error {
	f.alerts = append(f.alerts, a)
	return nil
}

func overdueCheckpoint() *domain.Checkpoint {
	return &domain.Checkpoint{
		ID:           uuid.New(),
		Name:         "Gate A",
		SiteName:     "Northside Depot",
		CheckFreqMin: 30,
		IsActive:     true,
		CreatedAt:    time.Now().UTC().Add(-3 * time.Hour),
	}
}

func TestOverdueMonitor_Scan_QueuesAlertOnce(t *testing.T) {
	t.Parallel()

	cp := overdueCheckpoint()
	last := time.Now().UTC().Add(-2 * time.Hour)

	source := &fakeCheckpointSource{checkpoints: []*domain.Checkpoint{cp}}
	cache := &fakeCache{}
	checkins := &fakeCheckInSource{last: map[uuid.UUID]*time.Time{cp.ID: &last}}
	queue := &fakeQueue{}

	m := NewOverdueMonitor(source, cache, checkins, queue, testLogger(), time.Minute)

	m.scan(context.Background())
	m.scan(context.Background())

	if len(queue.alerts) != 1 {
		t.Fatalf("expected 1 alert across two scans, got %d", len(queue.alerts))
	}
	a := queue.alerts[0]
	if a.CheckpointID != cp.ID || a.SiteName != "Northside Depot" || a.NeverChecked {
		t.Fatalf("unexpected alert: %+v", a)
	}
	if a.MinutesOverdue < 85 || a.MinutesOverdue > 95 {
		t.Fatalf("expected ~90 minutes overdue, got %v", a.MinutesOverdue)
	}
}

func TestOverdueMonitor_Scan_ReAlertsAfterRecovery(t *testing.T) {
	t.Parallel()

	cp := overdueCheckpoint()
	stale := time.Now().UTC().Add(-2 * time.Hour)

	source := &fakeCheckpointSource{checkpoints: []*domain.Checkpoint{cp}}
	cache := &fakeCache{}
	checkins := &fakeCheckInSource{last: map[uuid.UUID]*time.Time{cp.ID: &stale}}
	queue := &fakeQueue{}

	m := NewOverdueMonitor(source, cache, checkins, queue, testLogger(), time.Minute)

	m.scan(context.Background())
	if len(queue.alerts) != 1 {
		t.Fatalf("expected initial alert, got %d", len(queue.alerts))
	}

	// a fresh check-in recovers the checkpoint
	fresh := time.Now().UTC().Add(-5 * time.Minute)
	checkins.last[cp.ID] = &fresh
	m.scan(context.Background())
	if len(queue.alerts) != 1 {
		t.Fatalf("expected no alert while on schedule, got %d", len(queue.alerts))
	}

	// overdue again triggers a new alert
	checkins.last[cp.ID] = &stale
	m.scan(context.Background())
	if len(queue.alerts) != 2 {
		t.Fatalf("expected re-alert after recovery, got %d", len(queue.alerts))
	}
}

func TestOverdueMonitor_Scan_NeverChecked(t *testing.T) {
	t.Parallel()

	cp := overdueCheckpoint()

	source := &fakeCheckpointSource{checkpoints: []*domain.Checkpoint{cp}}
	cache := &fakeCache{}
	checkins := &fakeCheckInSource{last: map[uuid.UUID]*time.Time{}}
	queue := &fakeQueue{}

	m := NewOverdueMonitor(source, cache, checkins, queue, testLogger(), time.Minute)

	m.scan(context.Background())

	if len(queue.alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(queue.alerts))
	}
	if !queue.alerts[0].NeverChecked {
		t.Fatalf("expected never-checked alert, got %+v", queue.alerts[0])
	}
}

func TestOverdueMonitor_ActiveCheckpoints_PopulatesCacheOnMiss(t *testing.T) {
	t.Parallel()

	cp := overdueCheckpoint()
	fresh := time.Now().UTC()

	source := &fakeCheckpointSource{checkpoints: []*domain.Checkpoint{cp}}
	cache := &fakeCache{}
	checkins := &fakeCheckInSource{last: map[uuid.UUID]*time.Time{cp.ID: &fresh}}
	queue := &fakeQueue{}

	m := NewOverdueMonitor(source, cache, checkins, queue, testLogger(), time.Minute)

	m.scan(context.Background())
	if source.calls != 1 || cache.setCalls != 1 {
		t.Fatalf("expected repo hit and cache fill, repo=%d set=%d", source.calls, cache.setCalls)
	}

	// second scan is served from the cache
	m.scan(context.Background())
	if source.calls != 1 {
		t.Fatalf("expected cache hit on second scan, repo calls=%d", source.calls)
	}
}
