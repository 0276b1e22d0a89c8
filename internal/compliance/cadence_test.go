package compliance_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"guardpost/internal/compliance"
	"guardpost/internal/domain"
)

func testCheckpoint(freqMin int) *domain.Checkpoint {
	return &domain.Checkpoint{
		ID:           uuid.New(),
		Name:         "Main Gate",
		SiteName:     "Riverside Depot",
		Location:     domain.Coordinate{Lat: 51.5549, Lng: -0.1084},
		RadiusMeters: 50,
		CheckFreqMin: freqMin,
		IsActive:     true,
	}
}

func TestCadence_NeverChecked(t *testing.T) {
	t.Parallel()

	cp := testCheckpoint(60)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(-90 * time.Minute)

	state := compliance.Cadence(cp, nil, start, now)

	if !state.NeverChecked {
		t.Fatalf("expected never_checked")
	}
	if !state.IsOverdue {
		t.Fatalf("never-checked checkpoint must be overdue")
	}
	if state.MinutesOverdue != 90 {
		t.Fatalf("minutes_overdue = %v, want 90 (from tracking start)", state.MinutesOverdue)
	}
	if state.LastCheckedAt != nil || state.MinutesSince != nil {
		t.Fatalf("never-checked state must not carry last-check fields")
	}
}

func TestCadence_OnSchedule(t *testing.T) {
	t.Parallel()

	cp := testCheckpoint(60)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	last := now.Add(-30 * time.Minute)

	state := compliance.Cadence(cp, &last, now.Add(-24*time.Hour), now)

	if state.IsOverdue || state.NeverChecked {
		t.Fatalf("expected on-schedule, got %+v", state)
	}
	if state.MinutesOverdue != 0 {
		t.Fatalf("minutes_overdue = %v, want 0", state.MinutesOverdue)
	}
	if state.MinutesSince == nil || *state.MinutesSince != 30 {
		t.Fatalf("minutes_since = %v, want 30", state.MinutesSince)
	}
}

// Checked exactly check_frequency_minutes ago is NOT overdue (strict >).
func TestCadence_ExactFrequencyBoundary(t *testing.T) {
	t.Parallel()

	cp := testCheckpoint(60)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	atBoundary := now.Add(-60 * time.Minute)
	state := compliance.Cadence(cp, &atBoundary, now.Add(-24*time.Hour), now)
	if state.IsOverdue {
		t.Fatalf("checked exactly at frequency must not be overdue")
	}

	justPast := now.Add(-60*time.Minute - time.Second)
	state = compliance.Cadence(cp, &justPast, now.Add(-24*time.Hour), now)
	if !state.IsOverdue {
		t.Fatalf("checked past frequency must be overdue")
	}
}

func TestCadence_MinutesOverdue(t *testing.T) {
	t.Parallel()

	cp := testCheckpoint(60)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	last := now.Add(-75 * time.Minute)

	state := compliance.Cadence(cp, &last, now.Add(-24*time.Hour), now)

	if !state.IsOverdue {
		t.Fatalf("expected overdue after 75min with 60min frequency")
	}
	if state.MinutesOverdue != 15 {
		t.Fatalf("minutes_overdue = %v, want 15", state.MinutesOverdue)
	}
}

func TestCadence_ClockSkew_NoNegativeMinutes(t *testing.T) {
	t.Parallel()

	cp := testCheckpoint(60)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(5 * time.Minute)

	state := compliance.Cadence(cp, &future, now.Add(-time.Hour), now)
	if state.IsOverdue {
		t.Fatalf("future check-in must not be overdue")
	}
	if *state.MinutesSince != 0 {
		t.Fatalf("minutes_since = %v, want clamped to 0", *state.MinutesSince)
	}
}
