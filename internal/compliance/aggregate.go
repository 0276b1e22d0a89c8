package compliance

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"guardpost/internal/domain"
)

// Aggregate rolls the in-scope check-in log and active checkpoints into a
// ComplianceSnapshot. It is a pure projection: the caller supplies already
// scoped slices, and the snapshot is recomputable from them at any time.
// Inactive checkpoints must not be passed in; their historical check-ins
// stay in the log and still count toward the check-in totals.
func Aggregate(checkins []*domain.CheckInEvent, checkpoints []*domain.Checkpoint, scope domain.ComplianceScope, now time.Time) domain.ComplianceSnapshot {
	snap := domain.ComplianceSnapshot{
		Scope:            scope,
		TotalCheckins:    len(checkins),
		TotalCheckpoints: len(checkpoints),
	}

	known := make(map[uuid.UUID]struct{}, len(checkpoints))
	for _, cp := range checkpoints {
		known[cp.ID] = struct{}{}
	}

	latestByCheckpoint := make(map[uuid.UUID]time.Time, len(checkpoints))
	officers := make(map[uuid.UUID]struct{})
	visited := make(map[uuid.UUID]struct{})

	for _, ev := range checkins {
		if ev.LocationVerified {
			snap.VerifiedCheckins++
		}
		officers[ev.EmployeeID] = struct{}{}
		// Check-ins against checkpoints outside the supplied set (deactivated
		// since) still count toward totals, but not toward coverage.
		if _, ok := known[ev.CheckpointID]; ok {
			visited[ev.CheckpointID] = struct{}{}
		}
		if last, ok := latestByCheckpoint[ev.CheckpointID]; !ok || ev.CheckedAt.After(last) {
			latestByCheckpoint[ev.CheckpointID] = ev.CheckedAt
		}
	}

	snap.CheckpointsVisited = len(visited)
	snap.ActiveOfficers = len(officers)
	snap.VerificationRate = rate(snap.VerifiedCheckins, snap.TotalCheckins)
	snap.CoverageRate = rate(snap.CheckpointsVisited, snap.TotalCheckpoints)

	for _, cp := range checkpoints {
		var lastAt *time.Time
		if t, ok := latestByCheckpoint[cp.ID]; ok {
			lastAt = &t
		}
		state := Cadence(cp, lastAt, scope.From, now)
		if state.IsOverdue || state.NeverChecked {
			snap.MissedCheckpoints = append(snap.MissedCheckpoints, state)
		}
	}

	// Never-checked checkpoints first, then the most overdue.
	sort.SliceStable(snap.MissedCheckpoints, func(i, j int) bool {
		a, b := snap.MissedCheckpoints[i], snap.MissedCheckpoints[j]
		if a.NeverChecked != b.NeverChecked {
			return a.NeverChecked
		}
		return a.MinutesOverdue > b.MinutesOverdue
	})

	return snap
}

// rate returns part/total as a percentage rounded to one decimal, and 0
// when the denominator is 0.
func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
