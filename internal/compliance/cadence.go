package compliance

import (
	"time"

	"guardpost/internal/domain"
)

// Cadence computes the derived cadence state of a checkpoint at the given
// instant. lastCheckinAt nil means the checkpoint has never been checked;
// minutes overdue then count from trackingStart (checkpoint activation, or
// the start of the reporting scope when that is what the caller measures
// against). Callers must exclude inactive checkpoints before calling.
func Cadence(cp *domain.Checkpoint, lastCheckinAt *time.Time, trackingStart, now time.Time) domain.CadenceState {
	state := domain.CadenceState{
		CheckpointID:   cp.ID,
		CheckpointName: cp.Name,
		SiteName:       cp.SiteName,
	}

	if lastCheckinAt == nil {
		state.NeverChecked = true
		state.IsOverdue = true
		state.MinutesOverdue = positiveMinutes(now.Sub(trackingStart))
		return state
	}

	since := positiveMinutes(now.Sub(*lastCheckinAt))
	last := *lastCheckinAt
	state.LastCheckedAt = &last
	state.MinutesSince = &since

	freq := float64(cp.CheckFreqMin)
	// Strictly greater: checked exactly one frequency ago is still on schedule.
	if since > freq {
		state.IsOverdue = true
		state.MinutesOverdue = since - freq
	}

	return state
}

func positiveMinutes(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	return d.Minutes()
}
