package domain

import (
	"time"

	"github.com/google/uuid"
)

// CadenceState is derived on demand from the latest check-in per checkpoint;
// it is never persisted.
type CadenceState struct {
	CheckpointID   uuid.UUID  `json:"checkpoint_id"`
	CheckpointName string     `json:"checkpoint_name"`
	SiteName       string     `json:"site_name"`
	LastCheckedAt  *time.Time `json:"last_checked_at,omitempty"`
	MinutesSince   *float64   `json:"minutes_since_last_check,omitempty"`
	IsOverdue      bool       `json:"is_overdue"`
	MinutesOverdue float64    `json:"minutes_overdue"`
	NeverChecked   bool       `json:"never_checked"`
}
