package domain

import (
	"time"

	"github.com/google/uuid"
)

// OverdueAlert is queued by the overdue monitor and delivered by the alert
// sender to the configured webhook.
type OverdueAlert struct {
	CheckpointID   uuid.UUID `json:"checkpoint_id"`
	CheckpointName string    `json:"checkpoint_name"`
	SiteName       string    `json:"site_name"`
	MinutesOverdue float64   `json:"minutes_overdue"`
	NeverChecked   bool      `json:"never_checked"`
	DetectedAt     time.Time `json:"detected_at"`
}
