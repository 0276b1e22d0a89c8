package domain

import (
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	Answer     string    `json:"answer"`
}

// CheckInEvent is one row of the append-only check-in log. It is never
// mutated after creation: LocationVerified is frozen against the radius the
// checkpoint had at check-in time, even if the radius is edited later.
type CheckInEvent struct {
	ID               uuid.UUID   `json:"id"`
	CheckpointID     uuid.UUID   `json:"checkpoint_id"`
	EmployeeID       uuid.UUID   `json:"employee_id"`
	ReportedLocation *Coordinate `json:"reported_location,omitempty"`
	DistanceMeters   float64     `json:"distance_from_checkpoint_m"`
	LocationVerified bool        `json:"location_verified"`
	ScannedQR        bool        `json:"scanned_qr"`
	Answers          []Answer    `json:"answers"`
	Notes            string      `json:"notes,omitempty"`
	Photos           []string    `json:"photos,omitempty"`
	CheckedAt        time.Time   `json:"checked_at"`
}

type CheckInRequest struct {
	EmployeeID   uuid.UUID   `json:"employee_id" validate:"required"`
	CheckpointID uuid.UUID   `json:"checkpoint_id" validate:"required"`
	Location     *Coordinate `json:"location" validate:"omitempty"`
	ScannedQR    bool        `json:"scanned_qr"`
	Answers      []Answer    `json:"answers" validate:"omitempty,dive"`
	Notes        string      `json:"notes"`
	Photos       []string    `json:"photos"`
}
