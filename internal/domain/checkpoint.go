package domain

import (
	"time"

	"github.com/google/uuid"
)

type QuestionType string

const (
	QuestionYesNo          QuestionType = "yes_no"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionText           QuestionType = "text"
)

type Question struct {
	ID          uuid.UUID    `json:"id"`
	Text        string       `json:"text" validate:"required"`
	Type        QuestionType `json:"type" validate:"required,oneof=yes_no multiple_choice text"`
	Options     []string     `json:"options,omitempty" validate:"required_if=Type multiple_choice,omitempty,min=1,dive,required"`
	IsMandatory bool         `json:"is_mandatory"`
	IsRandom    bool         `json:"is_random"`
}

// Checkpoint is a fixed patrol location with a required visit cadence.
// Deactivation is a soft delete: historical check-ins keep referencing it.
type Checkpoint struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	SiteName        string     `json:"site_name"`
	Location        Coordinate `json:"location"`
	RadiusMeters    int        `json:"radius_m"`
	CheckFreqMin    int        `json:"check_frequency_min"`
	Questions       []Question `json:"questions"`
	RequireLocation bool       `json:"require_location"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
}

type CreateCheckpointRequest struct {
	Name            string     `json:"name" validate:"required"`
	SiteName        string     `json:"site_name" validate:"required"`
	Lat             float64    `json:"lat" validate:"lat"`
	Lng             float64    `json:"lng" validate:"lng"`
	RadiusMeters    int        `json:"radius_m" validate:"radius_m"`
	CheckFreqMin    int        `json:"check_frequency_min" validate:"freq_min"`
	Questions       []Question `json:"questions" validate:"omitempty,dive"`
	RequireLocation *bool      `json:"require_location"`
}

type UpdateCheckpointRequest struct {
	Name            *string    `json:"name" validate:"omitempty,min=1"`
	SiteName        *string    `json:"site_name" validate:"omitempty,min=1"`
	Lat             *float64   `json:"lat" validate:"omitempty,lat"`
	Lng             *float64   `json:"lng" validate:"omitempty,lng"`
	RadiusMeters    *int       `json:"radius_m" validate:"omitempty,radius_m"`
	CheckFreqMin    *int       `json:"check_frequency_min" validate:"omitempty,freq_min"`
	Questions       []Question `json:"questions" validate:"omitempty,dive"`
	RequireLocation *bool      `json:"require_location"`
}

type ListCheckpointsResponse struct {
	Checkpoints []*Checkpoint `json:"checkpoints"`
	Page        int           `json:"page"`
	Limit       int           `json:"limit"`
	Total       int64         `json:"total"`
}
