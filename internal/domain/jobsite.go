package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobSite is a clock-in target. Location may be absent for mobile or ad-hoc
// jobs; the gate then records attendance without verification.
type JobSite struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	ClientName      string      `json:"client_name"`
	Location        *Coordinate `json:"location,omitempty"`
	RadiusMeters    int         `json:"radius_m"`
	RequireLocation bool        `json:"require_location"`
	CreatedAt       time.Time   `json:"created_at"`
}

type CreateJobSiteRequest struct {
	Name            string   `json:"name" validate:"required"`
	ClientName      string   `json:"client_name"`
	Lat             *float64 `json:"lat" validate:"omitempty,lat"`
	Lng             *float64 `json:"lng" validate:"omitempty,lng"`
	RadiusMeters    int      `json:"radius_m" validate:"omitempty,radius_m"`
	RequireLocation bool     `json:"require_location"`
}
