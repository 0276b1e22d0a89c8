package domain

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord is a single shift. Created on clock-in with ClockOut nil,
// mutated exactly once on clock-out. At most one open record per employee.
type AttendanceRecord struct {
	ID               uuid.UUID   `json:"id"`
	EmployeeID       uuid.UUID   `json:"employee_id"`
	JobID            *uuid.UUID  `json:"job_id,omitempty"`
	ClockIn          time.Time   `json:"clock_in"`
	ClockOut         *time.Time  `json:"clock_out,omitempty"`
	ClockInLocation  *Coordinate `json:"clock_in_location,omitempty"`
	ClockOutLocation *Coordinate `json:"clock_out_location,omitempty"`
	DistanceMeters   float64     `json:"distance_from_site_m"`
	LocationVerified bool        `json:"location_verified"`
	HoursWorked      *float64    `json:"hours_worked,omitempty"`
}

type ClockInRequest struct {
	EmployeeID uuid.UUID   `json:"employee_id" validate:"required"`
	JobID      *uuid.UUID  `json:"job_id"`
	Location   *Coordinate `json:"location" validate:"omitempty"`
}

type ClockOutRequest struct {
	EmployeeID uuid.UUID   `json:"employee_id" validate:"required"`
	Location   *Coordinate `json:"location" validate:"omitempty"`
}

type ClockOutResponse struct {
	RecordID    uuid.UUID `json:"record_id"`
	HoursWorked float64   `json:"hours_worked"`
}
