package domain

import "time"

// ComplianceScope filters check-ins and checkpoints for a snapshot.
// SiteName empty means all sites.
type ComplianceScope struct {
	SiteName string    `json:"site_name,omitempty"`
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
}

// ComplianceSnapshot is a pure projection over the check-in log. The log is
// the system of record; a snapshot can always be recomputed for any scope.
type ComplianceSnapshot struct {
	Scope              ComplianceScope `json:"scope"`
	TotalCheckins      int             `json:"total_checkins"`
	VerifiedCheckins   int             `json:"verified_checkins"`
	VerificationRate   float64         `json:"verification_rate"`
	TotalCheckpoints   int             `json:"total_checkpoints"`
	CheckpointsVisited int             `json:"checkpoints_visited"`
	CoverageRate       float64         `json:"coverage_rate"`
	ActiveOfficers     int             `json:"active_officers"`
	MissedCheckpoints  []CadenceState  `json:"missed_checkpoints"`
}
