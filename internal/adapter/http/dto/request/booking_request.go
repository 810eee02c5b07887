package request

import "time"

type BookingRequest struct {
	ProblemID     string    `json:"problem_id" binding:"required"`
	EngineerID    string    `json:"engineer_id" binding:"required"`
	ScheduledTime time.Time `json:"scheduled_time" binding:"required"`
}

// ConfirmRequest settles a pending booking. Confirmed is a pointer so an
// explicit false (reject) binds.
type ConfirmRequest struct {
	Confirmed *bool `json:"confirmed" binding:"required"`
}
