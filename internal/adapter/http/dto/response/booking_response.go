package response

import (
	"time"

	"laptopcare/internal/domain/entities"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	ProblemID     string    `json:"problem_id"`
	EngineerID    string    `json:"engineer_id"`
	RequesterID   string    `json:"requester_id"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Status        string    `json:"status"`
	DecidedBy     string    `json:"decided_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		ProblemID:     b.ProblemID,
		EngineerID:    b.EngineerID,
		RequesterID:   b.RequesterID,
		ScheduledTime: b.ScheduledTime,
		Status:        string(b.Status),
		DecidedBy:     b.DecidedBy,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
