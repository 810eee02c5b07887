package entities

import "time"

// BookingStatus represents the booking confirmation lifecycle.
//
// pending -> confirmed | rejected, exactly once. The transition is a
// conditional update guarded by the pending value; a concurrent loser
// observes the already-decided state, never a partial write.

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusRejected  BookingStatus = "rejected"
)

// Booking is a scheduled engineer visit tied to a Problem.
//
// Storage model (DynamoDB):
//   - PK: id
//
// EngineerID always references a user with the engineer role; RequesterID is
// the problem owner who opened the booking. DecidedBy records the actor of
// the confirm/reject transition.

type Booking struct {
	ID            string        `json:"id"`
	ProblemID     string        `json:"problem_id"`
	EngineerID    string        `json:"engineer_id"`
	RequesterID   string        `json:"requester_id"`
	ScheduledTime time.Time     `json:"scheduled_time"`
	Status        BookingStatus `json:"status"`
	DecidedBy     string        `json:"decided_by,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
