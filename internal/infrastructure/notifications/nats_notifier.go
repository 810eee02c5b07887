package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"laptopcare/internal/domain/entities"
	"laptopcare/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
)

var ErrMissingNATSURL = errors.New("missing NATS_URL")

// BookingDecidedSubject carries booking confirmation/rejection events for
// downstream notification workers (email, push, etc.). This service only
// publishes; delivery is someone else's job.
const BookingDecidedSubject = "laptopcare.booking.decided"

type bookingDecidedEvent struct {
	BookingID     string    `json:"booking_id"`
	ProblemID     string    `json:"problem_id"`
	EngineerID    string    `json:"engineer_id"`
	RequesterID   string    `json:"requester_id"`
	Status        string    `json:"status"`
	DecidedBy     string    `json:"decided_by"`
	ScheduledTime time.Time `json:"scheduled_time"`
	DecidedAt     time.Time `json:"decided_at"`
}

// NATSBookingNotifier publishes booking decisions to NATS.

type NATSBookingNotifier struct {
	nc *nats.Conn
}

var _ interfaces.IBookingNotifier = (*NATSBookingNotifier)(nil)

func NewNATSBookingNotifier(url string) (*NATSBookingNotifier, error) {
	if url == "" {
		return nil, ErrMissingNATSURL
	}
	nc, err := nats.Connect(url)
	if err != nil {
		log.Printf("[notify][gateway] nats connect failed url=%s err=%v", url, err)
		return nil, err
	}
	log.Printf("[notify][gateway] nats connected url=%s", url)
	return &NATSBookingNotifier{nc: nc}, nil
}

func (n *NATSBookingNotifier) BookingDecided(_ context.Context, b entities.Booking) error {
	data, err := json.Marshal(bookingDecidedEvent{
		BookingID:     b.ID,
		ProblemID:     b.ProblemID,
		EngineerID:    b.EngineerID,
		RequesterID:   b.RequesterID,
		Status:        string(b.Status),
		DecidedBy:     b.DecidedBy,
		ScheduledTime: b.ScheduledTime,
		DecidedAt:     b.UpdatedAt,
	})
	if err != nil {
		return err
	}
	return n.nc.Publish(BookingDecidedSubject, data)
}

func (n *NATSBookingNotifier) Close() {
	if n.nc != nil {
		n.nc.Close()
	}
}
