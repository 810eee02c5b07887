package interfaces

import (
	"context"

	"laptopcare/internal/domain/entities"
)

// IBookingNotifier abstracts the outbound channel that tells the requester a
// booking was confirmed or rejected (e.g. a NATS publisher).
//
// The workflow only emits the outcome event; delivery is the collaborator's
// concern and a publish failure never rolls back the decision.

type IBookingNotifier interface {
	BookingDecided(ctx context.Context, b entities.Booking) error
}
