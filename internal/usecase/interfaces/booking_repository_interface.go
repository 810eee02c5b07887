package interfaces

import (
	"context"

	"laptopcare/internal/domain/entities"
)

// IBookingRepository abstracts persistence for Booking records.
//
// Decide is the atomic check-and-set on booking status: it transitions
// pending -> status only while the stored status is still pending, and
// returns the zero Booking when that condition fails. Concurrent confirm
// attempts therefore produce exactly one transition.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	Decide(ctx context.Context, bookingID string, status entities.BookingStatus, decidedBy string) (entities.Booking, error)
}
