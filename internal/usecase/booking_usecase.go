package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"laptopcare/internal/domain/entities"
	"laptopcare/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound        = errors.New("booking not found")
	ErrBookingAlreadyDecided  = errors.New("booking already decided")
	ErrBookingForbidden       = errors.New("actor may not decide this booking")
	ErrEngineerNotFound       = errors.New("engineer not found")
	ErrEngineerRoleMismatch   = errors.New("booked account is not an engineer")
	ErrInvalidSchedule        = errors.New("scheduled time must be in the future")
	ErrNotBookingProblemOwner = errors.New("requester is not the problem owner")
)

// IBookingUseCase manages the engineer-visit booking workflow:
//   - POST /troubleshoot/bookings => Create()
//   - PATCH /troubleshoot/bookings/{id}/confirm => Decide()

type IBookingUseCase interface {
	Create(ctx context.Context, requesterID, problemID, engineerID string, scheduledTime time.Time) (entities.Booking, error)
	Decide(ctx context.Context, bookingID, actorID string, actorRole entities.Role, confirmed bool) (entities.Booking, error)
}

type BookingUseCase struct {
	repo     interfaces.IBookingRepository
	problems interfaces.IProblemRepository
	users    interfaces.IUserRepository
	notifier interfaces.IBookingNotifier
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	repo interfaces.IBookingRepository,
	problems interfaces.IProblemRepository,
	users interfaces.IUserRepository,
	notifier interfaces.IBookingNotifier,
) *BookingUseCase {
	return &BookingUseCase{repo: repo, problems: problems, users: users, notifier: notifier}
}

// Create opens a pending booking for an engineer visit. Only the problem
// owner may book, the booked account must hold the engineer role, and the
// scheduled time must lie strictly in the future.
func (u *BookingUseCase) Create(ctx context.Context, requesterID, problemID, engineerID string, scheduledTime time.Time) (entities.Booking, error) {
	problemID = strings.TrimSpace(problemID)
	engineerID = strings.TrimSpace(engineerID)
	if problemID == "" {
		return entities.Booking{}, ErrProblemNotFound
	}
	if engineerID == "" {
		return entities.Booking{}, ErrEngineerNotFound
	}

	problem, err := u.problems.GetByID(ctx, problemID)
	if err != nil {
		return entities.Booking{}, err
	}
	if problem.ID == "" {
		return entities.Booking{}, ErrProblemNotFound
	}
	if problem.OwnerID != requesterID {
		return entities.Booking{}, ErrNotBookingProblemOwner
	}

	engineer, err := u.users.GetByID(ctx, engineerID)
	if err != nil {
		return entities.Booking{}, err
	}
	if engineer.ID == "" {
		return entities.Booking{}, ErrEngineerNotFound
	}
	if engineer.Role != entities.RoleEngineer {
		return entities.Booking{}, ErrEngineerRoleMismatch
	}

	now := time.Now().UTC()
	if !scheduledTime.After(now) {
		return entities.Booking{}, ErrInvalidSchedule
	}

	b := entities.Booking{
		ID:            uuid.NewString(),
		ProblemID:     problemID,
		EngineerID:    engineerID,
		RequesterID:   requesterID,
		ScheduledTime: scheduledTime.UTC(),
		Status:        entities.BookingStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] booking created booking_id=%s problem_id=%s engineer_id=%s", created.ID, problemID, engineerID)
	return created, nil
}

// Decide settles a pending booking as confirmed or rejected. The booked
// engineer or any admin may decide; the transition happens at most once.
// The losing side of a concurrent decision observes the already-decided
// state, never a partial write.
func (u *BookingUseCase) Decide(ctx context.Context, bookingID, actorID string, actorRole entities.Role, confirmed bool) (entities.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}

	b, err := u.repo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}

	switch actorRole {
	case entities.RoleAdmin:
	case entities.RoleEngineer:
		if b.EngineerID != actorID {
			return entities.Booking{}, ErrBookingForbidden
		}
	default:
		return entities.Booking{}, ErrBookingForbidden
	}

	if b.Status != entities.BookingStatusPending {
		return entities.Booking{}, ErrBookingAlreadyDecided
	}

	status := entities.BookingStatusRejected
	if confirmed {
		status = entities.BookingStatusConfirmed
	}

	decided, err := u.repo.Decide(ctx, bookingID, status, actorID)
	if err != nil {
		return entities.Booking{}, err
	}
	if decided.ID == "" {
		// The pending guard failed: a concurrent decision won the race.
		return entities.Booking{}, ErrBookingAlreadyDecided
	}

	if u.notifier != nil {
		if err := u.notifier.BookingDecided(ctx, decided); err != nil {
			// Emit-only contract: the decision stands even when the event
			// cannot be published.
			log.Printf("[booking][usecase] decision notify failed booking_id=%s err=%v", decided.ID, err)
		}
	}
	log.Printf("[booking][usecase] booking decided booking_id=%s status=%s decided_by=%s", decided.ID, decided.Status, actorID)
	return decided, nil
}
