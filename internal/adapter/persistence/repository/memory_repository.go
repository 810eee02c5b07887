package repository

import (
	"context"
	"sync"
	"time"

	"laptopcare/internal/domain/entities"
	"laptopcare/internal/usecase/interfaces"
)

// In-memory repositories with the same contract as the DynamoDB ones,
// including the compare-and-set semantics of CompleteStep, FinalizeStatus
// and Decide. Selected with STORAGE_BACKEND=memory for local development;
// the concurrency tests run against these.

type UserMemoryRepository struct {
	mu    sync.Mutex
	users map[string]entities.User
}

var _ interfaces.IUserRepository = (*UserMemoryRepository)(nil)

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{users: make(map[string]entities.User)}
}

func (r *UserMemoryRepository) Create(_ context.Context, u entities.User) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return u, nil
}

func (r *UserMemoryRepository) GetByID(_ context.Context, id string) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *UserMemoryRepository) GetByEmail(_ context.Context, email string) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return entities.User{}, nil
}

func (r *UserMemoryRepository) ListByRole(_ context.Context, role entities.Role) ([]entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.User, 0)
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

type ProblemMemoryRepository struct {
	mu       sync.Mutex
	problems map[string]entities.Problem
}

var _ interfaces.IProblemRepository = (*ProblemMemoryRepository)(nil)

func NewProblemMemoryRepository() *ProblemMemoryRepository {
	return &ProblemMemoryRepository{problems: make(map[string]entities.Problem)}
}

func (r *ProblemMemoryRepository) Create(_ context.Context, p entities.Problem) (entities.Problem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.problems[p.ID] = cloneProblem(p)
	return p, nil
}

func (r *ProblemMemoryRepository) GetByID(_ context.Context, id string) (entities.Problem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneProblem(r.problems[id]), nil
}

func (r *ProblemMemoryRepository) CompleteStep(_ context.Context, problemID string, stepNumber int) (entities.Problem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.problems[problemID]
	if !ok || p.CompletedSteps != stepNumber-1 || p.Status != entities.ProblemStatusOpen {
		return entities.Problem{}, nil
	}
	p = cloneProblem(p)
	p.Steps[stepNumber-1].Completed = true
	p.CompletedSteps = stepNumber
	p.UpdatedAt = time.Now().UTC()
	r.problems[problemID] = cloneProblem(p)
	return p, nil
}

func (r *ProblemMemoryRepository) FinalizeStatus(_ context.Context, problemID string, status entities.ProblemStatus, totalSteps int) (entities.Problem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.problems[problemID]
	if !ok || p.Status != entities.ProblemStatusOpen || p.CompletedSteps != totalSteps {
		return entities.Problem{}, nil
	}
	p = cloneProblem(p)
	p.Status = status
	p.UpdatedAt = time.Now().UTC()
	r.problems[problemID] = cloneProblem(p)
	return p, nil
}

func cloneProblem(p entities.Problem) entities.Problem {
	out := p
	out.Steps = make([]entities.Step, len(p.Steps))
	copy(out.Steps, p.Steps)
	return out
}

type BookingMemoryRepository struct {
	mu       sync.Mutex
	bookings map[string]entities.Booking
}

var _ interfaces.IBookingRepository = (*BookingMemoryRepository)(nil)

func NewBookingMemoryRepository() *BookingMemoryRepository {
	return &BookingMemoryRepository{bookings: make(map[string]entities.Booking)}
}

func (r *BookingMemoryRepository) Create(_ context.Context, b entities.Booking) (entities.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID] = b
	return b, nil
}

func (r *BookingMemoryRepository) GetByID(_ context.Context, id string) (entities.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bookings[id], nil
}

func (r *BookingMemoryRepository) Decide(_ context.Context, bookingID string, status entities.BookingStatus, decidedBy string) (entities.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok || b.Status != entities.BookingStatusPending {
		return entities.Booking{}, nil
	}
	b.Status = status
	b.DecidedBy = decidedBy
	b.UpdatedAt = time.Now().UTC()
	r.bookings[bookingID] = b
	return b, nil
}

type EngineerLocationMemoryRepository struct {
	mu        sync.Mutex
	locations map[string]entities.EngineerLocation
}

var _ interfaces.IEngineerLocationRepository = (*EngineerLocationMemoryRepository)(nil)

func NewEngineerLocationMemoryRepository() *EngineerLocationMemoryRepository {
	return &EngineerLocationMemoryRepository{locations: make(map[string]entities.EngineerLocation)}
}

func (r *EngineerLocationMemoryRepository) Put(_ context.Context, loc entities.EngineerLocation) (entities.EngineerLocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations[loc.EngineerID] = loc
	return loc, nil
}

func (r *EngineerLocationMemoryRepository) List(_ context.Context) ([]entities.EngineerLocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.EngineerLocation, 0, len(r.locations))
	for _, loc := range r.locations {
		out = append(out, loc)
	}
	return out, nil
}
