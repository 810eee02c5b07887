package entities

import "time"

// ProblemStatus represents the lifecycle of a troubleshooting problem.
//
// State machine: open -> solved | escalated. Both outcomes are terminal;
// transitions happen only through the troubleshooting use case backed by a
// conditional update on the stored status.

type ProblemStatus string

const (
	ProblemStatusOpen      ProblemStatus = "open"
	ProblemStatusSolved    ProblemStatus = "solved"
	ProblemStatusEscalated ProblemStatus = "escalated"
)

// Step is one ordered troubleshooting instruction within a Problem.
//
// StepNumber values are contiguous starting at 1. Instruction text is fixed
// at generation time; Completed is the only mutable field and only ever
// flips false -> true, in step-number order.

type Step struct {
	ID          string `json:"id"`
	ProblemID   string `json:"problem_id"`
	StepNumber  int    `json:"step_number"`
	Instruction string `json:"instruction"`
	Completed   bool   `json:"completed"`
}

// Problem is one troubleshooting session for a described laptop fault.
//
// Storage model (DynamoDB):
//   - PK: id
//   - steps are embedded in the item; the aggregate is small (one AI
//     generation, typically under a dozen steps) and updates need the
//     single-item conditional-write guarantees.
//
// CompletedSteps counts the contiguous completed prefix of Steps. It is the
// compare-and-set guard for in-order completion: completing step n requires
// CompletedSteps == n-1.

type Problem struct {
	ID             string        `json:"id"`
	OwnerID        string        `json:"owner_id"`
	LaptopBrand    string        `json:"laptop_brand"`
	LaptopModel    string        `json:"laptop_model"`
	Description    string        `json:"description"`
	Status         ProblemStatus `json:"status"`
	Steps          []Step        `json:"steps"`
	CompletedSteps int           `json:"completed_steps"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// StepByID returns the step with the given id, or nil.
func (p *Problem) StepByID(stepID string) *Step {
	for i := range p.Steps {
		if p.Steps[i].ID == stepID {
			return &p.Steps[i]
		}
	}
	return nil
}

// Exhausted reports whether every step is completed.
func (p *Problem) Exhausted() bool {
	return p.CompletedSteps == len(p.Steps)
}

// NextIncomplete returns the lowest-numbered incomplete step, or nil when
// the problem is exhausted.
func (p *Problem) NextIncomplete() *Step {
	if p.Exhausted() {
		return nil
	}
	return &p.Steps[p.CompletedSteps]
}
