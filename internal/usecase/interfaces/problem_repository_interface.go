package interfaces

import (
	"context"

	"laptopcare/internal/domain/entities"
)

// IProblemRepository abstracts persistence for the Problem aggregate.
//
// CompleteStep and FinalizeStatus are conditional writes:
//   - CompleteStep marks step stepNumber completed only while the stored
//     completed-step counter equals stepNumber-1 and the problem is open.
//   - FinalizeStatus moves an open, fully-completed problem to its terminal
//     status.
//
// Both return the zero Problem when the condition fails; the use case
// re-reads to distinguish idempotent retries from genuine ordering or
// lifecycle violations.

type IProblemRepository interface {
	Create(ctx context.Context, p entities.Problem) (entities.Problem, error)
	GetByID(ctx context.Context, id string) (entities.Problem, error)
	CompleteStep(ctx context.Context, problemID string, stepNumber int) (entities.Problem, error)
	FinalizeStatus(ctx context.Context, problemID string, status entities.ProblemStatus, totalSteps int) (entities.Problem, error)
}
