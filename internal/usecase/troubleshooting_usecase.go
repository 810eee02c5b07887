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
	ErrProblemNotFound         = errors.New("problem not found")
	ErrStepNotFound            = errors.New("step not found")
	ErrNotProblemOwner         = errors.New("actor is not the problem owner")
	ErrStepOutOfOrder          = errors.New("previous steps are not completed")
	ErrOutcomePremature        = errors.New("problem still has incomplete steps")
	ErrProblemFinalized        = errors.New("problem already finalized")
	ErrInvalidProblemInput     = errors.New("invalid problem input")
	ErrStepProviderUnavailable = errors.New("step provider unavailable")
)

const defaultStepGeneratorTimeout = 30 * time.Second

// ITroubleshootingUseCase exposes the troubleshooting session lifecycle:
//   - POST /troubleshoot/ => CreateProblem()
//   - GET /troubleshoot/problems/{id} => GetProblem()
//   - PATCH /troubleshoot/{id}/step/{step_id} => CompleteStep()
//   - PATCH /troubleshoot/{id}/outcome => RecordOutcome()

type ITroubleshootingUseCase interface {
	CreateProblem(ctx context.Context, ownerID, laptopBrand, laptopModel, description string) (entities.Problem, error)
	GetProblem(ctx context.Context, problemID, actorID string, actorRole entities.Role) (entities.Problem, error)
	CompleteStep(ctx context.Context, problemID, stepID, actorID string) (entities.Step, error)
	RecordOutcome(ctx context.Context, problemID, actorID string, worked bool) (entities.Problem, error)
}

type TroubleshootingUseCase struct {
	repo       interfaces.IProblemRepository
	generator  interfaces.IStepGenerator
	genTimeout time.Duration
}

var _ ITroubleshootingUseCase = (*TroubleshootingUseCase)(nil)

func NewTroubleshootingUseCase(repo interfaces.IProblemRepository, generator interfaces.IStepGenerator, genTimeout time.Duration) *TroubleshootingUseCase {
	if genTimeout <= 0 {
		genTimeout = defaultStepGeneratorTimeout
	}
	return &TroubleshootingUseCase{repo: repo, generator: generator, genTimeout: genTimeout}
}

// CreateProblem generates the ordered instruction list for the described
// fault and persists an open problem with every step incomplete. Steps are
// generated exactly once; they are never regenerated for an existing problem.
func (u *TroubleshootingUseCase) CreateProblem(ctx context.Context, ownerID, laptopBrand, laptopModel, description string) (entities.Problem, error) {
	ownerID = strings.TrimSpace(ownerID)
	laptopBrand = strings.TrimSpace(laptopBrand)
	laptopModel = strings.TrimSpace(laptopModel)
	description = strings.TrimSpace(description)
	if ownerID == "" || laptopBrand == "" || laptopModel == "" || description == "" {
		return entities.Problem{}, ErrInvalidProblemInput
	}
	if u.generator == nil {
		log.Printf("[troubleshoot][usecase] step generator not configured")
		return entities.Problem{}, ErrStepProviderUnavailable
	}

	genCtx, cancel := context.WithTimeout(ctx, u.genTimeout)
	defer cancel()

	instructions, err := u.generator.GenerateSteps(genCtx, laptopBrand, laptopModel, description)
	if err != nil {
		log.Printf("[troubleshoot][usecase] step generation failed brand=%s model=%s err=%v", laptopBrand, laptopModel, err)
		return entities.Problem{}, ErrStepProviderUnavailable
	}

	cleaned := make([]string, 0, len(instructions))
	for _, ins := range instructions {
		if ins = strings.TrimSpace(ins); ins != "" {
			cleaned = append(cleaned, ins)
		}
	}
	if len(cleaned) == 0 {
		log.Printf("[troubleshoot][usecase] step generation returned no usable instructions brand=%s model=%s", laptopBrand, laptopModel)
		return entities.Problem{}, ErrStepProviderUnavailable
	}

	now := time.Now().UTC()
	p := entities.Problem{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		LaptopBrand: laptopBrand,
		LaptopModel: laptopModel,
		Description: description,
		Status:      entities.ProblemStatusOpen,
		Steps:       make([]entities.Step, 0, len(cleaned)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i, ins := range cleaned {
		p.Steps = append(p.Steps, entities.Step{
			ID:          uuid.NewString(),
			ProblemID:   p.ID,
			StepNumber:  i + 1,
			Instruction: ins,
		})
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Problem{}, err
	}
	log.Printf("[troubleshoot][usecase] problem created problem_id=%s owner_id=%s steps=%d", created.ID, ownerID, len(created.Steps))
	return created, nil
}

func (u *TroubleshootingUseCase) GetProblem(ctx context.Context, problemID, actorID string, actorRole entities.Role) (entities.Problem, error) {
	p, err := u.getProblem(ctx, problemID)
	if err != nil {
		return entities.Problem{}, err
	}
	if p.OwnerID != actorID && actorRole != entities.RoleAdmin {
		return entities.Problem{}, ErrNotProblemOwner
	}
	return p, nil
}

// CompleteStep marks one step completed on behalf of the problem owner.
// Steps complete strictly in step-number order; re-completing an already
// completed step is a no-op returning the current state so client retries
// stay safe.
func (u *TroubleshootingUseCase) CompleteStep(ctx context.Context, problemID, stepID, actorID string) (entities.Step, error) {
	stepID = strings.TrimSpace(stepID)
	if stepID == "" {
		return entities.Step{}, ErrStepNotFound
	}

	p, err := u.getProblem(ctx, problemID)
	if err != nil {
		return entities.Step{}, err
	}
	if p.OwnerID != actorID {
		return entities.Step{}, ErrNotProblemOwner
	}

	step := p.StepByID(stepID)
	if step == nil {
		return entities.Step{}, ErrStepNotFound
	}
	if step.Completed {
		return *step, nil
	}
	if step.StepNumber != p.CompletedSteps+1 {
		return entities.Step{}, ErrStepOutOfOrder
	}

	updated, err := u.repo.CompleteStep(ctx, p.ID, step.StepNumber)
	if err != nil {
		return entities.Step{}, err
	}
	if updated.ID == "" {
		// Lost a write race; re-read to tell an idempotent retry apart from
		// a genuine ordering violation.
		cur, err := u.getProblem(ctx, problemID)
		if err != nil {
			return entities.Step{}, err
		}
		if s := cur.StepByID(stepID); s != nil && s.Completed {
			return *s, nil
		}
		return entities.Step{}, ErrStepOutOfOrder
	}

	done := updated.StepByID(stepID)
	if done == nil {
		return entities.Step{}, ErrStepNotFound
	}
	return *done, nil
}

// RecordOutcome finalizes an exhausted problem as solved (the steps worked)
// or escalated (an engineer visit is needed). Both outcomes are terminal.
func (u *TroubleshootingUseCase) RecordOutcome(ctx context.Context, problemID, actorID string, worked bool) (entities.Problem, error) {
	p, err := u.getProblem(ctx, problemID)
	if err != nil {
		return entities.Problem{}, err
	}
	if p.OwnerID != actorID {
		return entities.Problem{}, ErrNotProblemOwner
	}
	if p.Status != entities.ProblemStatusOpen {
		return entities.Problem{}, ErrProblemFinalized
	}
	if !p.Exhausted() {
		return entities.Problem{}, ErrOutcomePremature
	}

	status := entities.ProblemStatusEscalated
	if worked {
		status = entities.ProblemStatusSolved
	}

	updated, err := u.repo.FinalizeStatus(ctx, p.ID, status, len(p.Steps))
	if err != nil {
		return entities.Problem{}, err
	}
	if updated.ID == "" {
		cur, err := u.getProblem(ctx, problemID)
		if err != nil {
			return entities.Problem{}, err
		}
		if cur.Status != entities.ProblemStatusOpen {
			return entities.Problem{}, ErrProblemFinalized
		}
		return entities.Problem{}, ErrOutcomePremature
	}
	log.Printf("[troubleshoot][usecase] outcome recorded problem_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *TroubleshootingUseCase) getProblem(ctx context.Context, problemID string) (entities.Problem, error) {
	problemID = strings.TrimSpace(problemID)
	if problemID == "" {
		return entities.Problem{}, ErrProblemNotFound
	}
	p, err := u.repo.GetByID(ctx, problemID)
	if err != nil {
		return entities.Problem{}, err
	}
	if p.ID == "" {
		return entities.Problem{}, ErrProblemNotFound
	}
	return p, nil
}
