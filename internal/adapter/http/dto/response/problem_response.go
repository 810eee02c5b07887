package response

import (
	"time"

	"laptopcare/internal/domain/entities"
)

type StepResponse struct {
	ID          string `json:"id"`
	ProblemID   string `json:"problem_id"`
	StepNumber  int    `json:"step_number"`
	Instruction string `json:"instruction"`
	Completed   bool   `json:"completed"`
}

type ProblemResponse struct {
	ID          string         `json:"id"`
	OwnerID     string         `json:"owner_id"`
	LaptopBrand string         `json:"laptop_brand"`
	LaptopModel string         `json:"laptop_model"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	Steps       []StepResponse `json:"steps"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func FromStep(s entities.Step) StepResponse {
	return StepResponse{
		ID:          s.ID,
		ProblemID:   s.ProblemID,
		StepNumber:  s.StepNumber,
		Instruction: s.Instruction,
		Completed:   s.Completed,
	}
}

func FromProblem(p entities.Problem) ProblemResponse {
	steps := make([]StepResponse, 0, len(p.Steps))
	for _, s := range p.Steps {
		steps = append(steps, FromStep(s))
	}
	return ProblemResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		LaptopBrand: p.LaptopBrand,
		LaptopModel: p.LaptopModel,
		Description: p.Description,
		Status:      string(p.Status),
		Steps:       steps,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
