package interfaces

import "context"

// IStepGenerator abstracts the AI provider that turns a fault description
// into an ordered list of troubleshooting instructions (e.g. Gemini).
//
// Implementations must honor ctx cancellation; the use case bounds the call
// with a timeout and treats an error or empty list as provider failure.

type IStepGenerator interface {
	GenerateSteps(ctx context.Context, laptopBrand, laptopModel, description string) ([]string, error)
}
