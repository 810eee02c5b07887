package request

// ProblemRequest opens a troubleshooting session for a described fault.
type ProblemRequest struct {
	LaptopBrand string `json:"laptop_brand" binding:"required"`
	LaptopModel string `json:"laptop_model" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// OutcomeRequest records whether the generated steps fixed the problem.
// Worked is a pointer so an explicit false binds.
type OutcomeRequest struct {
	Worked *bool `json:"worked" binding:"required"`
}
