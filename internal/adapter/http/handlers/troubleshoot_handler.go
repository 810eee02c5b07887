package handlers

import (
	"errors"
	"log"
	"net/http"

	request "laptopcare/internal/adapter/http/dto/request"
	response "laptopcare/internal/adapter/http/dto/response"
	"laptopcare/internal/adapter/http/middleware"
	"laptopcare/internal/usecase"
	"laptopcare/pkg"

	"github.com/gin-gonic/gin"
)

// TroubleshootHandler handles HTTP requests for troubleshooting sessions:
// problem creation, step completion and outcome recording.

type TroubleshootHandler struct {
	usecase usecase.ITroubleshootingUseCase
}

func NewTroubleshootHandler(uc usecase.ITroubleshootingUseCase) *TroubleshootHandler {
	return &TroubleshootHandler{usecase: uc}
}

// CreateProblem generates the troubleshooting steps for a described fault
// and returns the new problem with its full step list.
func (h *TroubleshootHandler) CreateProblem(c *gin.Context) {
	var payload request.ProblemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	problem, err := h.usecase.CreateProblem(c.Request.Context(), middleware.UserID(c), payload.LaptopBrand, payload.LaptopModel, payload.Description)
	if err != nil {
		log.Printf("[troubleshoot][handler] create failed err=%v", err)
		appErr := mapTroubleshootError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProblem(problem))
}

// GetProblem returns a problem with its steps. Owner or admin only.
func (h *TroubleshootHandler) GetProblem(c *gin.Context) {
	problem, err := h.usecase.GetProblem(c.Request.Context(), c.Param("problem_id"), middleware.UserID(c), middleware.UserRole(c))
	if err != nil {
		appErr := mapTroubleshootError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProblem(problem))
}

// CompleteStep marks one step done for the problem owner.
func (h *TroubleshootHandler) CompleteStep(c *gin.Context) {
	step, err := h.usecase.CompleteStep(c.Request.Context(), c.Param("problem_id"), c.Param("step_id"), middleware.UserID(c))
	if err != nil {
		appErr := mapTroubleshootError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStep(step))
}

// RecordOutcome finalizes an exhausted problem as solved or escalated.
func (h *TroubleshootHandler) RecordOutcome(c *gin.Context) {
	var payload request.OutcomeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	problem, err := h.usecase.RecordOutcome(c.Request.Context(), c.Param("problem_id"), middleware.UserID(c), *payload.Worked)
	if err != nil {
		appErr := mapTroubleshootError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProblem(problem))
}

func mapTroubleshootError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProblemInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProblemNotFound):
		return pkg.NewDomainErrorSimple("PROBLEM_NOT_FOUND", "Problem not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStepNotFound):
		return pkg.NewDomainErrorSimple("STEP_NOT_FOUND", "Step not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotProblemOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only the problem owner may do this", http.StatusForbidden)
	case errors.Is(err, usecase.ErrStepOutOfOrder):
		return pkg.NewDomainErrorSimple("STEP_OUT_OF_ORDER", "Earlier steps are not completed yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrOutcomePremature):
		return pkg.NewDomainErrorSimple("OUTCOME_PREMATURE", "Problem still has incomplete steps", http.StatusConflict)
	case errors.Is(err, usecase.ErrProblemFinalized):
		return pkg.NewDomainErrorSimple("PROBLEM_FINALIZED", "Problem already finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrStepProviderUnavailable):
		return pkg.NewDomainErrorSimple("STEP_PROVIDER_UNAVAILABLE", "Step generation provider unavailable", http.StatusBadGateway)
	default:
		return fallbackError(err)
	}
}
