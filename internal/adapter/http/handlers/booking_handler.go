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

// BookingHandler handles the engineer-visit booking workflow.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// CreateBooking opens a pending booking against an engineer for a problem
// owned by the caller.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.BookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.Create(c.Request.Context(), middleware.UserID(c), payload.ProblemID, payload.EngineerID, payload.ScheduledTime)
	if err != nil {
		log.Printf("[booking][handler] create failed problem_id=%s engineer_id=%s err=%v", payload.ProblemID, payload.EngineerID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBooking(booking))
}

// ConfirmBooking settles a pending booking as confirmed or rejected. Only
// the booked engineer or an admin may decide, and only once.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var payload request.ConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.Decide(c.Request.Context(), c.Param("booking_id"), middleware.UserID(c), middleware.UserRole(c), *payload.Confirmed)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProblemNotFound):
		return pkg.NewDomainErrorSimple("PROBLEM_NOT_FOUND", "Problem not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEngineerNotFound):
		return pkg.NewDomainErrorSimple("ENGINEER_NOT_FOUND", "Engineer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotBookingProblemOwner), errors.Is(err, usecase.ErrBookingForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor may not perform this booking operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEngineerRoleMismatch):
		return pkg.NewDomainErrorSimple("ENGINEER_ROLE_MISMATCH", "Booked account does not hold the engineer role", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidSchedule):
		return pkg.NewDomainErrorSimple("INVALID_SCHEDULE", "Scheduled time must be in the future", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrBookingAlreadyDecided):
		return pkg.NewDomainErrorSimple("BOOKING_ALREADY_DECIDED", "Booking was already confirmed or rejected", http.StatusConflict)
	default:
		return fallbackError(err)
	}
}
