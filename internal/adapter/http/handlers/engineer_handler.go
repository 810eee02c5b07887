package handlers

import (
	"errors"
	"net/http"

	request "laptopcare/internal/adapter/http/dto/request"
	response "laptopcare/internal/adapter/http/dto/response"
	"laptopcare/internal/adapter/http/middleware"
	"laptopcare/internal/usecase"
	"laptopcare/pkg"

	"github.com/gin-gonic/gin"
)

// EngineerHandler handles the locator endpoints: proximity search for users
// and location updates from engineers.

type EngineerHandler struct {
	usecase usecase.IEngineerLocatorUseCase
}

func NewEngineerHandler(uc usecase.IEngineerLocatorUseCase) *EngineerHandler {
	return &EngineerHandler{usecase: uc}
}

// FindNearby returns engineers ranked by great-circle distance from the
// caller's coordinates.
func (h *EngineerHandler) FindNearby(c *gin.Context) {
	var payload request.NearbyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	ranked, err := h.usecase.FindNearby(c.Request.Context(), usecase.NearbyQuery{
		Latitude:  *payload.Latitude,
		Longitude: *payload.Longitude,
		RadiusKM:  payload.RadiusKM,
		Limit:     payload.Limit,
	})
	if err != nil {
		appErr := mapLocatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNearbyEngineers(ranked))
}

// UpdateLocation stores the authenticated engineer's current position.
func (h *EngineerHandler) UpdateLocation(c *gin.Context) {
	var payload request.LocationUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	loc, err := h.usecase.UpdateLocation(c.Request.Context(), middleware.UserID(c), *payload.Latitude, *payload.Longitude)
	if err != nil {
		appErr := mapLocatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEngineerLocation(loc))
}

func mapLocatorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCoordinate):
		return pkg.NewDomainErrorSimple("INVALID_COORDINATE", "Latitude or longitude out of range", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoEngineersAvailable):
		return pkg.NewDomainErrorSimple("NO_ENGINEERS_AVAILABLE", "No engineers have published a location", http.StatusNotFound)
	default:
		return fallbackError(err)
	}
}
