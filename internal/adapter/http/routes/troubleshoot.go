package routes

import (
	"laptopcare/internal/adapter/http/handlers"
	"laptopcare/internal/adapter/http/middleware"
	"laptopcare/internal/domain/entities"
	"laptopcare/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const (
	PathTroubleshoot = "/troubleshoot"
	PathEngineers    = "/engineers"
	PathBookings     = "/bookings"
)

func addTroubleshootRoutes(rg *gin.RouterGroup, tokens interfaces.ITokenService, troubleshootHandler *handlers.TroubleshootHandler, engineerHandler *handlers.EngineerHandler, bookingHandler *handlers.BookingHandler) {
	troubleshoot := rg.Group(PathTroubleshoot)
	troubleshoot.Use(middleware.RequireAuth(tokens))
	{
		troubleshoot.POST("", middleware.RequireRole(entities.RoleUser), troubleshootHandler.CreateProblem)
		troubleshoot.GET("/problems/:problem_id", troubleshootHandler.GetProblem)
		troubleshoot.PATCH("/:problem_id/step/:step_id", troubleshootHandler.CompleteStep)
		troubleshoot.PATCH("/:problem_id/outcome", troubleshootHandler.RecordOutcome)

		engineers := troubleshoot.Group(PathEngineers)
		{
			engineers.POST("/nearby", middleware.RequireRole(entities.RoleUser), engineerHandler.FindNearby)
			engineers.PUT("/me/location", middleware.RequireRole(entities.RoleEngineer), engineerHandler.UpdateLocation)
		}

		bookings := troubleshoot.Group(PathBookings)
		{
			bookings.POST("", bookingHandler.CreateBooking)
			bookings.PATCH("/:booking_id/confirm", middleware.RequireRole(entities.RoleEngineer, entities.RoleAdmin), bookingHandler.ConfirmBooking)
		}
	}
}
