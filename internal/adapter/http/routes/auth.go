package routes

import (
	"laptopcare/internal/adapter/http/handlers"
	"laptopcare/internal/adapter/http/middleware"
	"laptopcare/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth = "/auth"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, tokens interfaces.ITokenService) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.RequireAuth(tokens), authHandler.Me)
	}
}
