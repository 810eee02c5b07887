package handlers

import (
	"laptopcare/internal/adapter/http/middleware"
	"laptopcare/internal/domain/entities"
	"laptopcare/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// staticTokens is a token service stub that always resolves to one identity.
type staticTokens struct {
	claims interfaces.TokenClaims
}

func (s staticTokens) Generate(string, entities.Role) (string, error) {
	return "tok", nil
}

func (s staticTokens) Validate(string) (interfaces.TokenClaims, error) {
	return s.claims, nil
}

// authedRouter builds a test router whose requests run as the given account.
// Requests still need the Authorization header set to "Bearer tok".
func authedRouter(userID string, role entities.Role) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequireAuth(staticTokens{claims: interfaces.TokenClaims{UserID: userID, Role: role}}))
	return r
}
