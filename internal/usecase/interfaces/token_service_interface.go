package interfaces

import "laptopcare/internal/domain/entities"

// TokenClaims is the identity carried by a bearer token.
type TokenClaims struct {
	UserID string
	Role   entities.Role
}

// ITokenService issues and validates the bearer tokens used by the REST
// surface. The concrete implementation signs JWTs; the contract keeps the
// token format out of the business logic.

type ITokenService interface {
	Generate(userID string, role entities.Role) (string, error)
	Validate(token string) (TokenClaims, error)
}
