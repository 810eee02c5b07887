package middleware

import (
	"log"
	"net/http"
	"strings"

	"laptopcare/internal/domain/entities"
	"laptopcare/internal/usecase/interfaces"
	"laptopcare/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey   = "auth_user_id"
	ctxUserRoleKey = "auth_user_role"
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role for this operation", http.StatusForbidden)
)

// RequireAuth validates the Authorization bearer token and stores the
// caller's identity and role on the gin context for the handlers.
func RequireAuth(tokens interfaces.ITokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := tokens.Validate(strings.TrimSpace(raw))
		if err != nil {
			log.Printf("[auth][middleware] token rejected err=%v", err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route to the given roles. Must run after RequireAuth.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := UserRole(c)
		for _, role := range roles {
			if actor == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
	}
}

// UserID returns the authenticated account id, or "" outside RequireAuth.
func UserID(c *gin.Context) string {
	id, _ := c.Get(ctxUserIDKey)
	s, _ := id.(string)
	return s
}

// UserRole returns the authenticated account role, or "" outside RequireAuth.
func UserRole(c *gin.Context) entities.Role {
	v, _ := c.Get(ctxUserRoleKey)
	r, _ := v.(entities.Role)
	return r
}
