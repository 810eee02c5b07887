package entities

import "time"

// Role is the authorization role attached to a user account.
//
// Roles are immutable after registration; every role-gated operation is an
// explicit guard on this single field rather than per-role types.

type Role string

const (
	RoleUser     Role = "user"
	RoleEngineer Role = "engineer"
	RoleAdmin    Role = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleEngineer, RoleAdmin:
		return true
	}
	return false
}

// User is an account persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// PasswordHash is a bcrypt hash and never leaves the persistence/usecase
// layers; responses map through dto/response.UserResponse.

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}
