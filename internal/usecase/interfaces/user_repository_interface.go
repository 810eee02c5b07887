package interfaces

import (
	"context"

	"laptopcare/internal/domain/entities"
)

// IUserRepository abstracts persistence for User accounts.
//
// GetByID/GetByEmail return the zero User when no account matches; the use
// case layer maps that to its not-found sentinel.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	ListByRole(ctx context.Context, role entities.Role) ([]entities.User, error)
}
