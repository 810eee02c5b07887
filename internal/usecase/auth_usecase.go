package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"laptopcare/internal/domain/entities"
	"laptopcare/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidUserInput       = errors.New("invalid user input")
	ErrUserNotFound           = errors.New("user not found")
)

// IAuthUseCase covers account registration and login:
//   - POST /auth/register => Register()
//   - POST /auth/login => Login()
//   - GET /auth/me => GetUser()

type IAuthUseCase interface {
	Register(ctx context.Context, name, email, password string, role entities.Role) (entities.User, error)
	Login(ctx context.Context, email, password string) (string, entities.User, error)
	GetUser(ctx context.Context, id string) (entities.User, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	tokens interfaces.ITokenService
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens interfaces.ITokenService) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

func (u *AuthUseCase) Register(ctx context.Context, name, email, password string, role entities.Role) (entities.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if role == "" {
		role = entities.RoleUser
	}
	if name == "" || email == "" || password == "" || !entities.ValidRole(role) {
		return entities.User{}, ErrInvalidUserInput
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := u.users.Create(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	log.Printf("[auth][usecase] user registered user_id=%s role=%s", created.ID, created.Role)
	return created, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return "", entities.User{}, err
	}
	if user.ID == "" || !user.Active {
		return "", entities.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", entities.User{}, ErrInvalidCredentials
	}

	token, err := u.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return "", entities.User{}, err
	}
	return token, user, nil
}

func (u *AuthUseCase) GetUser(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrUserNotFound
	}
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
