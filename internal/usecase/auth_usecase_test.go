package usecase

import (
	"context"
	"errors"
	"testing"

	"laptopcare/internal/domain/entities"
	mock_interfaces "laptopcare/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, err := uc.Register(context.Background(), "", "ada@example.com", "s3cretpass", entities.RoleUser)
		if !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("expected ErrInvalidUserInput, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, err := uc.Register(context.Background(), "Ada", "ada@example.com", "s3cretpass", entities.Role("root"))
		if !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("expected ErrInvalidUserInput, got %v", err)
		}
	})

	t.Run("email already registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(entities.User{ID: "existing"}, nil)

		_, err := uc.Register(context.Background(), "Ada", "Ada@Example.com", "s3cretpass", "")
		if !errors.Is(err, ErrEmailAlreadyRegistered) {
			t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
		}
	})

	t.Run("success defaults to user role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID == "" || u.Email != "ada@example.com" || u.Role != entities.RoleUser || !u.Active {
					t.Fatalf("unexpected user: %+v", u)
				}
				if u.PasswordHash == "" || u.PasswordHash == "s3cretpass" {
					t.Fatalf("expected hashed password")
				}
				return u, nil
			},
		)

		res, err := uc.Register(context.Background(), " Ada ", " Ada@Example.com ", "s3cretpass", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Ada" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("engineer role accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "eng@example.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) { return u, nil },
		)

		res, err := uc.Register(context.Background(), "Eve", "eng@example.com", "s3cretpass", entities.RoleEngineer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Role != entities.RoleEngineer {
			t.Fatalf("expected engineer role, got %s", res.Role)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	account := entities.User{
		ID:           "user-1",
		Email:        "ada@example.com",
		PasswordHash: string(hash),
		Role:         entities.RoleUser,
		Active:       true,
	}

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(entities.User{}, nil)

		_, _, err := uc.Login(context.Background(), "ada@example.com", "s3cretpass")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(account, nil)

		_, _, err := uc.Login(context.Background(), "ada@example.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("inactive account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		inactive := account
		inactive.Active = false
		users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(inactive, nil)

		_, _, err := uc.Login(context.Background(), "ada@example.com", "s3cretpass")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(users, tokens)

		users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(account, nil)
		tokens.EXPECT().Generate("user-1", entities.RoleUser).Return("signed-token", nil)

		token, user, err := uc.Login(context.Background(), " Ada@Example.com ", "s3cretpass")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "signed-token" || user.ID != "user-1" {
			t.Fatalf("unexpected result: token=%s user=%+v", token, user)
		}
	})
}

func TestAuthUseCase_GetUser(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, err := uc.GetUser(context.Background(), "  ")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{}, nil)

		_, err := uc.GetUser(context.Background(), "user-1")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)

		res, err := uc.GetUser(context.Background(), " user-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "user-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
