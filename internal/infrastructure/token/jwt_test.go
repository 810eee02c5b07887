package token

import (
	"errors"
	"testing"
	"time"

	"laptopcare/internal/domain/entities"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-signing-key", "laptopcare", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		signed, err := svc.Generate("user-1", entities.RoleEngineer)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}

		claims, err := svc.Validate(signed)
		if err != nil {
			t.Fatalf("validate: %v", err)
		}
		if claims.UserID != "user-1" || claims.Role != entities.RoleEngineer {
			t.Fatalf("unexpected claims: %+v", claims)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Validate("not.a.jwt")
		if !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := NewJWTService("different-key", "laptopcare", time.Hour)
		signed, err := other.Generate("user-1", entities.RoleUser)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}

		_, err = svc.Validate(signed)
		if !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		short := NewJWTService("test-signing-key", "laptopcare", time.Nanosecond)
		signed, err := short.Generate("user-1", entities.RoleUser)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		time.Sleep(10 * time.Millisecond)

		_, err = svc.Validate(signed)
		if !errors.Is(err, ErrTokenExpired) {
			t.Fatalf("expected ErrTokenExpired, got %v", err)
		}
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		signed, err := svc.Generate("user-1", entities.Role("superuser"))
		if err != nil {
			t.Fatalf("generate: %v", err)
		}

		_, err = svc.Validate(signed)
		if !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})
}
