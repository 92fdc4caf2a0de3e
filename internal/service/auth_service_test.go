package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sefazor/galbi-backend/internal/models"
	"github.com/sefazor/galbi-backend/pkg/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	env := newTestEnv(t)
	resp, err := env.auth.Register(context.Background(), models.RegisterRequest{
		Username: " alice ",
		Password: "secret123",
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env.mailer.wait(t)

	if resp.User.Username != "alice" {
		t.Errorf("username = %q, want trimmed", resp.User.Username)
	}
	if resp.User.GenerationsRemaining != 2 || resp.User.IsPremium {
		t.Errorf("new user quota = %+v", resp.User)
	}

	claims, err := env.tokens.ValidateToken(resp.Token)
	if err != nil || claims.UserID != resp.User.ID {
		t.Fatalf("token claims = %+v, err = %v", claims, err)
	}

	stored, _ := env.store.Users.GetByID(context.Background(), resp.User.ID)
	if stored.Password == "secret123" || !bcrypt.VerifyHash(stored.Password) {
		t.Error("password must be stored as a bcrypt hash")
	}
	if len(env.mailer.welcomes) != 1 || env.mailer.welcomes[0] != "alice@example.com" {
		t.Errorf("welcome emails = %v", env.mailer.welcomes)
	}
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob")

	_, err := env.auth.Register(context.Background(), models.RegisterRequest{Username: "bob", Password: "another1", Email: "b2@example.com"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "carol")

	resp, err := env.auth.Login(context.Background(), models.LoginRequest{Username: "carol", Password: "secret123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.User.ID != user.ID || resp.Token == "" {
		t.Errorf("login response = %+v", resp)
	}

	if _, err := env.auth.Login(context.Background(), models.LoginRequest{Username: "carol", Password: "wrong-pass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := env.auth.Login(context.Background(), models.LoginRequest{Username: "nobody", Password: "secret123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}
