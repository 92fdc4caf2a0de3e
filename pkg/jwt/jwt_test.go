package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret", "galbi", time.Hour)
	token, err := m.GenerateToken(42, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	token, _ := NewManager("secret-a", "galbi", time.Hour).GenerateToken(1, "bob")
	_, err := NewManager("secret-b", "galbi", time.Hour).ValidateToken(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidate_WrongIssuer(t *testing.T) {
	token, _ := NewManager("secret", "other", time.Hour).GenerateToken(1, "bob")
	if _, err := NewManager("secret", "galbi", time.Hour).ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidate_Expired(t *testing.T) {
	m := NewManager("secret", "galbi", time.Minute)
	issued := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return issued }
	token, err := m.GenerateToken(1, "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.now = time.Now
	if _, err := m.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidate_Garbage(t *testing.T) {
	m := NewManager("secret", "galbi", 0)
	if m.TTL() != DefaultTokenExpiry {
		t.Errorf("ttl = %v, want %v", m.TTL(), DefaultTokenExpiry)
	}
	if _, err := m.ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
