package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_GenerateValidate_Roundtrip(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.Generate(userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
}

func TestHMACService_Validate_Expired(t *testing.T) {
	svc := NewHMACService("test-secret", time.Minute)

	issued := time.Now().UTC()
	svc.now = func() time.Time { return issued }

	token, err := svc.Generate(uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(2 * time.Minute) }
	if _, err := svc.Validate(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_Validate_WrongSecret(t *testing.T) {
	signer := NewHMACService("secret-a", time.Hour)
	verifier := NewHMACService("secret-b", time.Hour)

	token, err := signer.Generate(uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_Validate_Garbage(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	if _, err := svc.Validate("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_Generate_NoExpiry(t *testing.T) {
	svc := NewHMACService("test-secret", 0)

	token, err := svc.Generate(uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("expected no expiry claim")
	}
}
