package jwtkey

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-board/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, key string, sub string, exp time.Time) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := tok.SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestVerify_ValidToken(t *testing.T) {
	v := NewVerifier("secret")
	tok := signToken(t, "secret", "u1", time.Now().Add(time.Hour))

	claims, err := v.Verify(context.Background(), tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "u1" {
		t.Fatalf("expected u1, got %q", claims.UserID)
	}
}

func TestVerify_WrongKey(t *testing.T) {
	v := NewVerifier("secret")
	tok := signToken(t, "other-key", "u1", time.Now().Add(time.Hour))

	if _, err := v.Verify(context.Background(), tok); !errors.Is(err, auth.ErrUnauthorized) {
		t.Fatalf("expected auth.ErrUnauthorized, got %v", err)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	v := NewVerifier("secret")
	tok := signToken(t, "secret", "u1", time.Now().Add(-time.Minute))

	if _, err := v.Verify(context.Background(), tok); !errors.Is(err, auth.ErrUnauthorized) {
		t.Fatalf("expected auth.ErrUnauthorized, got %v", err)
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	v := NewVerifier("secret")
	tok := signToken(t, "secret", "", time.Now().Add(time.Hour))

	if _, err := v.Verify(context.Background(), tok); !errors.Is(err, auth.ErrUnauthorized) {
		t.Fatalf("expected auth.ErrUnauthorized, got %v", err)
	}
}

func TestVerify_EmptyToken(t *testing.T) {
	v := NewVerifier("secret")
	if _, err := v.Verify(context.Background(), "  "); !errors.Is(err, auth.ErrUnauthorized) {
		t.Fatalf("expected auth.ErrUnauthorized, got %v", err)
	}
}
