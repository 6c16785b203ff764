package jwtkey

import (
	"context"
	"strings"

	"pet-board/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

// Claims del token de sesión. El user id viaja en "sub".
type sessionClaims struct {
	jwt.RegisteredClaims
}

// Verifier implementa auth.SessionVerifier validando localmente el JWT de
// sesión con la signing key compartida con el proveedor (HS256).
// Al no salir a la red, acá nunca hay auth.ErrUnavailable.
type Verifier struct {
	signingKey []byte
}

func NewVerifier(signingKey string) *Verifier {
	return &Verifier{signingKey: []byte(signingKey)}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || len(v.signingKey) == 0 {
		return auth.Claims{}, auth.ErrUnavailable
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return v.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return auth.Claims{}, auth.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || strings.TrimSpace(claims.Subject) == "" {
		return auth.Claims{}, auth.ErrUnauthorized
	}

	return auth.Claims{UserID: strings.TrimSpace(claims.Subject)}, nil
}
