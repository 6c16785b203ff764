package auth

import (
	"context"
	"errors"
)

var (
	// ErrUnauthorized: el token no corresponde a una sesión válida.
	ErrUnauthorized = errors.New("session unauthorized")

	// ErrUnavailable: la verificación en sí falló (transporte/upstream).
	// Nunca se debe confundir con "no hay sesión".
	ErrUnavailable = errors.New("session check unavailable")
)

// SessionVerifier verifica un token de sesión y devuelve claims o error.
// Los adapters deben mapear sus fallas a ErrUnauthorized / ErrUnavailable
// para que el middleware pueda distinguirlas.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
