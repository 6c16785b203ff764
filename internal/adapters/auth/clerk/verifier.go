package clerk

import (
	"context"
	"errors"

	"pet-board/internal/ports/auth"
)

// Verifier implementa auth.SessionVerifier contra el proveedor remoto.
// Mapea las fallas del cliente a los sentinels del port para que el
// middleware distinga "sin sesión" de "la consulta falló".
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, auth.ErrUnavailable
	}

	claims, err := v.client.VerifySession(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			return auth.Claims{}, auth.ErrUnauthorized
		default:
			// upstream caído o sin configurar: la verificación no pudo hacerse
			return auth.Claims{}, auth.ErrUnavailable
		}
	}
	return claims, nil
}
