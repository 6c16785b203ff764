package middleware

import (
	"errors"
	"net/http"
	"strings"

	"pet-board/internal/domain/identity"
	"pet-board/internal/ports/auth"
)

const sessionCookie = "__session"

// SessionContext resuelve la identidad del request y la deja en el contexto
// como identity.State:
// - Si verifier == nil => modo dev: X-Debug-User-ID setea la sesión.
// - Con verifier: toma el token de la cookie __session o del Bearer header.
//   Sin token => KindNone. Token inválido => KindNone. Falla del verifier
//   (transporte/upstream) => KindFailed, nunca KindNone.
// Los handlers deciden qué exigir; acá no se corta ningún request.
func SessionContext(verifier auth.SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st := resolve(r, verifier)
			next.ServeHTTP(w, r.WithContext(identity.NewContext(r.Context(), st)))
		})
	}
}

func resolve(r *http.Request, verifier auth.SessionVerifier) identity.State {
	// Dev mode: permitir inyectar user sin verifier
	if verifier == nil {
		if uid := strings.TrimSpace(r.Header.Get("X-Debug-User-ID")); uid != "" {
			return identity.User(uid)
		}
		return identity.None()
	}

	token := sessionToken(r)
	if token == "" {
		return identity.None()
	}

	claims, err := verifier.Verify(r.Context(), token)
	if err != nil {
		if errors.Is(err, auth.ErrUnavailable) {
			return identity.Failed()
		}
		// token vencido/inválido => equivale a "sin sesión"
		return identity.None()
	}

	uid := strings.TrimSpace(claims.UserID)
	if uid == "" {
		return identity.None()
	}
	return identity.User(uid)
}

// sessionToken busca el token primero en la cookie de sesión y después
// en Authorization: Bearer.
func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if v := strings.TrimSpace(c.Value); v != "" {
			return v
		}
	}
	return bearerToken(r.Header.Get("Authorization"))
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
