package identity

import (
	"context"
	"net/http"
	"strings"
	"time"

	"pet-board/internal/platform/httpclient"
)

const fetchPath = "/api/getAuthenticatedUserId"

// Bridge es el cliente Go del endpoint de identidad. Normaliza la respuesta
// a un State y nunca devuelve error: una falla de transporte es KindFailed,
// que es un resultado, no una excepción. Cada llamada es un request fresco
// (sin cache).
type Bridge struct {
	http *httpclient.Client
}

func NewBridge(baseURL string, timeout time.Duration) (*Bridge, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Bridge{http: hc}, nil
}

// FetchCurrentUserID consulta la identidad autenticada actual.
// headers permite propagar el contexto de sesión ambiente (cookie/bearer),
// que para el bridge es opaco.
func (b *Bridge) FetchCurrentUserID(ctx context.Context, headers map[string]string) State {
	if b == nil || b.http == nil {
		return Failed()
	}

	var out struct {
		ID *string `json:"id"`
	}
	if err := b.http.DoJSON(ctx, http.MethodGet, fetchPath, headers, nil, &out); err != nil {
		// transporte o upstream caído: distinto de "sin sesión"
		return Failed()
	}

	if out.ID == nil || strings.TrimSpace(*out.ID) == "" {
		return None()
	}
	return User(strings.TrimSpace(*out.ID))
}
