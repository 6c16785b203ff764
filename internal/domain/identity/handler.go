package identity

import (
	"encoding/json"
	"net/http"

	"pet-board/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el endpoint de identidad.
// Contrato: 200 {"id": "<userId>"} con sesión, 200 {"id": null} sin sesión,
// 502 {"error": "identity_check_failed"} cuando la verificación en sí falló.
// null y "falló la consulta" jamás se confunden.
func RegisterRoutes(r chi.Router, m *metrics.Metrics) {
	r.Get("/getAuthenticatedUserId", currentUserHandler(m))
}

type currentUserResponse struct {
	ID *string `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func currentUserHandler(m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := FromContext(r.Context())
		m.IncIdentityCheck(st.Kind.String())

		switch st.Kind {
		case KindUser:
			uid := st.UserID
			writeJSON(w, http.StatusOK, currentUserResponse{ID: &uid})
		case KindFailed:
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: "identity_check_failed"})
		default: // KindNone
			writeJSON(w, http.StatusOK, currentUserResponse{ID: nil})
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
