package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-board/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta la API JSON de registros (se monta bajo /api).
func RegisterRoutes(r chi.Router, svc *Service, m *metrics.Metrics) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, m))
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc, m))
	})
}

type petRequest struct {
	Name         string   `json:"name"`
	OwnerName    string   `json:"owner_name"`
	Species      string   `json:"species"`
	Age          int      `json:"age"`
	HouseTrained bool     `json:"house_trained"`
	Diet         []string `json:"diet"`
	ImageURL     string   `json:"image_url"`
	Likes        []string `json:"likes"`
	Dislikes     []string `json:"dislikes"`
	OwnerUserID  string   `json:"owner_user_id"`
}

type petResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	OwnerName    string    `json:"owner_name"`
	Species      string    `json:"species"`
	Age          int       `json:"age"`
	HouseTrained bool      `json:"house_trained"`
	Diet         []string  `json:"diet"`
	ImageURL     string    `json:"image_url"`
	Likes        []string  `json:"likes"`
	Dislikes     []string  `json:"dislikes"`
	OwnerUserID  string    `json:"owner_user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (req petRequest) toDraft() Draft {
	return Draft{
		Name:         req.Name,
		OwnerName:    req.OwnerName,
		Species:      req.Species,
		Age:          req.Age,
		HouseTrained: req.HouseTrained,
		Diet:         req.Diet,
		ImageURL:     req.ImageURL,
		Likes:        req.Likes,
		Dislikes:     req.Dislikes,
		OwnerUserID:  req.OwnerUserID,
	}
}

func createPetHandler(svc *Service, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), req.toDraft())
		if err != nil {
			writeError(w, err)
			return
		}

		m.IncPetsCreated()
		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler hace reemplazo completo del registro (PUT, no PATCH).
func updatePetHandler(svc *Service, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), req.toDraft())
		if err != nil {
			writeError(w, err)
			return
		}

		m.IncPetsUpdated()
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:           p.ID,
		Name:         p.Name,
		OwnerName:    p.OwnerName,
		Species:      p.Species,
		Age:          p.Age,
		HouseTrained: p.HouseTrained,
		Diet:         emptyIfNil(p.Diet),
		ImageURL:     p.ImageURL,
		Likes:        emptyIfNil(p.Likes),
		Dislikes:     emptyIfNil(p.Dislikes),
		OwnerUserID:  p.OwnerUserID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// emptyIfNil evita "diet": null en las respuestas.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrStoreUnavailable):
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
