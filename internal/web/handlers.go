package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"pet-board/internal/domain/identity"
	"pet-board/internal/domain/pets"
	"pet-board/internal/platform/logger"
	"pet-board/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Handler sirve las páginas server-rendered (lista, alta, edición, detalle).
type Handler struct {
	svc   *pets.Service
	log   logger.Logger
	m     *metrics.Metrics
	forms *formRegistry
	tpl   *template.Template
}

func NewHandler(svc *pets.Service, log logger.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		svc:   svc,
		log:   log,
		m:     m,
		forms: newFormRegistry(),
		tpl:   template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

// RegisterRoutes monta las páginas en la raíz. /new va antes del wildcard
// {petID}; chi prioriza las rutas estáticas.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listPage)
	r.Get("/new", h.newPage)
	r.Post("/new", h.submitNew)
	r.Get("/{petID}", h.detailPage)
	r.Get("/{petID}/edit", h.editPage)
	r.Post("/{petID}/edit", h.submitEdit)
}

type listPageData struct {
	Pets        []pets.Pet
	IdentityMsg string
}

type formView struct {
	Name         string
	OwnerName    string
	Species      string
	Age          int
	HouseTrained bool
	Diet         string
	Likes        string
	Dislikes     string
	ImageURL     string
}

type formPageData struct {
	Title  string
	Action string
	Token  string
	Form   formView
	Error  string
}

type detailPageData struct {
	Pet pets.Pet
}

// listPage hace el fetch bloqueante de todos los registros antes de emitir la
// respuesta (pull-on-read: la lista refleja el store al momento del request).
// Si el store no está => la falla sube al page boundary como 503, sin lista
// parcial.
func (h *Handler) listPage(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListAll(r.Context())
	if err != nil {
		h.log.Error("list pets failed", map[string]any{"err": err.Error()})
		h.render(w, http.StatusServiceUnavailable, "unavailable", nil)
		return
	}

	h.render(w, http.StatusOK, "index", listPageData{
		Pets:        items,
		IdentityMsg: identityMessage(identity.FromContext(r.Context())),
	})
}

func (h *Handler) newPage(w http.ResponseWriter, r *http.Request) {
	f := pets.NewForm(h.svc)
	f.Draft.OwnerUserID = ownerFor(identity.FromContext(r.Context()))

	token := uuid.NewString()
	h.forms.put(token, f)

	h.render(w, http.StatusOK, "form", formPageData{
		Title:  "New Pet",
		Action: "/new",
		Token:  token,
		Form:   viewOf(f.Draft),
	})
}

func (h *Handler) submitNew(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "/new", "New Pet", func() *pets.Form {
		f := pets.NewForm(h.svc)
		f.Draft.OwnerUserID = ownerFor(identity.FromContext(r.Context()))
		return f
	})
}

func (h *Handler) detailPage(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
	if err != nil {
		h.renderError(w, err)
		return
	}
	h.render(w, http.StatusOK, "detail", detailPageData{Pet: p})
}

func (h *Handler) editPage(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
	if err != nil {
		h.renderError(w, err)
		return
	}

	f := pets.NewEditForm(h.svc, p)
	token := uuid.NewString()
	h.forms.put(token, f)

	h.render(w, http.StatusOK, "form", formPageData{
		Title:  "Edit " + p.Name,
		Action: "/" + p.ID + "/edit",
		Token:  token,
		Form:   viewOf(f.Draft),
	})
}

func (h *Handler) submitEdit(w http.ResponseWriter, r *http.Request) {
	petID := chi.URLParam(r, "petID")

	h.submit(w, r, "/"+petID+"/edit", "Edit", func() *pets.Form {
		// token perdido (navegación vieja): rearmar el form desde el store
		p, err := h.svc.GetByID(r.Context(), petID)
		if err != nil {
			return nil
		}
		return pets.NewEditForm(h.svc, p)
	})
}

// submit es el camino común de POST para alta y edición: recuperar el form
// por token (o rearmarlo), bind, submit, y en falla repoblar la página con el
// draft intacto.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request, action, title string, fallback func() *pets.Form) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	token := r.PostForm.Get("draft_token")
	f, ok := h.forms.get(token)
	if !ok {
		built := fallback()
		if built == nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if token == "" {
			token = uuid.NewString()
		}
		// atómico: dos POST con el mismo token stale comparten el controller
		f = h.forms.getOrPut(token, built)
	}

	renderAgain := func(status int, msg string) {
		h.render(w, status, "form", formPageData{
			Title:  title,
			Action: action,
			Token:  token,
			Form:   viewOf(f.Snapshot()),
			Error:  msg,
		})
	}

	if err := f.Bind(r.PostForm); err != nil {
		if errors.Is(err, pets.ErrSubmitInFlight) {
			http.Error(w, "submit already in flight", http.StatusConflict)
			return
		}
		renderAgain(http.StatusBadRequest, err.Error())
		return
	}

	p, err := f.Submit(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, pets.ErrSubmitInFlight):
			// doble submit: se rechaza, el primero sigue su curso
			http.Error(w, "submit already in flight", http.StatusConflict)
		case errors.Is(err, pets.ErrInvalidInput):
			renderAgain(http.StatusBadRequest, err.Error())
		case errors.Is(err, pets.ErrNotFound):
			http.Error(w, "pet not found", http.StatusNotFound)
		case errors.Is(err, pets.ErrStoreUnavailable):
			renderAgain(http.StatusServiceUnavailable, "store unavailable, please retry")
		default:
			h.log.Error("submit failed", map[string]any{"err": err.Error()})
			renderAgain(http.StatusInternalServerError, "internal error")
		}
		return
	}

	if f.Snapshot().ID == "" {
		h.m.IncPetsCreated()
	} else {
		h.m.IncPetsUpdated()
	}

	h.forms.remove(token)
	h.log.Info("pet saved", map[string]any{"pet_id": p.ID})

	// éxito => navegar al detalle del registro
	http.Redirect(w, r, "/"+p.ID, http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tpl.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error("render failed", map[string]any{"template": name, "err": err.Error()})
	}
}

func (h *Handler) renderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pets.ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, pets.ErrStoreUnavailable):
		h.render(w, http.StatusServiceUnavailable, "unavailable", nil)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// identityMessage proyecta el estado de identidad a texto.
func identityMessage(st identity.State) string {
	switch st.Kind {
	case identity.KindUser:
		return "You are signed in, so the request will return your user ID"
	case identity.KindFailed:
		return "The session check failed; identity is unknown right now"
	default:
		return "You are signed out, so the request will return null"
	}
}

// ownerFor decide el owner del draft: el user de la sesión, o el sentinel
// cuando no se exige autenticación.
func ownerFor(st identity.State) string {
	if st.Kind == identity.KindUser {
		return st.UserID
	}
	return pets.SentinelOwner
}

func viewOf(d pets.Draft) formView {
	return formView{
		Name:         d.Name,
		OwnerName:    d.OwnerName,
		Species:      d.Species,
		Age:          d.Age,
		HouseTrained: d.HouseTrained,
		Diet:         pets.JoinList(d.Diet),
		Likes:        pets.JoinList(d.Likes),
		Dislikes:     pets.JoinList(d.Dislikes),
		ImageURL:     d.ImageURL,
	}
}
