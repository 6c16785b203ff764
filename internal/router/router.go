package router

import (
	"database/sql"
	"net/http"

	mem "pet-board/internal/adapters/storage/memory"
	pg "pet-board/internal/adapters/storage/postgres"
	"pet-board/internal/domain/identity"
	"pet-board/internal/domain/pets"
	"pet-board/internal/middleware"
	"pet-board/internal/platform/logger"
	"pet-board/internal/platform/metrics"
	"pet-board/internal/ports/auth"
	"pet-board/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

type Options struct {
	SessionVerifier auth.SessionVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Orígenes permitidos para /api/*. Vacío => mismo origen.
	CORSAllowedOrigins []string

	Logger logger.Logger

	// Opcional: métricas ya registradas. Nil => sin contadores (los
	// helpers toleran nil) pero /metrics se expone igual.
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.SessionContext(opts.SessionVerifier))

	log := opts.Logger
	if log == nil {
		log = logger.New(logger.Options{Level: logger.Info, App: "pet-board"})
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	var petRepo pets.Repository
	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
	}

	petsSvc := pets.NewService(petRepo)

	// API JSON bajo /api, con CORS para los fetch del panel
	r.Route("/api", func(api chi.Router) {
		if len(opts.CORSAllowedOrigins) > 0 {
			api.Use(cors.New(cors.Options{
				AllowedOrigins:   opts.CORSAllowedOrigins,
				AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut},
				AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Debug-User-ID"},
				AllowCredentials: true,
			}).Handler)
		}

		pets.RegisterRoutes(api, petsSvc, opts.Metrics)
		identity.RegisterRoutes(api, opts.Metrics)
	})

	// Páginas server-rendered en la raíz
	web.NewHandler(petsSvc, log, opts.Metrics).RegisterRoutes(r)

	return r
}
