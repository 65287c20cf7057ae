package server

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"evalkit/internal/domain/contact"
	"evalkit/internal/platform/config"
	"evalkit/internal/platform/email"
	"evalkit/internal/platform/metrics"
	"evalkit/internal/transport/http/api"
	benchmarkhandler "evalkit/internal/transport/http/handlers/benchmark"
	evalkithandler "evalkit/internal/transport/http/handlers/evalkit"
	"evalkit/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Metrics *metrics.Collector
	Router  http.Handler
}

// New assembles the router from its collaborators. Tests pass stub
// exporters and mailers; Run wires the real ones from configuration.
func New(cfg config.Config, exporter contact.Exporter, mailer contact.Mailer) *App {
	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recover)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// All catalogs and benchmark tables are compiled in, so readiness has
	// nothing external to probe.
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		evalkithandler.NewHandler(cfg, exporter, mailer, collector).RegisterRoutes(r)
		benchmarkhandler.NewHandler().RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	return &App{Config: cfg, Metrics: collector, Router: router}
}

func Run() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app := New(cfg, contact.NewExporter(cfg), email.New(cfg))

	log.Printf("EvalKit server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
