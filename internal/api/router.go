package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/notifyhub/apprise-node/internal/api/handler"
	apimw "github.com/notifyhub/apprise-node/internal/api/middleware"
)

// Deps bundles what the router needs from main.
type Deps struct {
	Executor      handler.Executor
	Tester        handler.CredentialTester
	Gatherer      prometheus.Gatherer
	DefaultDomain string
	MaxBatchSize  int
	Logger        *zap.Logger
}

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestSize(4 << 20)) // 4 MB max request body
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(d.Logger))

	// --- handler instances ---
	eh := handler.NewExecuteHandler(d.Executor, d.DefaultDomain, d.MaxBatchSize, d.Logger)
	nh := handler.NewNodeHandler(d.Tester, d.DefaultDomain, d.Logger)
	hh := handler.NewHealthHandler()

	// --- routes ---
	r.Get("/health", hh.Health)
	r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/node", nh.Describe)
		r.Post("/credential/test", nh.TestCredential)
		r.Post("/execute", eh.Execute)
	})

	return r
}
