// Package server exposes the calculators over HTTP as JSON endpoints.
package server

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/steuerkit/rechner/internal/calculation"
	"github.com/steuerkit/rechner/internal/server/metrics"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Config holds the dependencies of a Server. Registry may be nil to disable metrics.
type Config struct {
	Engine   *calculation.Engine
	Logger   *logrus.Entry
	Registry *prometheus.Registry
}

// Server wires the HTTP endpoints to the calculation engine.
type Server struct {
	engine   *calculation.Engine
	logger   *logrus.Entry
	metrics  *metrics.Metrics
	registry *prometheus.Registry
}

// New constructs a server. A nil engine uses the built-in rules, a nil logger discards output.
func New(cfg Config) *Server {
	engine := cfg.Engine
	if engine == nil {
		engine = calculation.NewEngine2026()
	}
	logger := cfg.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = logrus.NewEntry(l)
	}
	s := &Server{engine: engine, logger: logger.WithField("module", "server"), registry: cfg.Registry}
	if cfg.Registry != nil {
		s.metrics = metrics.New(cfg.Registry)
	}
	return s
}

// Router builds the chi router with middleware and all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(s.logger, s.metrics))

	r.Get("/healthz", s.handleHealth)
	if s.registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	r.Route("/api/v1", s.Register)
	return r
}

// Register mounts the calculator endpoints on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/regeln", s.handleRules)
	r.Get("/mietstufen", s.handleRentLevels)
	r.Post("/netto", handle(s, "netto", s.engine.NetSalary))
	r.Post("/abfindung", handle(s, "abfindung", s.engine.Severance))
	r.Post("/abfindung/schaetzung", handle(s, "abfindung_schaetzung", s.estimateSeverance))
	r.Post("/kfz-steuer", handle(s, "kfz_steuer", s.engine.VehicleTax))
	r.Post("/wohngeld", handle(s, "wohngeld", s.housingBenefit))
	r.Post("/elterngeld", handle(s, "elterngeld", s.engine.ParentalAllowance))
	r.Post("/kinderzuschlag", handle(s, "kinderzuschlag", s.engine.ChildSupplement))
	r.Post("/ueberstunden", handle(s, "ueberstunden", s.engine.Overtime))
	r.Post("/bussgeld", handle(s, "bussgeld", s.engine.SpeedingFine))
	r.Post("/kuendigungsfrist", handle(s, "kuendigungsfrist", s.engine.NoticePeriod))
	r.Post("/haushaltseinkommen", handle(s, "haushaltseinkommen", s.householdIncome))
	r.Post("/kuendigung", handle(s, "kuendigung", composeLetter))
}

// NewHTTPServer builds an HTTP server with sane defaults for this project.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
