package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the HTTP boundary.
// Tracks request counts, request durations and calculation outcomes.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Calculations    *prometheus.CounterVec
}

// New creates a new Metrics instance with all instruments registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rechner_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		}, []string{"route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rechner_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
		Calculations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rechner_calculations_total",
			Help: "Total number of calculations by calculator and outcome (ok or error code)",
		}, []string{"calculator", "outcome"}),
	}
}

// ObserveRequest records one finished request.
// Call with time.Now() taken at the start of the request.
func (m *Metrics) ObserveRequest(route string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}

// IncrementCalculation records a calculation outcome.
func (m *Metrics) IncrementCalculation(calculator, outcome string) {
	if m == nil {
		return
	}
	m.Calculations.WithLabelValues(calculator, outcome).Inc()
}
