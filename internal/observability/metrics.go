package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles the Prometheus collectors for the fixture server.
// Collectors are registered on a private registry so tests can run
// side by side without global-state collisions.
type Metrics struct {
	Registry       *prometheus.Registry
	ErrorResponses *prometheus.CounterVec
	Requests       *prometheus.CounterVec
}

// NewMetrics creates and registers the server collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	errorResponses := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gantry_error_responses_total",
			Help: "Error responses rendered, by exception kind and HTTP status.",
		},
		[]string{"kind", "status"},
	)
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gantry_http_requests_total",
			Help: "HTTP requests served, by method and status.",
		},
		[]string{"method", "status"},
	)

	registry.MustRegister(errorResponses, requests)

	return &Metrics{
		Registry:       registry,
		ErrorResponses: errorResponses,
		Requests:       requests,
	}
}
