package prerouter

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	defaultMetricName          = "http_server_requests_total"
	defaultMetricHelp          = "Total number of HTTP requests handled by the server, labeled by status code."
	defaultStatusCodeLabelName = "code"
)

// MetricsOpts holds configuration options for the Metrics middleware.
type MetricsOpts struct {
	// MetricName is the name of the Prometheus counter.
	// Default: "http_server_requests_total"
	MetricName string

	// MetricHelp is the help string for the Prometheus counter.
	MetricHelp string

	// StatusCodeLabelName is the label used for the HTTP status code.
	// Default: "code"
	StatusCodeLabelName string

	// ConstLabels are static labels added to every observation.
	ConstLabels map[string]string

	// Registry to register the metric with. Nil means
	// prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Metrics counts handled requests by status code. Registration panics
// on metric name collisions; the caller owns name uniqueness.
type Metrics struct {
	requestsTotal *prometheus.CounterVec
}

func NewMetrics(opts MetricsOpts) *Metrics {
	name := opts.MetricName
	if name == "" {
		name = defaultMetricName
	}
	help := opts.MetricHelp
	if help == "" {
		help = defaultMetricHelp
	}
	label := opts.StatusCodeLabelName
	if label == "" {
		label = defaultStatusCodeLabelName
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        name,
		Help:        help,
		ConstLabels: opts.ConstLabels,
	}, []string{label})
	registry.MustRegister(vec)

	return &Metrics{requestsTotal: vec}
}

// Execute wraps the next handler with request counting.
func (m *Metrics) Execute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newResponseRecorder(w)
		next.ServeHTTP(rec, r)
		m.requestsTotal.WithLabelValues(strconv.Itoa(rec.status)).Inc()
	})
}
