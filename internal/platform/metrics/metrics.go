// Package metrics provides Prometheus metrics for the portfolio analyzer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	portfolioentity "portfolio_backend/internal/feature/portfolio/domain/entity"
	portfoliousecase "portfolio_backend/internal/feature/portfolio/usecase"
	statusentity "portfolio_backend/internal/feature/publicstatus/domain/entity"
	statususecase "portfolio_backend/internal/feature/publicstatus/usecase"
)

const defaultNamespace = "portfolio"

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace sets the metric namespace.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithRegistry sets the registry the metrics are registered on and served from.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// Manager owns the analyzer's counters and histograms.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	verdicts       *prometheus.CounterVec
	pageFailures   *prometheus.CounterVec
	listingStatus  *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDurationMs *prometheus.HistogramVec
}

var (
	_ portfoliousecase.Recorder    = (*Manager)(nil)
	_ statususecase.StatusRecorder = (*Manager)(nil)
)

// NewManager creates a Manager on its own registry unless WithRegistry is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: defaultNamespace,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(m.registry)
	m.verdicts = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "verdicts_total",
		Help:      "Companies scored, by outcome and failing stage",
	}, []string{"outcome", "stage"})
	m.pageFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "page_failures_total",
		Help:      "Portfolio pages skipped, by failing stage",
	}, []string{"stage"})
	m.listingStatus = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "listing_status_total",
		Help:      "Listing status lookups, by resulting status",
	}, []string{"status"})
	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code",
	}, []string{"route", "method", "status_code"})
	m.httpDurationMs = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   []float64{10, 50, 100, 500, 1000, 5000, 15000, 60000},
	}, []string{"route", "method"})
	return m
}

// ObserveVerdict counts one scored company.
func (m *Manager) ObserveVerdict(outcome portfolioentity.Outcome, stage portfolioentity.Stage) {
	m.verdicts.WithLabelValues(string(outcome), string(stage)).Inc()
}

// ObservePageFailure counts one skipped portfolio page.
func (m *Manager) ObservePageFailure(stage portfolioentity.Stage) {
	m.pageFailures.WithLabelValues(string(stage)).Inc()
}

// ObserveListingStatus counts one listing status lookup.
func (m *Manager) ObserveListingStatus(status statusentity.ListingStatus) {
	m.listingStatus.WithLabelValues(string(status)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request counts and latency per matched route.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.httpRequests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDurationMs.WithLabelValues(route, method).Observe(float64(time.Since(start).Milliseconds()))
	}
}
