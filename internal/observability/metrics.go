package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Avangel08/furniro-sub001/internal/domain"
)

const namespace = "furniro"

// Login outcomes.
const (
	LoginSucceeded   = "success"
	LoginRejected    = "rejected"
	LoginDeactivated = "deactivated"
)

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	errorCount      *prometheus.CounterVec
	loginCount      *prometheus.CounterVec
	refreshCount    *prometheus.CounterVec
	bannerChanges   *prometheus.CounterVec
}

// NewMetrics initializes and registers collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		errorCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "errors_total",
			Help:      "Total number of error responses by code",
		}, []string{"method", "route", "code"}),
		loginCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Login attempts by principal kind and outcome",
		}, []string{"principal", "outcome"}),
		refreshCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "refreshes_total",
			Help:      "Refresh attempts by principal kind and result",
		}, []string{"principal", "result"}),
		bannerChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "banners",
			Name:      "schedule_changes_total",
			Help:      "Banner activations and deactivations applied by the scheduler",
		}, []string{"change"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestCount,
		m.requestDuration,
		m.errorCount,
		m.loginCount,
		m.refreshCount,
		m.bannerChanges,
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestCount.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(route, method, code string) {
	if m == nil {
		return
	}
	m.errorCount.WithLabelValues(method, route, code).Inc()
}

// RecordLogin counts a login attempt.
func (m *Metrics) RecordLogin(kind domain.PrincipalKind, outcome string) {
	if m == nil {
		return
	}
	m.loginCount.WithLabelValues(string(kind), outcome).Inc()
}

// RecordRefresh counts a refresh attempt.
func (m *Metrics) RecordRefresh(kind domain.PrincipalKind, ok bool) {
	if m == nil {
		return
	}
	result := "rotated"
	if !ok {
		result = "rejected"
	}
	m.refreshCount.WithLabelValues(string(kind), result).Inc()
}

// RecordBannerChanges adds scheduler results.
func (m *Metrics) RecordBannerChanges(activated, deactivated int) {
	if m == nil {
		return
	}
	m.bannerChanges.WithLabelValues("activated").Add(float64(activated))
	m.bannerChanges.WithLabelValues("deactivated").Add(float64(deactivated))
}
