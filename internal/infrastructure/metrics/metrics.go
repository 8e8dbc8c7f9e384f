// Package metrics exposes the Prometheus collectors of the API.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a dedicated registry with the HTTP and publishing collectors
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	autoPublished   prometheus.Counter
}

// New registers the collectors on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		autoPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "posts_auto_published_total",
			Help: "Total number of scheduled posts published.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestsTotal,
		m.requestDuration,
		m.autoPublished,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one handled request. Unmatched routes share a single label.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// AddAutoPublished counts posts published by a scheduled run
func (m *Metrics) AddAutoPublished(n int) {
	if n > 0 {
		m.autoPublished.Add(float64(n))
	}
}

// instrumentedPostService counts the posts published by PublishScheduled
type instrumentedPostService struct {
	posts.PostService
	metrics *Metrics
}

// InstrumentPostService wraps service so every scheduled publishing run is counted
func InstrumentPostService(service posts.PostService, m *Metrics) posts.PostService {
	return &instrumentedPostService{PostService: service, metrics: m}
}

func (s *instrumentedPostService) PublishScheduled(ctx context.Context, now time.Time) (int, error) {
	n, err := s.PostService.PublishScheduled(ctx, now)
	s.metrics.AddAutoPublished(n)
	return n, err
}
