package metrics

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pokeio/internal/ports"
)

// Outcome label values
const (
	OutcomeOK     = "ok"
	OutcomeStatus = "status"
	OutcomeError  = "error"
)

// Collector holds the Prometheus metrics for upstream API traffic
type Collector struct {
	registry *prometheus.Registry

	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewCollector creates a collector with its own registry under namespace
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of upstream API requests",
		},
		[]string{"resource", "outcome"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream API request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"resource"},
	)

	registry.MustRegister(requests, duration)

	return &Collector{
		registry: registry,
		Requests: requests,
		Duration: duration,
	}
}

// Registry returns the collector's registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collector's metrics in the exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Transport decorates a ports.Transport with request metrics
type Transport struct {
	next      ports.Transport
	collector *Collector
}

// Ensure Transport implements ports.Transport
var _ ports.Transport = (*Transport)(nil)

// Instrument wraps next so every request is counted and timed
func Instrument(next ports.Transport, collector *Collector) *Transport {
	return &Transport{next: next, collector: collector}
}

// Get forwards to the wrapped transport and records the outcome
func (t *Transport) Get(ctx context.Context, rawURL string) (ports.Response, error) {
	resource := Resource(rawURL)
	start := time.Now()

	resp, err := t.next.Get(ctx, rawURL)

	t.collector.Duration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	outcome := OutcomeOK
	switch {
	case err != nil:
		outcome = OutcomeError
	case !resp.OK():
		outcome = OutcomeStatus
	}
	t.collector.Requests.WithLabelValues(resource, outcome).Inc()

	return resp, err
}

// Resource extracts the resource kind from an API URL so label cardinality
// stays bounded: ".../api/v2/pokemon-species/25/" -> "pokemon-species".
func Resource(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "unknown"
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, s := range segments {
		if s == "v2" && i+1 < len(segments) {
			return segments[i+1]
		}
	}
	if len(segments) > 0 && segments[0] != "" {
		return segments[0]
	}
	return "unknown"
}
