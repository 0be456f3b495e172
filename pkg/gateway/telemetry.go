package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// telemetry holds the gateway's Prometheus instruments.
type telemetry struct {
	requests  *prometheus.CounterVec
	cacheHits prometheus.Counter
	spend     *prometheus.CounterVec
	latency   *prometheus.HistogramVec
}

func newTelemetry(reg prometheus.Registerer) *telemetry {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &telemetry{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brandlens",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Provider requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "brandlens",
			Subsystem: "gateway",
			Name:      "cache_hits_total",
			Help:      "Requests served from the response cache.",
		}),
		spend: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brandlens",
			Subsystem: "gateway",
			Name:      "spend_usd_total",
			Help:      "Booked provider spend in USD.",
		}, []string{"provider"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "brandlens",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Provider call latency.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
		}, []string{"provider"}),
	}
}

func (t *telemetry) observe(providerName, outcome string, seconds, cost float64) {
	t.requests.WithLabelValues(providerName, outcome).Inc()
	if seconds > 0 {
		t.latency.WithLabelValues(providerName).Observe(seconds)
	}
	if cost > 0 {
		t.spend.WithLabelValues(providerName).Add(cost)
	}
}
