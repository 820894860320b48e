// Package metrics 提供Prometheus指标，在 /metrics 暴露
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendRequests 推荐请求结果：success / config_error / upstream_error / bad_request
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests by result",
		},
		[]string{"result"},
	)

	// RecommendedItems 每次响应中的商品数量
	RecommendedItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_items_per_response",
			Help:    "Number of items returned per recommendation response",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 7, 10},
		},
	)

	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "Generative model request duration in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"provider", "status"},
	)

	// EnrichmentLookups lookup: image / video，outcome: hit / miss / error
	EnrichmentLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrichment_lookups_total",
			Help: "Total number of media lookups by lookup type and outcome",
		},
		[]string{"lookup", "outcome"},
	)

	// CircuitBreakerState 0=closed, 1=half-open, 2=open
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)
