package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "emotion_classifier"

// Classification Metrics
var (
	// ClassificationsTotal cuenta predicciones por emoción resultante.
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Total classifications by predicted emotion",
		},
		[]string{"emotion"},
	)

	ClassificationConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classification_confidence_percent",
			Help:      "Confidence of the predicted emotion in percent",
			Buckets:   []float64{20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)

	InvalidInputsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_inputs_total",
			Help:      "Total classification requests rejected by input validation",
		},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Total classification requests rejected by the rate limiter",
		},
	)
)

// Result Store Metrics
var (
	// ResultStoreOpsTotal cuenta operaciones del store de resultados por backend, operación y estado.
	ResultStoreOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "result_store_operations_total",
			Help:      "Total result store operations by backend, operation and status",
		},
		[]string{"backend", "operation", "status"},
	)
)

// HTTP Metrics
var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "route", "status"},
	)
)

// ObserveStoreOp registra el resultado de una operación de store.
func ObserveStoreOp(backend, operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	ResultStoreOpsTotal.WithLabelValues(backend, operation, status).Inc()
}

// Handler sirve las métricas del registry por defecto.
func Handler() http.Handler {
	return promhttp.Handler()
}
