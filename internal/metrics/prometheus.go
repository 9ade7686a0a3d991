// Package metrics exposes Prometheus collectors for HTTP traffic and model
// outcomes.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heartguard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "heartguard_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "heartguard_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	predictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heartguard_predictions_total",
			Help: "Total number of risk predictions by label",
		},
		[]string{"label"},
	)

	predictionScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "heartguard_prediction_score",
			Help:    "Distribution of risk prediction scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	validationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heartguard_validation_failures_total",
			Help: "Clinical records rejected by validation, by field",
		},
		[]string{"field"},
	)

	stratificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heartguard_stratifications_total",
			Help: "Total number of stratification results by level",
		},
		[]string{"level"},
	)

	eventPublishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "heartguard_event_publish_failures_total",
			Help: "Prediction events that could not be published",
		},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request counts and latency. Paths are the registered
// route templates so IDs do not explode label cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func RecordPrediction(label string, score float64) {
	predictionsTotal.WithLabelValues(label).Inc()
	predictionScore.Observe(score)
}

func RecordValidationFailure(field string) {
	validationFailures.WithLabelValues(field).Inc()
}

func RecordStratification(level string) {
	stratificationsTotal.WithLabelValues(level).Inc()
}

func RecordEventPublishFailure() {
	eventPublishFailures.Inc()
}
