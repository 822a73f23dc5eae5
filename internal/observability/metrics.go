package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recommendation outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommender_requests_total",
		Help: "Total HTTP requests by route pattern and status code",
	}, []string{"route", "status"})
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recommender_request_duration_seconds",
		Help:    "HTTP request duration seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	RecommendationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommender_recommendations_total",
		Help: "Total recommendation computations by outcome",
	}, []string{"outcome"})
	MalformedAnswersTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommender_malformed_answers_total",
		Help: "Stored onboarding answers ignored because of their shape",
	}, []string{"question"})
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration, RecommendationsTotal, MalformedAnswersTotal)
}

// MetricsHandler serves the Prometheus exposition format.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// ObserveRequest records one served HTTP request.
func ObserveRequest(route string, status int, start time.Time) {
	RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}

// RecordRecommendation counts a recommendation computation.
func RecordRecommendation(outcome string) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
}

// RecordMalformedAnswer counts an onboarding answer that was treated as absent.
func RecordMalformedAnswer(question string) {
	MalformedAnswersTotal.WithLabelValues(question).Inc()
}
