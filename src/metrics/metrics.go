package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"Backend-FormBuilder/src/services/analytics"
)

const namespace = "formbuilder"

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	Submissions     *prometheus.CounterVec
	ScoreRatio      prometheus.Histogram
	ResponsesPurged prometheus.Counter

	registry *prometheus.Registry
}

// New registers the collectors on a fresh registry, so tests can build as
// many instances as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		RequestCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		RequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of requests currently being processed",
		}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Scored form submissions by score band",
		}, []string{"band"}),
		ScoreRatio: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "submission_score_ratio",
			Help:      "score/maxScore of scored submissions",
			Buckets:   []float64{0.5, 0.7, 0.9, 1},
		}),
		ResponsesPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "responses_purged_total",
			Help:      "Responses removed together with their form",
		}),
		registry: reg,
	}
	reg.MustRegister(
		m.RequestCounter, m.RequestDuration, m.RequestsInFlight,
		m.Submissions, m.ScoreRatio, m.ResponsesPurged,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveSubmission records one scored submission under the band its
// percentage falls in.
func (m *Metrics) ObserveSubmission(score, maxScore int) {
	if m == nil {
		return
	}
	band := analytics.Band(analytics.Percentage(score, maxScore))
	m.Submissions.WithLabelValues(string(band)).Inc()
	if maxScore > 0 {
		m.ScoreRatio.Observe(float64(score) / float64(maxScore))
	}
}

// ObservePurge records responses deleted with their form.
func (m *Metrics) ObservePurge(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.ResponsesPurged.Add(float64(n))
}

// Middleware records request count and latency per matched route.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		m.RequestsInFlight.Inc()
		defer m.RequestsInFlight.Dec()

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		route := c.Route().Path
		m.RequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		m.RequestCounter.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		return err
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
