// Package metrics exposes Prometheus collectors for the eligibility service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"eligibility/internal/domain/service"
	"eligibility/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "eligibility"

// Recorder implements service.MetricsRecorder and the HTTP middleware on one registry
type Recorder struct {
	registry *prometheus.Registry

	geocodeRequests     *prometheus.CounterVec
	geocodeDuration     *prometheus.HistogramVec
	resolutionDiscarded *prometheus.CounterVec
	eligibilityTotal    *prometheus.CounterVec
	distanceKm          prometheus.Histogram
	sessionsActive      prometheus.Gauge

	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge
}

var _ service.MetricsRecorder = (*Recorder)(nil)

// NewRecorder registers all collectors on a fresh registry
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,

		geocodeRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "geocode_requests_total",
				Help:      "Total number of outbound geocoding requests",
			},
			[]string{"provider", "outcome"},
		),
		geocodeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "geocode_request_duration_seconds",
				Help:      "Geocoding request duration in seconds",
				Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"provider"},
		),
		resolutionDiscarded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolutions_discarded_total",
				Help:      "Resolution results dropped because a newer request superseded them",
			},
			[]string{"sequence"},
		),
		eligibilityTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluations_total",
				Help:      "Total number of computed eligibility results",
			},
			[]string{"within_range"},
		),
		distanceKm: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "distance_km",
				Help:      "Straight-line distance between restaurant and customer",
				Buckets:   []float64{.5, 1, 2, 4, 6, 8, 10, 15, 25, 50},
			},
		),
		sessionsActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sessions_active",
				Help:      "Number of open checkout sessions",
			},
		),

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		httpRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),
	}
}

func (r *Recorder) ObserveGeocode(provider, outcome string, duration time.Duration) {
	r.geocodeRequests.WithLabelValues(provider, outcome).Inc()
	r.geocodeDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

func (r *Recorder) ResolutionDiscarded(sequence string) {
	r.resolutionDiscarded.WithLabelValues(sequence).Inc()
}

func (r *Recorder) EligibilityEvaluated(withinRange bool, distanceKm float64) {
	r.eligibilityTotal.WithLabelValues(strconv.FormatBool(withinRange)).Inc()
	r.distanceKm.Observe(distanceKm)
}

func (r *Recorder) SessionsActive(count int) {
	r.sessionsActive.Set(float64(count))
}

// Handler returns the Prometheus metrics HTTP handler for this registry
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Middleware records request counts and latency labelled by route template
func (r *Recorder) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		r.httpRequestsInFlight.Inc()
		defer r.httpRequestsInFlight.Dec()

		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			// the error handler has not written the response yet
			status = http.StatusInternalServerError
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
			}
		}

		path := c.Path()
		if path == "" {
			path = "unknown"
		}

		r.httpRequestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
		r.httpRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())

		return err
	}
}
