package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gwp"

var (
	// Registry holds the service's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
		},
		[]string{"method", "path"},
	)

	averageQueries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "averages",
			Name:      "queries_total",
			Help:      "Total number of average GWP computations.",
		},
	)

	linesOfBusinessRequested = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "averages",
			Name:      "lines_of_business_total",
			Help:      "Requested lines of business, split by whether data was found.",
		},
		[]string{"matched"},
	)

	datasetRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "records",
			Help:      "Number of records held in the loaded dataset.",
		},
	)

	datasetRowsSkipped = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "rows_skipped",
			Help:      "Dataset rows dropped at load for having too few fields.",
		},
	)

	datasetCellsDefaulted = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "cells_defaulted",
			Help:      "Non-empty premium cells that failed to parse and were read as zero.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		averageQueries,
		linesOfBusinessRequested,
		datasetRecords,
		datasetRowsSkipped,
		datasetCellsDefaulted,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps next with HTTP metrics collection.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		path := canonicalPath(r.URL.Path)
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	})
}

// RecordAverageQuery counts one average computation and how many of its
// requested lines of business had data.
func RecordAverageQuery(matched, unmatched int) {
	averageQueries.Inc()
	linesOfBusinessRequested.WithLabelValues("true").Add(float64(matched))
	linesOfBusinessRequested.WithLabelValues("false").Add(float64(unmatched))
}

// SetDatasetStats publishes the figures of the dataset load.
func SetDatasetStats(records, rowsSkipped, cellsDefaulted int) {
	datasetRecords.Set(float64(records))
	datasetRowsSkipped.Set(float64(rowsSkipped))
	datasetCellsDefaulted.Set(float64(cellsDefaulted))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// canonicalPath keeps label cardinality bounded: path parameters are folded
// and unknown paths share one label.
func canonicalPath(raw string) string {
	const lobPrefix = "/api/gwp/lines-of-business/"

	switch {
	case raw == "/server/api/gwp/avg",
		raw == "/api/gwp/countries.json",
		raw == "/api/gwp/current-time.json",
		raw == "/healthz",
		raw == "/debug/dataset":
		return raw
	case strings.HasPrefix(raw, lobPrefix):
		return lobPrefix + ":country"
	default:
		return "other"
	}
}
