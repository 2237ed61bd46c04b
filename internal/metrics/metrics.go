package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nebula",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nebula",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds.",
		Buckets:   []float64{0.05, 0.1, 0.3, 0.5, 1, 2, 5, 10, 20},
	}, []string{"method", "route"})

	ExtractorRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nebula",
		Name:      "extractor_requests_total",
		Help:      "Total yt-dlp invocations by mode and result status.",
	}, []string{"mode", "status"})

	ExtractorDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nebula",
		Name:      "extractor_duration_seconds",
		Help:      "yt-dlp invocation duration in seconds.",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"mode"})

	StreamCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nebula",
		Name:      "stream_cache_hits_total",
		Help:      "Total number of stream URL cache hits.",
	})

	StreamCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nebula",
		Name:      "stream_cache_misses_total",
		Help:      "Total number of stream URL cache misses.",
	})

	LikeTogglesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nebula",
		Name:      "like_toggles_total",
		Help:      "Total like toggles by resulting state.",
	}, []string{"liked"})
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		ExtractorRequestsTotal,
		ExtractorDuration,
		StreamCacheHitsTotal,
		StreamCacheMissesTotal,
		LikeTogglesTotal,
	)
}
