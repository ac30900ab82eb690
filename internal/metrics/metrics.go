// Package metrics exposes Prometheus instrumentation for provider calls and
// caches.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder records provider and cache metrics. A nil *Recorder is valid and
// records nothing, so components can be built without instrumentation.
type Recorder struct {
	providerCalls    *prometheus.CounterVec
	providerDuration *prometheus.HistogramVec
	cacheLookups     *prometheus.CounterVec
	fallbacks        *prometheus.CounterVec
	httpRequests     *prometheus.HistogramVec
}

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		providerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transcriptus_provider_calls_total",
			Help: "Total external provider calls by provider, operation and outcome",
		}, []string{"provider", "operation", "outcome"}),
		providerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "transcriptus_provider_call_duration_seconds",
			Help:    "External provider call latency, rate-limit waits excluded",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider", "operation"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transcriptus_cache_lookups_total",
			Help: "Cache lookups by cache name and result",
		}, []string{"cache", "result"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transcriptus_fallbacks_total",
			Help: "Times a step fell back to a secondary source",
		}, []string{"step", "source"}),
		httpRequests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "transcriptus_http_request_duration_seconds",
			Help:    "HTTP API latency by route and status code",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "code"}),
	}
	reg.MustRegister(r.providerCalls, r.providerDuration, r.cacheLookups, r.fallbacks, r.httpRequests)
	return r
}

// ProviderCall records one outbound call.
func (r *Recorder) ProviderCall(provider, operation, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.providerCalls.WithLabelValues(provider, operation, outcome).Inc()
	r.providerDuration.WithLabelValues(provider, operation).Observe(elapsed.Seconds())
}

// CacheLookup records a cache hit or miss.
func (r *Recorder) CacheLookup(cache string, hit bool) {
	if r == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(cache, result).Inc()
}

// Fallback records that step used source instead of its primary.
func (r *Recorder) Fallback(step, source string) {
	if r == nil {
		return
	}
	r.fallbacks.WithLabelValues(step, source).Inc()
}

// HTTPRequest records one served API request.
func (r *Recorder) HTTPRequest(route string, code int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(route, strconv.Itoa(code)).Observe(elapsed.Seconds())
}
