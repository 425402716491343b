package observability

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"route", "method"},
	)

	GreetingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "greetings_total",
			Help: "Total number of greetings served by endpoint",
		},
		[]string{"endpoint"},
	)
	GreetingNameLength = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "greeting_name_length_chars",
			Help:    "Distribution of greeted name lengths in characters",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
		},
	)
)

var registerOnce sync.Once

// InitMetrics registers the collectors with the default registry. Safe to
// call more than once; tests boot the app repeatedly in one process.
func InitMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HTTPRequestsTotal)
		prometheus.MustRegister(HTTPRequestDuration)
		prometheus.MustRegister(GreetingsTotal)
		prometheus.MustRegister(GreetingNameLength)
	})
}

// HTTPMetricsMiddleware records Prometheus metrics for each request.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		dur := time.Since(start).Seconds()
		// Route pattern may be unavailable outside chi router; guard nil
		var route string
		if rc := chi.RouteContext(r.Context()); rc != nil {
			route = rc.RoutePattern()
		}
		if route == "" {
			// fallback when route pattern is unavailable
			route = r.URL.Path
		}
		method := r.Method
		status := ww.Status()
		HTTPRequestsTotal.WithLabelValues(route, method, http.StatusText(status)).Inc()
		HTTPRequestDuration.WithLabelValues(route, method).Observe(dur)
	})
}

// ObserveGreeting records a served greeting and the length of the greeted
// name. Zero-length names (the plain hello endpoint) skip the histogram.
func ObserveGreeting(endpoint string, nameLen int) {
	GreetingsTotal.WithLabelValues(endpoint).Inc()
	if nameLen > 0 {
		GreetingNameLength.Observe(float64(nameLen))
	}
}
