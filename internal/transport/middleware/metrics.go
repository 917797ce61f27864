package middleware

import (
	"net/http"
	"time"
)

type httpRecorder interface {
	ObserveHTTP(route, method string, status int, elapsed time.Duration)
}

// Metrics records request counts and latency per matched route pattern.
// It must wrap the ServeMux so the pattern is set once the mux returns.
func Metrics(rec httpRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			rec.ObserveHTTP(r.Pattern, r.Method, sw.status, time.Since(start))
		})
	}
}
