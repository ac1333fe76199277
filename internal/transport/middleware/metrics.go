package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/tastebite-backend/internal/metrics"
)

// Instrument records request count and latency for one route. route is the
// registered pattern, so path parameters do not blow up label cardinality.
func Instrument(route string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			metrics.RecordHTTPRequest(r.Method, route, sw.status, time.Since(start))
		})
	}
}
