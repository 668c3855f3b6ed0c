package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ricmershon/dwellio-sub005/internal/metrics"
)

// routeResolver is satisfied by *http.ServeMux.
type routeResolver interface {
	Handler(r *http.Request) (h http.Handler, pattern string)
}

// Metrics records request count and latency labelled by the matched route
// pattern, so path parameters do not explode label cardinality.
func Metrics(routes routeResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, route := routes.Handler(r)
			if route == "" {
				route = "unmatched"
			}

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			metrics.HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(sw.status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}
