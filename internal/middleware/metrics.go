package middleware

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"training-chatbot/internal/infra/metrics"
)

// MetricsMiddleware counts requests by route template so user ids do not
// become label values.
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrappedWriter := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrappedWriter, r)

			route := "unmatched"
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			m.RecordHTTPRequest(r.Method, route, strconv.Itoa(wrappedWriter.statusCode))
		})
	}
}
