package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// HTTPMetrics принимает длительность обработанных запросов.
type HTTPMetrics interface {
	ObserveHTTP(route, method string, status int, elapsed time.Duration)
}

const unmatchedRoute = "unmatched"

// MetricsMiddleware пишет длительность запроса с шаблоном маршрута chi вместо
// сырого пути, чтобы не плодить метки.
func MetricsMiddleware(metrics HTTPMetrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if metrics == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				route := unmatchedRoute
				if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
					route = rctx.RoutePattern()
				}
				metrics.ObserveHTTP(route, r.Method, ww.Status(), time.Since(start))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
