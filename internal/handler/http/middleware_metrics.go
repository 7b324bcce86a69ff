package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics records every request under its chi route pattern, so
// /api/passwords/{id} is one series regardless of the id.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	if h.metrics == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := wrapResponseWriter(w)

		next.ServeHTTP(mw, r)

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		h.metrics.ObserveHTTP(route, r.Method, mw.status, time.Since(start))
	})
}
