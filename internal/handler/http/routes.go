package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: h.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
			ExposedHeaders: []string{traceIDHeader},
			MaxAge:         300,
		}),
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Get("/", h.health)
	router.Get("/api/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/login", h.login)

		// routes with authorization
		r.Route("/passwords", func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/", h.listPasswords)
			r.Post("/", h.createPassword)
			r.Put("/{id}", h.updatePassword)
			r.Delete("/{id}", h.deletePassword)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgRouteNotFound}, http.StatusNotFound)
	})

	return router
}
