package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// compressLevel is the gzip level used for JSON and text responses.
const compressLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(middleware.Compress(compressLevel, "application/json", "text/plain"))

	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		// routes without authorization
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Post("/api/edit-profile", h.editProfile)
		r.Post("/api/chat", h.chat)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/health", h.health)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/api/logout", h.logout)
			r.Get("/api/profile", h.profile)
		})
	})

	if h.publicDisk != nil {
		files := http.StripPrefix("/storage", h.publicDisk.Handler())
		router.Get("/storage/*", files.ServeHTTP)
		router.Head("/storage/*", files.ServeHTTP)
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}
