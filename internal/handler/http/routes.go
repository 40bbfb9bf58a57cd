package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.With(h.checkEmail).Post("/signup", h.signUp)
			r.Post("/signin", h.signIn)
			r.Get("/bootcamp", h.listBootcamps)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/user", h.listUsers)
			r.Get("/user/{id}", h.getUser)
			r.Put("/user/{id}", h.updateUser)
			r.Delete("/user/{id}", h.deleteUser)

			r.Post("/bootcamp", h.createBootcamp)
			r.Post("/bootcamp/adduser", h.addUserToBootcamp)
			r.Get("/bootcamp/{id}", h.getBootcamp)
		})
	})

	return router
}
