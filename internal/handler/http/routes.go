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
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.live)

	router.Route("/api", func(r chi.Router) {
		r.Get("/mostObserved", h.mostObserved)
		r.Get("/mostVisited", h.mostVisited)
		r.Get("/alienInteractions", h.alienInteractions)
		r.Get("/recentAbductions", h.recentAbductions)

		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/reportUfoSighting", h.reportUfoSighting)
	})

	return router
}

func (h *Handler) live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(msgLiveness))
}
