// Package api serves the catalog over JSON HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/harunnryd/skillmart/internal/catalog/provider"
	"github.com/harunnryd/skillmart/internal/catalog/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// HealthFunc reports extra health details, keyed by component name.
type HealthFunc func(ctx context.Context) map[string]ComponentStatus

type ComponentStatus struct {
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

type Options struct {
	CORSOrigins []string
	Health      HealthFunc
}

type Server struct {
	provider   provider.Provider
	skills     *repository.Skills
	categories *repository.Categories
	health     HealthFunc
	router     chi.Router
}

func NewServer(p provider.Provider, opts Options) *Server {
	s := &Server{
		provider:   p,
		skills:     repository.NewSkills(p),
		categories: repository.NewCategories(p),
		health:     opts.Health,
	}
	s.router = s.routes(opts.CORSOrigins)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes(origins []string) chi.Router {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	if len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
			ExposedHeaders: []string{RequestIDHeader},
			MaxAge:         300,
		}))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errRouteNotFound(r))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/skills", func(r chi.Router) {
			r.Get("/", s.listSkills)
			r.Get("/browse", s.browseSkills)
			r.Get("/featured", s.featuredSkills)
			r.Get("/popular", s.topSkills(s.skills.GetPopularSkills))
			r.Get("/recent", s.topSkills(s.skills.GetRecentlyUpdatedSkills))
			r.Get("/top-rated", s.topSkills(s.skills.GetTopRatedSkills))
			r.Get("/free", s.freeSkills)
			r.Get("/by-author/{author}", s.skillsByAuthor)
			r.Get("/{id}", s.getSkill)
			r.Post("/{id}/downloads", s.incrementDownloads)
			r.Put("/{id}/rating", s.updateRating)
		})
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", s.listCategories)
			r.Get("/popular", s.popularCategories)
			r.Get("/drift", s.categoryDrift)
			r.Get("/{id}", s.getCategory)
		})
		r.Get("/stats", s.stats)
		r.Post("/cache/clear", s.clearCache)
	})

	return r
}
