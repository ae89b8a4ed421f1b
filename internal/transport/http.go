package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/eishan-studio/eishan/internal/domain/auth"
	"github.com/eishan-studio/eishan/internal/domain/project"
	"github.com/eishan-studio/eishan/internal/domain/review"
	"github.com/eishan-studio/eishan/internal/domain/view"
)

// Server wires HTTP handlers over the navigator, the session provider, and
// the content services.
type Server struct {
	nav      *view.Navigator
	sessions *auth.Provider
	projects *project.Service
	reviews  *review.Service
	logger   *slog.Logger
}

// Deps holds the collaborators the HTTP surface exposes.
type Deps struct {
	Navigator *view.Navigator
	Sessions  *auth.Provider
	Projects  *project.Service
	Reviews   *review.Service
	Logger    *slog.Logger
}

// NewRouter creates the HTTP router with middleware.
func NewRouter(deps Deps, corsOrigins []string) *chi.Mux {
	srv := &Server{
		nav:      deps.Navigator,
		sessions: deps.Sessions,
		projects: deps.Projects,
		reviews:  deps.Reviews,
		logger:   deps.Logger,
	}
	if srv.logger == nil {
		srv.logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(srv.logRequests)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}).Handler)

	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/view", srv.handleViewSnapshot)
		r.Post("/navigate", srv.handleNavigate)
		r.Post("/navigate/project", srv.handleNavigateProject)

		r.Post("/auth/sign-in", srv.handleSignIn)
		r.Post("/auth/sign-up", srv.handleSignUp)
		r.Post("/auth/sign-out", srv.handleSignOut)
		r.Get("/auth/session", srv.handleSession)

		r.Get("/projects", srv.handleListProjects)
		r.Get("/projects/featured", srv.handleFeaturedProjects)
		r.Get("/projects/{id}", srv.handleGetProject)
		r.Get("/reviews", srv.handleListReviews)
		r.Get("/reviews/{id}", srv.handleGetReview)

		// Dashboard mutations require a session, like the dashboard screen.
		r.Group(func(r chi.Router) {
			r.Use(srv.requireSession)
			r.Post("/projects", srv.handleCreateProject)
			r.Put("/projects/{id}", srv.handleUpdateProject)
			r.Delete("/projects/{id}", srv.handleDeleteProject)
			r.Post("/reviews", srv.handleCreateReview)
			r.Put("/reviews/{id}", srv.handleUpdateReview)
			r.Delete("/reviews/{id}", srv.handleDeleteReview)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
