// Package httpapi exposes the REST surface: public content reads, the
// session endpoints and the guarded admin mutations.
package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/foliovault/internal/logging"
	"github.com/dmitrijs2005/foliovault/internal/server/config"
	"github.com/dmitrijs2005/foliovault/internal/server/mail"
	"github.com/dmitrijs2005/foliovault/internal/server/projects"
	"github.com/dmitrijs2005/foliovault/internal/server/sections"
	"github.com/dmitrijs2005/foliovault/internal/server/team"
	"github.com/dmitrijs2005/foliovault/internal/server/users"
	"github.com/go-chi/chi/v5"
)

// Server bundles the services the handlers dispatch to.
type Server struct {
	cfg      *config.Config
	users    *users.Service
	projects *projects.Service
	sections *sections.Service
	team     *team.Service
	mailer   mail.Mailer
	log      logging.Logger
}

func NewServer(cfg *config.Config, u *users.Service, p *projects.Service,
	sec *sections.Service, tm *team.Service, m mail.Mailer, log logging.Logger) *Server {
	return &Server{
		cfg:      cfg,
		users:    u,
		projects: p,
		sections: sec,
		team:     tm,
		mailer:   m,
		log:      log,
	}
}

// Routes assembles the middleware chain and the route table. Public
// reads stay open; every mutation goes through the access guard and the
// admin role check.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger(s.log))
	r.Use(CORS(s.cfg.CORSAllowedOrigins))

	loginLimiter := NewIPRateLimiter(s.cfg.LoginRatePerMinute)

	r.Route("/api", func(r chi.Router) {
		r.With(loginLimiter.Middleware).Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)
		r.Get("/auth/me", s.handleMe)

		r.Get("/projects", s.handleListProjects)
		r.Get("/projects/slug/{slug}", s.handleGetProjectBySlug)
		r.Get("/projects/{id}", s.handleGetProject)
		r.Get("/sections", s.handleGetSections)
		r.Get("/team-members", s.handleListTeamMembers)
		r.Post("/contact", s.handleContact)

		r.Group(func(r chi.Router) {
			r.Use(AccessGuard(s.users))
			r.Use(RequireAdmin)

			r.Post("/projects", s.handleCreateProject)
			r.Put("/projects/{id}", s.handleUpdateProject)
			r.Delete("/projects/{id}", s.handleDeleteProject)

			r.Put("/sections/{type}", s.handleUpdateSection)

			r.Post("/team-members", s.handleCreateTeamMember)
			r.Put("/team-members/{id}", s.handleUpdateTeamMember)
			r.Delete("/team-members/{id}", s.handleDeleteTeamMember)

			r.Post("/upload", s.handleUpload)
		})
	})

	fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.cfg.UploadsDir)))
	r.Get("/uploads/*", fs.ServeHTTP)

	return r
}
