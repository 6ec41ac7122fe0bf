package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/daybook-app/daybook-backend/internal/handlers"
)

// SetupRoutes wires the HTTP surface. The session-resolving middleware is
// mounted globally; protected routes additionally require a logged-in user.
func SetupRoutes(r *chi.Mux, s *handlers.Server) {
	r.NotFound(s.NotFound)

	r.Group(func(r chi.Router) {
		r.Use(s.WithUser)

		// Public pages
		r.Get("/", s.Landing)
		r.Get("/register", s.ShowRegister)
		r.Post("/register", s.Register)
		r.Get("/login", s.ShowLogin)
		r.Post("/login", s.Login)
		r.Get("/logout", s.Logout)

		// Journal pages (owner only)
		r.Group(func(r chi.Router) {
			r.Use(s.RequireUser)
			r.Get("/journal", s.ListEntries)
			r.Get("/journal/new", s.ShowNewEntry)
			r.Post("/journal/new", s.CreateEntry)
			r.Get("/journal/{id}", s.ShowEntry)
			r.Get("/journal/{id}/edit", s.ShowEditEntry)
			r.Post("/journal/{id}/edit", s.UpdateEntry)
			r.Post("/journal/{id}/delete", s.DeleteEntry)
		})
	})
}
