package handlers

import "net/http"

// Landing lists all registered users on the home page.
func (s *Server) Landing(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.AllUsers(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	p := s.page(w, r, "Welcome")
	p.Data = users
	s.renderPage(w, r, http.StatusOK, "landing", p)
}

// Health is the unauthenticated liveness probe.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}
