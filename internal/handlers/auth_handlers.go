package handlers

import (
	"errors"
	"net/http"

	"github.com/daybook-app/daybook-backend/internal/auth"
	"github.com/daybook-app/daybook-backend/internal/forms"
	"github.com/daybook-app/daybook-backend/internal/session"
	"github.com/daybook-app/daybook-backend/internal/store"
)

// ShowRegister renders the registration form. Logged-in users are sent home
// instead of seeing the form again.
func (s *Server) ShowRegister(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(r); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	s.renderPage(w, r, http.StatusOK, "register", s.page(w, r, "Register"))
}

// Register processes the registration form.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(r); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	f := forms.ParseRegister(r)
	u, err := s.auth.Register(r.Context(), f)
	if err != nil {
		p := s.page(w, r, "Register")
		p.Form = map[string]string{"username": f.Username, "email": f.Email}

		if verr, ok := forms.AsValidationError(err); ok {
			p.Errors = verr.Fields
		} else if errors.Is(err, store.ErrDuplicateEmail) {
			p.Errors = map[string]string{"email": "Email is already registered"}
		} else if errors.Is(err, store.ErrDuplicateUsername) {
			p.Errors = map[string]string{"username": "Username is already taken"}
		} else {
			s.serverError(w, r, err)
			return
		}
		s.renderPage(w, r, http.StatusOK, "register", p)
		return
	}

	s.log.Infof("new user registered: %s", u.Username)
	s.addFlash(w, r, session.Flash{Category: "success", Message: "Account created. Please log in."})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ShowLogin renders the login form; logged-in users are sent home.
func (s *Server) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(r); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	s.renderPage(w, r, http.StatusOK, "login", s.page(w, r, "Log in"))
}

// Login processes the login form and establishes the session. A wrong
// password and an unknown email produce the same response.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(r); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	f := forms.ParseLogin(r)
	if verr := f.Validate(); verr != nil {
		p := s.page(w, r, "Log in")
		p.Form = map[string]string{"email": f.Email}
		p.Errors = verr.Fields
		s.renderPage(w, r, http.StatusOK, "login", p)
		return
	}

	token, u, err := s.auth.Login(r.Context(), f.Email, f.Password, f.Remember)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			p := s.page(w, r, "Log in")
			p.Form = map[string]string{"email": f.Email}
			p.Errors = map[string]string{"form": "Invalid email or password"}
			s.renderPage(w, r, http.StatusOK, "login", p)
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.setSessionCookie(w, token, s.auth.SessionTTL(f.Remember))
	s.log.Infof("user logged in: %s", u.Username)
	s.addFlash(w, r, session.Flash{Category: "success", Message: "Welcome back, " + u.Username + "!"})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout destroys the session and clears the cookie. Safe to call with an
// already-expired session.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	token := s.sessionToken(r)
	if err := s.auth.Logout(r.Context(), token); err != nil {
		s.log.Warnf("logout: %v", err)
	}
	s.clearSessionCookie(w)
	s.addFlash(w, r, session.Flash{Category: "info", Message: "You have been logged out"})
	http.Redirect(w, r, "/", http.StatusFound)
}
