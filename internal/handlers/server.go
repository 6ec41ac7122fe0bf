package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/daybook-app/daybook-backend/internal/auth"
	"github.com/daybook-app/daybook-backend/internal/journal"
	"github.com/daybook-app/daybook-backend/internal/models"
	"github.com/daybook-app/daybook-backend/internal/session"
	"github.com/daybook-app/daybook-backend/internal/store"
	"github.com/daybook-app/daybook-backend/internal/web"
	"github.com/daybook-app/daybook-backend/pkg/logger"
	"github.com/daybook-app/daybook-backend/pkg/utils"
)

const (
	sessionCookieName = "daybook_session"
	flashCookieName   = "daybook_flash"
)

// Server carries the handler dependencies explicitly; nothing is resolved
// from globals at request time.
type Server struct {
	auth    *auth.Service
	journal *journal.Service
	users   store.UserStore
	flashes session.FlashStore
	render  *web.Renderer
	log     *logger.Logger

	secretKey     string // Empty disables cookie signing (development only)
	secureCookies bool
}

func NewServer(a *auth.Service, j *journal.Service, users store.UserStore,
	flashes session.FlashStore, render *web.Renderer, log *logger.Logger,
	secretKey string, secureCookies bool) *Server {
	return &Server{
		auth:          a,
		journal:       j,
		users:         users,
		flashes:       flashes,
		render:        render,
		log:           log,
		secretKey:     secretKey,
		secureCookies: secureCookies,
	}
}

type ctxKey int

const userContextKey ctxKey = iota

// WithUser resolves the session cookie to the current user and stores the
// result in the request context. Guests pass through with no user set.
func (s *Server) WithUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := s.sessionToken(r)
		if token != "" {
			if u, ok := s.auth.CurrentUser(r.Context(), token); ok {
				ctx := context.WithValue(r.Context(), userContextKey, u)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireUser guards protected routes: guests are redirected to the login
// page with an error flash.
func (s *Server) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(r); !ok {
			s.addFlash(w, r, session.Flash{Category: "error", Message: "Please log in to continue"})
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func currentUser(r *http.Request) (models.User, bool) {
	u, ok := r.Context().Value(userContextKey).(models.User)
	return u, ok
}

// sessionToken extracts and, when signing is enabled, verifies the session
// cookie. A tampered cookie counts as no session at all.
func (s *Server) sessionToken(r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return ""
	}
	if s.secretKey == "" {
		return c.Value
	}
	token, err := utils.Verify(c.Value, s.secretKey)
	if err != nil {
		return ""
	}
	return token
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	value := token
	if s.secretKey != "" {
		value = utils.Sign(token, s.secretKey)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// flashID returns the browser's flash queue ID, issuing the cookie on first
// use. Must be called before the response body is written.
func (s *Server) flashID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(flashCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	// Make the ID visible to later flash calls within this request
	r.AddCookie(&http.Cookie{Name: flashCookieName, Value: id})
	return id
}

func (s *Server) addFlash(w http.ResponseWriter, r *http.Request, f session.Flash) {
	if err := s.flashes.Push(r.Context(), s.flashID(w, r), f); err != nil {
		s.log.Warnf("failed to push flash: %v", err)
	}
}

// page assembles the common template data: current user plus any pending
// flash messages, which are consumed by this render.
func (s *Server) page(w http.ResponseWriter, r *http.Request, title string) web.Page {
	p := web.Page{Title: title}
	if u, ok := currentUser(r); ok {
		p.User = &u
	}
	flashes, err := s.flashes.Pop(r.Context(), s.flashID(w, r))
	if err != nil {
		s.log.Warnf("failed to pop flashes: %v", err)
	}
	p.Flashes = flashes
	return p
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, name string, p web.Page) {
	if err := s.render.Render(w, status, name, p); err != nil {
		s.log.Errorf("render %s: %v", name, err)
	}
}

func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusNotFound, "not_found", s.page(w, r, "Not Found"))
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Errorf("%s %s: %v", r.Method, r.URL.Path, err)
	s.renderPage(w, r, http.StatusInternalServerError, "server_error", s.page(w, r, "Server Error"))
}
