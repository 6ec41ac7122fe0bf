// Package auth implements registration, login and session resolution as a
// stateless service over the user store. User records stay plain data; all
// credential behavior lives here.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/daybook-app/daybook-backend/internal/forms"
	"github.com/daybook-app/daybook-backend/internal/models"
	"github.com/daybook-app/daybook-backend/internal/session"
	"github.com/daybook-app/daybook-backend/internal/store"
	"github.com/daybook-app/daybook-backend/pkg/utils"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password,
// so a failed login never reveals which field was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	users       store.UserStore
	sessions    session.Store
	sessionTTL  time.Duration
	rememberTTL time.Duration
}

func NewService(users store.UserStore, sessions session.Store, sessionTTL, rememberTTL time.Duration) *Service {
	return &Service{
		users:       users,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
		rememberTTL: rememberTTL,
	}
}

// Register validates the form and creates the user with a freshly salted
// password hash. The duplicate email check runs before the username check,
// so when both conflict the user is told about the email.
func (s *Service) Register(ctx context.Context, f forms.RegisterForm) (models.User, error) {
	if verr := f.Validate(); verr != nil {
		return models.User{}, verr
	}

	if _, err := s.users.UserByEmail(ctx, f.Email); err == nil {
		return models.User{}, store.ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, err
	}

	if _, err := s.users.UserByUsername(ctx, f.Username); err == nil {
		return models.User{}, store.ErrDuplicateUsername
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, err
	}

	hash, err := utils.HashPassword(f.Password)
	if err != nil {
		return models.User{}, err
	}

	return s.users.CreateUser(ctx, models.User{
		Username:     utils.NormalizeUsername(f.Username),
		Email:        f.Email,
		PasswordHash: hash,
		JoinedAt:     time.Now().UTC(),
	})
}

// Login checks the credentials and establishes a session. With remember set
// the session gets the extended lifetime.
func (s *Service) Login(ctx context.Context, email, password string, remember bool) (string, models.User, error) {
	u, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", models.User{}, ErrInvalidCredentials
		}
		return "", models.User{}, err
	}

	valid, err := utils.VerifyPassword(password, u.PasswordHash)
	if err != nil || !valid {
		return "", models.User{}, ErrInvalidCredentials
	}

	ttl := s.sessionTTL
	if remember {
		ttl = s.rememberTTL
	}
	token, err := s.sessions.Create(ctx, u.ID, ttl)
	if err != nil {
		return "", models.User{}, err
	}
	return token, u, nil
}

// SessionTTL returns the lifetime a session created with the given remember
// choice gets; the session cookie's MaxAge mirrors it.
func (s *Service) SessionTTL(remember bool) time.Duration {
	if remember {
		return s.rememberTTL
	}
	return s.sessionTTL
}

// Logout invalidates the session. Calling it with an already-invalid token
// is a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// CurrentUser resolves the identity bound to an active session.
func (s *Service) CurrentUser(ctx context.Context, token string) (models.User, bool) {
	userID, ok, err := s.sessions.UserID(ctx, token)
	if err != nil || !ok {
		return models.User{}, false
	}
	u, err := s.users.UserByID(ctx, userID)
	if err != nil {
		return models.User{}, false
	}
	return u, true
}
