package store

import (
	"context"
	"errors"

	"github.com/daybook-app/daybook-backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrEntryNotFound     = errors.New("journal entry not found")
)

// UserStore persists user records. Lookups by username and email are
// case-insensitive.
type UserStore interface {
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	UserByID(ctx context.Context, id int64) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
	AllUsers(ctx context.Context) ([]models.User, error)
}

// EntryStore persists journal entries. EntriesByOwner returns entries
// newest-created-first.
type EntryStore interface {
	CreateEntry(ctx context.Context, e models.JournalEntry) (models.JournalEntry, error)
	EntryByID(ctx context.Context, id int64) (models.JournalEntry, error)
	EntriesByOwner(ctx context.Context, userID int64) ([]models.JournalEntry, error)
	UpdateEntry(ctx context.Context, e models.JournalEntry) error
	DeleteEntry(ctx context.Context, id int64) error
}
