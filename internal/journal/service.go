// Package journal implements ownership-gated CRUD on journal entries.
// Every read and write compares the entry's stored owner against the
// authenticated user; a client-supplied owner is never trusted.
package journal

import (
	"context"
	"errors"
	"time"

	"github.com/daybook-app/daybook-backend/internal/forms"
	"github.com/daybook-app/daybook-backend/internal/models"
	"github.com/daybook-app/daybook-backend/internal/store"
)

// ErrForbidden means the entry exists but belongs to someone else.
var ErrForbidden = errors.New("entry belongs to another user")

type Service struct {
	entries store.EntryStore
	now     func() time.Time
}

func NewService(entries store.EntryStore) *Service {
	return &Service{entries: entries, now: func() time.Time { return time.Now().UTC() }}
}

// List returns the user's entries, newest-created-first.
func (s *Service) List(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	return s.entries.EntriesByOwner(ctx, userID)
}

// Create persists a new entry owned by userID with created_at = updated_at.
func (s *Service) Create(ctx context.Context, userID int64, f forms.EntryForm) (models.JournalEntry, error) {
	if verr := f.Validate(); verr != nil {
		return models.JournalEntry{}, verr
	}

	now := s.now()
	return s.entries.CreateEntry(ctx, models.JournalEntry{
		UserID:    userID,
		Title:     f.Title,
		Content:   f.Content,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Get returns the entry when it exists and userID owns it. Existence is
// checked before ownership, so a missing entry is NotFound, not Forbidden.
func (s *Service) Get(ctx context.Context, userID, entryID int64) (models.JournalEntry, error) {
	e, err := s.entries.EntryByID(ctx, entryID)
	if err != nil {
		return models.JournalEntry{}, err
	}
	if e.UserID != userID {
		return models.JournalEntry{}, ErrForbidden
	}
	return e, nil
}

// Update overwrites title and content and refreshes updated_at. On a
// validation failure the stored entry is left untouched.
func (s *Service) Update(ctx context.Context, userID, entryID int64, f forms.EntryForm) (models.JournalEntry, error) {
	e, err := s.Get(ctx, userID, entryID)
	if err != nil {
		return models.JournalEntry{}, err
	}

	if verr := f.Validate(); verr != nil {
		return models.JournalEntry{}, verr
	}

	e.Title = f.Title
	e.Content = f.Content
	e.UpdatedAt = s.now()
	if err := s.entries.UpdateEntry(ctx, e); err != nil {
		return models.JournalEntry{}, err
	}
	return e, nil
}

// Delete removes the entry permanently.
func (s *Service) Delete(ctx context.Context, userID, entryID int64) error {
	if _, err := s.Get(ctx, userID, entryID); err != nil {
		return err
	}
	return s.entries.DeleteEntry(ctx, entryID)
}
