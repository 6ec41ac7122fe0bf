package store

import (
	"context"
	"sort"
	"sync"

	"github.com/daybook-app/daybook-backend/internal/models"
)

// InMemoryEntryStore is the test double for PostgresEntryStore.
type InMemoryEntryStore struct {
	mu      sync.Mutex
	entries map[int64]models.JournalEntry
	nextID  int64
}

func NewInMemoryEntryStore() *InMemoryEntryStore {
	return &InMemoryEntryStore{
		entries: make(map[int64]models.JournalEntry),
		nextID:  1,
	}
}

func (s *InMemoryEntryStore) CreateEntry(_ context.Context, e models.JournalEntry) (models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextID
	s.nextID++
	s.entries[e.ID] = e
	return e, nil
}

func (s *InMemoryEntryStore) EntryByID(_ context.Context, id int64) (models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return models.JournalEntry{}, ErrEntryNotFound
	}
	return e, nil
}

func (s *InMemoryEntryStore) EntriesByOwner(_ context.Context, userID int64) ([]models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := []models.JournalEntry{}
	for _, e := range s.entries {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	// Newest first, id as tie-break
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func (s *InMemoryEntryStore) UpdateEntry(_ context.Context, e models.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.entries[e.ID]
	if !ok {
		return ErrEntryNotFound
	}
	stored.Title = e.Title
	stored.Content = e.Content
	stored.UpdatedAt = e.UpdatedAt
	s.entries[e.ID] = stored
	return nil
}

func (s *InMemoryEntryStore) DeleteEntry(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return ErrEntryNotFound
	}
	delete(s.entries, id)
	return nil
}
