package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/daybook-app/daybook-backend/internal/models"
)

type PostgresEntryStore struct {
	db *sql.DB
}

func NewPostgresEntryStore(db *sql.DB) *PostgresEntryStore {
	return &PostgresEntryStore{db: db}
}

func (s *PostgresEntryStore) CreateEntry(ctx context.Context, e models.JournalEntry) (models.JournalEntry, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO journal_entries (user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, e.UserID, e.Title, e.Content, e.CreatedAt, e.UpdatedAt).Scan(&e.ID)
	if err != nil {
		return models.JournalEntry{}, err
	}
	return e, nil
}

func (s *PostgresEntryStore) EntryByID(ctx context.Context, id int64) (models.JournalEntry, error) {
	var e models.JournalEntry
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM journal_entries WHERE id = $1
	`, id).Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.JournalEntry{}, ErrEntryNotFound
	}
	if err != nil {
		return models.JournalEntry{}, err
	}
	return e, nil
}

func (s *PostgresEntryStore) EntriesByOwner(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *PostgresEntryStore) UpdateEntry(ctx context.Context, e models.JournalEntry) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE journal_entries SET title = $1, content = $2, updated_at = $3
		WHERE id = $4
	`, e.Title, e.Content, e.UpdatedAt, e.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (s *PostgresEntryStore) DeleteEntry(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEntryNotFound
	}
	return nil
}
