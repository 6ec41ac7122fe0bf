package models

import "time"

// JournalEntry is a private journal entry owned by exactly one user.
// UserID is the explicit foreign key; ownership checks always compare it
// against the authenticated user's ID.
type JournalEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
