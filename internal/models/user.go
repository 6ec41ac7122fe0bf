package models

import "time"

// User is a registered account. It is a plain data record: password checks
// and session handling live in the auth service, not on the struct.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Don't return password hash in JSON
	JoinedAt     time.Time `json:"joined_at"`
}
