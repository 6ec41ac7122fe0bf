package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/daybook-app/daybook-backend/internal/models"
)

type PostgresUserStore struct {
	db *sql.DB
}

func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password_hash, joined_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, u.Username, u.Email, u.PasswordHash, u.JoinedAt).Scan(&u.ID)
	if err != nil {
		return models.User{}, mapUniqueViolation(err)
	}
	return u, nil
}

// mapUniqueViolation turns a unique-constraint violation into the matching
// duplicate sentinel. The auth service checks duplicates up front; this is
// the backstop for concurrent registrations.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		if strings.Contains(pqErr.Constraint, "email") {
			return ErrDuplicateEmail
		}
		return ErrDuplicateUsername
	}
	return err
}

func (s *PostgresUserStore) UserByID(ctx context.Context, id int64) (models.User, error) {
	return s.userBy(ctx, `SELECT id, username, email, password_hash, joined_at FROM users WHERE id = $1`, id)
}

func (s *PostgresUserStore) UserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.userBy(ctx, `SELECT id, username, email, password_hash, joined_at FROM users WHERE LOWER(email) = LOWER($1)`, email)
}

func (s *PostgresUserStore) UserByUsername(ctx context.Context, username string) (models.User, error) {
	return s.userBy(ctx, `SELECT id, username, email, password_hash, joined_at FROM users WHERE LOWER(username) = LOWER($1)`, username)
}

func (s *PostgresUserStore) userBy(ctx context.Context, query string, arg any) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.JoinedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// AllUsers returns every registered user, oldest first, for the landing page.
func (s *PostgresUserStore) AllUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, email, password_hash, joined_at
		FROM users
		ORDER BY joined_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.JoinedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
