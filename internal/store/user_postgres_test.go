package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook-backend/internal/models"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func userColumns() []string {
	return []string{"id", "username", "email", "password_hash", "joined_at"}
}

func TestPostgresUserStoreCreateUser(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresUserStore(db)

	joined := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice", "a@x.com", "$argon2id$hash", joined).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	u, err := s.CreateUser(context.Background(), models.User{
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "$argon2id$hash",
		JoinedAt:     joined,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserStoreMapsUniqueViolations(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"email constraint", "users_email_key", ErrDuplicateEmail},
		{"username constraint", "users_username_key", ErrDuplicateUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			s := NewPostgresUserStore(db)

			mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
				WillReturnError(&pq.Error{Code: "23505", Constraint: tt.constraint})

			_, err := s.CreateUser(context.Background(), models.User{Username: "alice", Email: "a@x.com"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPostgresUserStoreUserByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresUserStore(db)

	joined := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, email, password_hash, joined_at FROM users WHERE LOWER(email) = LOWER($1)")).
		WithArgs("A@X.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).AddRow(int64(1), "alice", "a@x.com", "hash", joined))

	u, err := s.UserByEmail(context.Background(), "A@X.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserStoreNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresUserStore(db)

	mock.ExpectQuery("SELECT .+ FROM users").WillReturnError(sql.ErrNoRows)

	_, err := s.UserByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPostgresUserStoreAllUsersOrderedByJoinDate(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresUserStore(db)

	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)
	mock.ExpectQuery("SELECT .+ FROM users").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(int64(1), "alice", "a@x.com", "h1", t1).
			AddRow(int64(2), "bob", "b@x.com", "h2", t2))

	users, err := s.AllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}
