package forms

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFormValid(t *testing.T) {
	f := RegisterForm{
		Username:  "alice",
		Email:     "a@x.com",
		Password:  "secret12",
		Password2: "secret12",
	}
	assert.Nil(t, f.Validate())
}

func TestRegisterFormErrors(t *testing.T) {
	tests := []struct {
		name  string
		form  RegisterForm
		field string
	}{
		{"empty username", RegisterForm{Email: "a@x.com", Password: "secret12", Password2: "secret12"}, "username"},
		{"bad username", RegisterForm{Username: "a!", Email: "a@x.com", Password: "secret12", Password2: "secret12"}, "username"},
		{"empty email", RegisterForm{Username: "alice", Password: "secret12", Password2: "secret12"}, "email"},
		{"malformed email", RegisterForm{Username: "alice", Email: "not-an-email", Password: "secret12", Password2: "secret12"}, "email"},
		{"short password", RegisterForm{Username: "alice", Email: "a@x.com", Password: "short", Password2: "short"}, "password"},
		{"mismatched confirmation", RegisterForm{Username: "alice", Email: "a@x.com", Password: "secret12", Password2: "secret13"}, "password2"},
		{"empty confirmation", RegisterForm{Username: "alice", Email: "a@x.com", Password: "secret12"}, "password2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := tt.form.Validate()
			require.NotNil(t, verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestPasswordConfirmationIsByteExact(t *testing.T) {
	f := RegisterForm{
		Username:  "alice",
		Email:     "a@x.com",
		Password:  "secret12",
		Password2: "Secret12",
	}
	verr := f.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "password2")
}

func TestLoginFormValidation(t *testing.T) {
	assert.Nil(t, LoginForm{Email: "a@x.com", Password: "whatever"}.Validate())

	verr := LoginForm{Email: "", Password: ""}.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")

	verr = LoginForm{Email: "nope", Password: "x"}.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "email")
}

func TestEntryFormValidation(t *testing.T) {
	assert.Nil(t, EntryForm{Title: "Day 1", Content: "hello"}.Validate())

	verr := EntryForm{Title: "", Content: "hello"}.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "title")

	verr = EntryForm{Title: "Day 1", Content: ""}.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "content")
}

func TestParseEntryTrimsWhitespace(t *testing.T) {
	body := strings.NewReader("title=++&content=+hello+")
	r := httptest.NewRequest("POST", "/journal/new", body)
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	f := ParseEntry(r)
	assert.Equal(t, "", f.Title) // whitespace-only title counts as empty
	assert.Equal(t, "hello", f.Content)

	verr := f.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "title")
}

func TestParseRegisterKeepsPasswordVerbatim(t *testing.T) {
	body := strings.NewReader("username=+alice+&email=+a%40x.com+&password=+pw+&password2=+pw+")
	r := httptest.NewRequest("POST", "/register", body)
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	f := ParseRegister(r)
	assert.Equal(t, "alice", f.Username)
	assert.Equal(t, "a@x.com", f.Email)
	// Passwords are never trimmed; whitespace is significant
	assert.Equal(t, " pw ", f.Password)
	assert.Equal(t, " pw ", f.Password2)
}
