// Package forms parses and validates the HTML forms of the app. Validation
// is purely syntactic: an email only has to look like an email, and the
// password confirmation must match byte-for-byte before hashing happens.
package forms

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/daybook-app/daybook-backend/pkg/utils"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return utils.IsValidUsername(fl.Field().String())
	})
}

// ValidationError carries per-field user-facing messages for re-rendering
// the form inline.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "form validation failed"
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

type RegisterForm struct {
	Username  string `validate:"required,username"`
	Email     string `validate:"required,email,max=128"`
	Password  string `validate:"required,min=8"`
	Password2 string `validate:"required,eqfield=Password"`
}

func ParseRegister(r *http.Request) RegisterForm {
	return RegisterForm{
		Username:  strings.TrimSpace(r.PostFormValue("username")),
		Email:     strings.TrimSpace(r.PostFormValue("email")),
		Password:  r.PostFormValue("password"),
		Password2: r.PostFormValue("password2"),
	}
}

func (f RegisterForm) Validate() *ValidationError {
	return checkStruct(f, map[string]string{
		"Username.required":  "Username is required",
		"Username.username":  "Username must be 3-64 characters: letters, numbers and underscores, starting with a letter or number",
		"Email.required":     "Email is required",
		"Email.email":        "Enter a valid email address",
		"Email.max":          "Email must be at most 128 characters",
		"Password.required":  "Password is required",
		"Password.min":       "Password must be at least 8 characters",
		"Password2.required": "Please repeat your password",
		"Password2.eqfield":  "Passwords do not match",
	}, map[string]string{
		"Username":  "username",
		"Email":     "email",
		"Password":  "password",
		"Password2": "password2",
	})
}

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Remember bool
}

func ParseLogin(r *http.Request) LoginForm {
	return LoginForm{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
		Remember: r.PostFormValue("remember") != "",
	}
}

func (f LoginForm) Validate() *ValidationError {
	return checkStruct(f, map[string]string{
		"Email.required":    "Email is required",
		"Email.email":       "Enter a valid email address",
		"Password.required": "Password is required",
	}, map[string]string{
		"Email":    "email",
		"Password": "password",
	})
}

type EntryForm struct {
	Title   string `validate:"required,max=200"`
	Content string `validate:"required"`
}

func ParseEntry(r *http.Request) EntryForm {
	return EntryForm{
		Title:   strings.TrimSpace(r.PostFormValue("title")),
		Content: strings.TrimSpace(r.PostFormValue("content")),
	}
}

func (f EntryForm) Validate() *ValidationError {
	return checkStruct(f, map[string]string{
		"Title.required":   "Title is required",
		"Title.max":        "Title must be at most 200 characters",
		"Content.required": "Content is required",
	}, map[string]string{
		"Title":   "title",
		"Content": "content",
	})
}

// checkStruct runs the validator and converts tag failures to per-field
// messages. messages maps "Field.tag" to text; fieldNames maps struct
// fields to the form field names used in templates.
func checkStruct(s any, messages, fieldNames map[string]string) *ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: map[string]string{"form": "Invalid input"}}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fieldNames[fe.Field()]
		if name == "" {
			name = strings.ToLower(fe.Field())
		}
		if _, seen := fields[name]; seen {
			continue // keep the first failure per field
		}
		msg := messages[fe.Field()+"."+fe.Tag()]
		if msg == "" {
			msg = "Invalid value"
		}
		fields[name] = msg
	}
	return &ValidationError{Fields: fields}
}
