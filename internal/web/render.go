// Package web renders the server-side HTML pages from templates embedded
// in the binary.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/daybook-app/daybook-backend/internal/models"
	"github.com/daybook-app/daybook-backend/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page is the data every template receives.
type Page struct {
	Title   string
	User    *models.User      // Logged-in user, nil for guests
	Flashes []session.Flash   // One-shot notices for this render
	Errors  map[string]string // Field-level form errors
	Form    map[string]string // Submitted values for re-rendering a form
	Data    any               // Page-specific payload
}

// FieldError returns the error message for a form field, if any.
func (p Page) FieldError(field string) string {
	return p.Errors[field]
}

// FieldValue returns the previously submitted value for a form field.
func (p Page) FieldValue(field string) string {
	return p.Form[field]
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render writes the named page. The template runs into a buffer first so a
// template error becomes a clean 500 instead of a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, p Page) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, p); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
