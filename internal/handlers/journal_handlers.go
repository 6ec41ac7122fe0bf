package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/daybook-app/daybook-backend/internal/forms"
	"github.com/daybook-app/daybook-backend/internal/journal"
	"github.com/daybook-app/daybook-backend/internal/session"
	"github.com/daybook-app/daybook-backend/internal/store"
)

// ListEntries shows the current user's journal, newest entries first.
func (s *Server) ListEntries(w http.ResponseWriter, r *http.Request) {
	u, _ := currentUser(r)
	entries, err := s.journal.List(r.Context(), u.ID)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	p := s.page(w, r, "My Journal")
	p.Data = entries
	s.renderPage(w, r, http.StatusOK, "journal_list", p)
}

// ShowNewEntry renders the empty new-entry form.
func (s *Server) ShowNewEntry(w http.ResponseWriter, r *http.Request) {
	p := s.page(w, r, "New Entry")
	p.Data = "/journal/new"
	s.renderPage(w, r, http.StatusOK, "entry_form", p)
}

// CreateEntry processes the new-entry form.
func (s *Server) CreateEntry(w http.ResponseWriter, r *http.Request) {
	u, _ := currentUser(r)
	f := forms.ParseEntry(r)

	e, err := s.journal.Create(r.Context(), u.ID, f)
	if err != nil {
		if verr, ok := forms.AsValidationError(err); ok {
			p := s.page(w, r, "New Entry")
			p.Data = "/journal/new"
			p.Form = map[string]string{"title": f.Title, "content": f.Content}
			p.Errors = verr.Fields
			s.renderPage(w, r, http.StatusOK, "entry_form", p)
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.addFlash(w, r, session.Flash{Category: "success", Message: "Entry created"})
	http.Redirect(w, r, fmt.Sprintf("/journal/%d", e.ID), http.StatusSeeOther)
}

// ShowEntry displays one entry, ownership-checked.
func (s *Server) ShowEntry(w http.ResponseWriter, r *http.Request) {
	u, _ := currentUser(r)
	entryID, ok := s.entryID(w, r)
	if !ok {
		return
	}

	e, err := s.journal.Get(r.Context(), u.ID, entryID)
	if err != nil {
		s.entryAccessError(w, r, err)
		return
	}

	p := s.page(w, r, e.Title)
	p.Data = e
	s.renderPage(w, r, http.StatusOK, "entry_view", p)
}

// ShowEditEntry renders the edit form prefilled with the stored entry.
func (s *Server) ShowEditEntry(w http.ResponseWriter, r *http.Request) {
	u, _ := currentUser(r)
	entryID, ok := s.entryID(w, r)
	if !ok {
		return
	}

	e, err := s.journal.Get(r.Context(), u.ID, entryID)
	if err != nil {
		s.entryAccessError(w, r, err)
		return
	}

	p := s.page(w, r, "Edit Entry")
	p.Data = fmt.Sprintf("/journal/%d/edit", e.ID)
	p.Form = map[string]string{"title": e.Title, "content": e.Content}
	s.renderPage(w, r, http.StatusOK, "entry_form", p)
}

// UpdateEntry processes the edit form. A validation failure re-renders the
// form and leaves the stored entry untouched.
func (s *Server) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	u, _ := currentUser(r)
	entryID, ok := s.entryID(w, r)
	if !ok {
		return
	}

	f := forms.ParseEntry(r)
	e, err := s.journal.Update(r.Context(), u.ID, entryID, f)
	if err != nil {
		if verr, ok := forms.AsValidationError(err); ok {
			p := s.page(w, r, "Edit Entry")
			p.Data = fmt.Sprintf("/journal/%d/edit", entryID)
			p.Form = map[string]string{"title": f.Title, "content": f.Content}
			p.Errors = verr.Fields
			s.renderPage(w, r, http.StatusOK, "entry_form", p)
			return
		}
		s.entryAccessError(w, r, err)
		return
	}

	s.addFlash(w, r, session.Flash{Category: "success", Message: "Entry updated"})
	http.Redirect(w, r, fmt.Sprintf("/journal/%d", e.ID), http.StatusSeeOther)
}

// DeleteEntry removes an entry permanently.
func (s *Server) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	u, _ := currentUser(r)
	entryID, ok := s.entryID(w, r)
	if !ok {
		return
	}

	if err := s.journal.Delete(r.Context(), u.ID, entryID); err != nil {
		s.entryAccessError(w, r, err)
		return
	}

	s.addFlash(w, r, session.Flash{Category: "success", Message: "Entry deleted"})
	http.Redirect(w, r, "/journal", http.StatusSeeOther)
}

func (s *Server) entryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		s.NotFound(w, r)
		return 0, false
	}
	return id, true
}

// entryAccessError maps the gate errors: a missing entry is a 404 page, an
// entry owned by someone else redirects back with an error flash.
func (s *Server) entryAccessError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrEntryNotFound):
		s.NotFound(w, r)
	case errors.Is(err, journal.ErrForbidden):
		s.addFlash(w, r, session.Flash{Category: "error", Message: "You do not have access to that entry"})
		http.Redirect(w, r, "/journal", http.StatusFound)
	default:
		s.serverError(w, r, err)
	}
}
