package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

// notesPage is the view model for the index template.
type notesPage struct {
	Notes []models.Note

	// Message carries a user-facing validation hint (e.g. empty submission).
	// Empty on the happy path.
	Message string
}

// index serves the read path: render the submission form together with every
// stored note, newest first. GET requests are pure reads.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	notes, err := h.services.NoteService.ListNotes(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.index").Msg("error listing notes")
		http.Error(w, "error listing notes", statusFromError(err))
		return
	}

	h.renderNotesPage(w, r, notesPage{Notes: notes}, http.StatusOK)
}

// createNote serves the write path: insert the submitted note, then render
// the full listing in the same response cycle. There is deliberately no
// redirect-after-post; a client-side refresh may re-submit the form.
//
// A missing or empty "content" field skips the insert entirely and re-renders
// the current state with a 400 status.
func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("malformed form body")
		h.renderCurrentState(w, r, "could not read the submitted form")
		return
	}

	content := r.PostForm.Get("content")

	_, err := h.services.NoteService.AddNote(r.Context(), content)
	if errors.Is(err, service.ErrEmptyContent) {
		log.Warn().Str("func", "*Handler.createNote").Msg("empty content submitted, skipping insert")
		h.renderCurrentState(w, r, "note content must not be empty")
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error saving note")
		http.Error(w, "error saving note", statusFromError(err))
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error listing notes after insert")
		http.Error(w, "error listing notes", statusFromError(err))
		return
	}

	h.renderNotesPage(w, r, notesPage{Notes: notes}, http.StatusOK)
}

// renderCurrentState re-renders the unchanged note list after a rejected
// write, so the user keeps their page instead of getting a bare error.
func (h *Handler) renderCurrentState(w http.ResponseWriter, r *http.Request, message string) {
	log := logger.FromRequest(r)

	notes, err := h.services.NoteService.ListNotes(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.renderCurrentState").Msg("error listing notes")
		http.Error(w, "error listing notes", statusFromError(err))
		return
	}

	h.renderNotesPage(w, r, notesPage{Notes: notes, Message: message}, http.StatusBadRequest)
}

func (h *Handler) renderNotesPage(w http.ResponseWriter, r *http.Request, page notesPage, status int) {
	log := logger.FromRequest(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := h.templates.ExecuteTemplate(w, "index.html", page); err != nil {
		// headers are already gone, nothing more to send
		log.Err(err).Str("func", "*Handler.renderNotesPage").Msg("error executing template")
	}
}
