package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteRepository is the persistence contract for notes.
//
// The backing store is append-only: rows are inserted and read back, never
// updated or deleted by the application. Both operations acquire a pooled
// connection for the duration of the call and release it on return.
type NoteRepository interface {
	// SaveNote appends a new note with a server-assigned id and a creation
	// timestamp captured at insert time. The insert commits before the call
	// returns, so the note is visible to any later GetAllNotes call.
	SaveNote(ctx context.Context, content string) (models.Note, error)

	// GetAllNotes returns every stored note ordered by id descending
	// (newest first). An empty store yields an empty slice, not an error.
	GetAllNotes(ctx context.Context) ([]models.Note, error)
}
