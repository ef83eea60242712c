package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

type NoteService interface {
	// AddNote validates and persists a new note. Content must be non-empty;
	// an empty submission is rejected with [ErrEmptyContent] before the
	// store is touched.
	AddNote(ctx context.Context, content string) (models.Note, error)

	// ListNotes returns all stored notes, newest first.
	ListNotes(ctx context.Context) ([]models.Note, error)
}

type AppInfoService interface {
	// GetAppVersion returns the version string of the running application.
	GetAppVersion(ctx context.Context) string
}
