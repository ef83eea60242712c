package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// AddNote rejects empty content before the repository is called; the store
// itself does not defend against empty strings.
func (s *noteService) AddNote(ctx context.Context, content string) (models.Note, error) {
	if content == "" {
		return models.Note{}, ErrEmptyContent
	}

	return s.noteRepository.SaveNote(ctx, content)
}

func (s *noteService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return s.noteRepository.GetAllNotes(ctx)
}
