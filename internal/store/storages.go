package store

import (
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type Storages struct {
	NoteRepository NoteRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	logger.Debug().Msg("creating storages")
	return &Storages{
		NoteRepository: NewNoteRepository(db, logger),
	}
}
