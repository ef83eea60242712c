package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the SQLite-backed implementation of [NoteRepository].
// It handles note creation and retrieval against the "notes" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// SaveNote persists a new note and returns the fully populated [models.Note]
// with the server-assigned ID.
//
// The creation timestamp is captured here, in the serving process's local
// time, and formatted with [models.TimeFormat] before it goes into the
// INSERT; the stored string and the rendered string are therefore identical.
// The INSERT uses a RETURNING clause, so the caller receives the canonical
// database representation of the newly created row. The statement commits
// before the method returns.
//
// Error handling:
//   - SQLite file-level failure (cannot open, read-only, disk full,
//     corruption) → [ErrDatabaseUnavailable].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *noteRepository) SaveNote(ctx context.Context, content string) (models.Note, error) {
	log := logger.FromContext(ctx)

	createdAt := time.Now().Format(models.TimeFormat)

	query, args, err := buildInsertNoteQuery(content, createdAt)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.SaveNote").Msg("error building insert query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// insert note into db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.SaveNote").Msg("error: row is nil")

		if isFileUnavailable(sqliteError(err)) {
			return models.Note{}, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
		}
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved note from db
	var note models.Note
	if err := row.Scan(&note.ID, &note.Content, &note.CreatedAt); err != nil {
		log.Err(err).Str("func", "*noteRepository.SaveNote").Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// GetAllNotes retrieves every stored note ordered by id descending.
//
// The result is eagerly materialized into a slice before the method returns;
// the row cursor is never handed to the caller. A freshly initialized store
// yields an empty slice.
//
// Error handling:
//   - SQLite file-level failure → [ErrDatabaseUnavailable].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
//   - Scan or iteration failure → wrapped [ErrScanningRows].
func (r *noteRepository) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllNotesQuery()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetAllNotes").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetAllNotes").Msg("error executing select query")

		if isFileUnavailable(sqliteError(err)) {
			return nil, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.Content, &note.CreatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.GetAllNotes").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.GetAllNotes").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}
