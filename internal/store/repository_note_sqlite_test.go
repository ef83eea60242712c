package store

import (
	"context"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFileBackedRepo opens a real SQLite database in a temporary directory,
// applies migrations, and returns a repository over it. Pointing the store
// at an isolated file is exactly how the production configuration works.
func newFileBackedRepo(t *testing.T) NoteRepository {
	t.Helper()

	ctx := context.Background()
	cfg := config.DB{DSN: filepath.Join(t.TempDir(), "notes.db")}

	db, err := NewConnectSQLite(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())

	return NewNoteRepository(db, logger.Nop())
}

func TestFileBacked_EmptyStoreListsNothing(t *testing.T) {
	repo := newFileBackedRepo(t)

	notes, err := repo.GetAllNotes(context.Background())
	require.NoError(t, err)

	assert.Empty(t, notes)
	assert.NotNil(t, notes)
}

func TestFileBacked_RoundTrip(t *testing.T) {
	repo := newFileBackedRepo(t)
	ctx := context.Background()

	created, err := repo.SaveNote(ctx, "hello world")
	require.NoError(t, err)

	assert.Equal(t, "hello world", created.Content)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`), created.CreatedAt)

	notes, err := repo.GetAllNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)

	assert.Equal(t, created, notes[0])
}

func TestFileBacked_ListsNewestFirst(t *testing.T) {
	repo := newFileBackedRepo(t)
	ctx := context.Background()

	contents := []string{"c1", "c2", "c3", "c4", "c5"}
	for _, c := range contents {
		_, err := repo.SaveNote(ctx, c)
		require.NoError(t, err)
	}

	notes, err := repo.GetAllNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, len(contents))

	// exact reverse insertion order
	for i, note := range notes {
		assert.Equal(t, contents[len(contents)-1-i], note.Content)
	}
}

func TestFileBacked_IDsAreMonotonic(t *testing.T) {
	repo := newFileBackedRepo(t)
	ctx := context.Background()

	var lastID int64
	for i := 0; i < 10; i++ {
		note, err := repo.SaveNote(ctx, "note")
		require.NoError(t, err)

		assert.Greater(t, note.ID, lastID, "ids must strictly increase in insertion order")
		lastID = note.ID
	}
}

func TestFileBacked_InsertVisibleToSubsequentList(t *testing.T) {
	repo := newFileBackedRepo(t)
	ctx := context.Background()

	before, err := repo.GetAllNotes(ctx)
	require.NoError(t, err)

	created, err := repo.SaveNote(ctx, "committed synchronously")
	require.NoError(t, err)

	after, err := repo.GetAllNotes(ctx)
	require.NoError(t, err)

	require.Len(t, after, len(before)+1)
	assert.Equal(t, created.ID, after[0].ID)
}

func TestFileBacked_StoredNoteIsImmutable(t *testing.T) {
	repo := newFileBackedRepo(t)
	ctx := context.Background()

	first, err := repo.SaveNote(ctx, "original")
	require.NoError(t, err)

	// later inserts must not disturb an existing row
	_, err = repo.SaveNote(ctx, "another")
	require.NoError(t, err)

	notes, err := repo.GetAllNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)

	assert.Equal(t, first, notes[1])
}
