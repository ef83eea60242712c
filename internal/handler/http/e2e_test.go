package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFileBackedRouter wires the full stack (sqlite file, migrations,
// storages, services, handler) against a database file at dbPath.
func newFileBackedRouter(t *testing.T, dbPath string) http.Handler {
	t.Helper()

	db, err := store.NewConnectSQLite(context.Background(), config.DB{DSN: dbPath}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())

	storages := store.NewStorages(db, logger.Nop())

	cfg := &config.StructuredConfig{App: config.App{Version: "1.0.0"}}
	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, logger.Nop()).Init()
}

func getIndex(t *testing.T, router http.Handler) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestFullStack_FirstVisitShowsEmptyForm(t *testing.T) {
	router := newFileBackedRouter(t, filepath.Join(t.TempDir(), "notes.db"))

	rec := getIndex(t, router)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No notes yet.")
	assert.Contains(t, rec.Body.String(), `name="content"`)
}

func TestFullStack_AddedNoteAppearsOnTop(t *testing.T) {
	router := newFileBackedRouter(t, filepath.Join(t.TempDir(), "notes.db"))

	rec := postForm(t, router, url.Values{"content": {"remember the milk"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "remember the milk")

	rec = getIndex(t, router)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "remember the milk")
}

func TestFullStack_NotesSurviveRestart(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "notes.db")

	router := newFileBackedRouter(t, dbPath)
	postForm(t, router, url.Values{"content": {"before restart"}})

	// a fresh stack over the same file stands in for a process restart
	restarted := newFileBackedRouter(t, dbPath)

	rec := getIndex(t, restarted)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "before restart")
}

func TestFullStack_EmptySubmissionStoresNothing(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "notes.db")
	router := newFileBackedRouter(t, dbPath)

	rec := postForm(t, router, url.Values{"content": {""}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = getIndex(t, router)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No notes yet.")
}

func TestFullStack_BackupCopyOpensAsValidStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "notes.db")

	router := newFileBackedRouter(t, dbPath)
	postForm(t, router, url.Values{"content": {"backed up note"}})

	backupPath, err := workers.CopyDatabaseFile(dbPath, t.TempDir())
	require.NoError(t, err)

	// later inserts must not leak into the already-taken backup
	postForm(t, router, url.Values{"content": {"after the backup"}})

	original, err := os.ReadFile(dbPath)
	require.NoError(t, err)
	backup, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.NotEqual(t, original, backup)

	// the copy is a complete database: a stack over it serves the old state
	restored := newFileBackedRouter(t, backupPath)
	rec := getIndex(t, restored)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "backed up note")
	assert.NotContains(t, rec.Body.String(), "after the backup")
}
