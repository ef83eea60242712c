package workers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// backupTimeFormat produces the <YYYYMMDD_HHMMSS> suffix of backup file names.
const backupTimeFormat = "20060102_150405"

// BackupWorker periodically copies the database file to the backup directory
// under a timestamped name.
//
// Every insert commits before its request returns, so the file is in a
// consistent, readable state whenever the worker picks it up between
// requests. The copy is best-effort: a failed run is logged and the worker
// waits for the next tick.
type BackupWorker struct {
	dbPath    string
	backupDir string
	interval  time.Duration

	logger *logger.Logger
}

func NewBackupWorker(dbPath, backupDir string, interval time.Duration, logger *logger.Logger) *BackupWorker {
	if backupDir == "" {
		backupDir = filepath.Dir(dbPath)
	}

	return &BackupWorker{
		dbPath:    dbPath,
		backupDir: backupDir,
		interval:  interval,
		logger:    logger,
	}
}

// Run starts the backup loop in its own goroutine and returns immediately.
func (w *BackupWorker) Run() {
	w.logger.Info().
		Str("db_path", w.dbPath).
		Str("backup_dir", w.backupDir).
		Dur("interval", w.interval).
		Msg("starting backup worker")

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for range ticker.C {
			backupPath, err := CopyDatabaseFile(w.dbPath, w.backupDir)
			if err != nil {
				w.logger.Err(err).Str("func", "*BackupWorker.Run").Msg("backup run failed")
				continue
			}
			w.logger.Info().Str("backup_path", backupPath).Msg("backup created")
		}
	}()
}

// CopyDatabaseFile copies the database file at dbPath into backupDir under
// the name backup_notes_<YYYYMMDD_HHMMSS><ext>, where ext is taken from the
// source file. The original file is never touched. The destination path is
// returned on success.
func CopyDatabaseFile(dbPath, backupDir string) (string, error) {
	src, err := os.Open(dbPath)
	if err != nil {
		return "", fmt.Errorf("error opening database file: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", fmt.Errorf("error creating backup directory: %w", err)
	}

	ext := filepath.Ext(dbPath)
	name := fmt.Sprintf("backup_notes_%s%s", time.Now().Format(backupTimeFormat), ext)
	backupPath := filepath.Join(backupDir, name)

	dst, err := os.OpenFile(backupPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("error creating backup file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("error copying database file: %w", err)
	}

	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("error closing backup file: %w", err)
	}

	return backupPath, nil
}

// IsBackupName reports whether name looks like a file produced by
// [CopyDatabaseFile].
func IsBackupName(name string) bool {
	return strings.HasPrefix(filepath.Base(name), "backup_notes_")
}
