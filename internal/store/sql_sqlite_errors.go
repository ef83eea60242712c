package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// sqliteError extracts the primary SQLite result code from err, or 0 when
// err did not originate from the sqlite3 driver.
func sqliteError(err error) sqlite3.ErrNo {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code
	}

	return 0
}

// isFileUnavailable reports whether code identifies a condition where the
// backing file itself cannot be used: unreachable, unwritable, or corrupted.
func isFileUnavailable(code sqlite3.ErrNo) bool {
	switch code {
	case sqlite3.ErrCantOpen, sqlite3.ErrReadonly, sqlite3.ErrFull,
		sqlite3.ErrCorrupt, sqlite3.ErrNotADB, sqlite3.ErrIoErr:
		return true
	default:
		return false
	}
}
