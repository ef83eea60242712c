// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// noteColumns lists the columns of the notes relation in scan order.
var noteColumns = []string{"id", "content", "created_at"}

// buildInsertNoteQuery builds the parameterised INSERT for a new note.
// The RETURNING clause hands back the server-assigned id together with the
// stored content and timestamp, so the caller receives the canonical
// database representation of the row.
func buildInsertNoteQuery(content string, createdAt string) (string, []any, error) {
	return sq.Insert("notes").
		Columns("content", "created_at").
		Values(content, createdAt).
		Suffix("RETURNING id, content, created_at").
		PlaceholderFormat(sq.Question).
		ToSql()
}

// buildSelectAllNotesQuery builds the SELECT returning every note ordered by
// id descending (newest first).
func buildSelectAllNotesQuery() (string, []any, error) {
	return sq.Select(noteColumns...).
		From("notes").
		OrderBy("id DESC").
		PlaceholderFormat(sq.Question).
		ToSql()
}
