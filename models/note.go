// Package models contains the domain types shared across the application
// layers.
package models

// TimeFormat is the layout used for note creation timestamps, both in the
// database and on the rendered page.
const TimeFormat = "2006-01-02 15:04:05"

// Note is a single saved note.
type Note struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
