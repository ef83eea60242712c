package service

import "errors"

var (
	// ErrEmptyContent is returned by AddNote when the submitted content is
	// absent or empty. The write path recovers by skipping the insert and
	// rendering the current state.
	ErrEmptyContent = errors.New("note content is empty")

	// ErrVersionIsNotSpecified is returned by NewAppInfoService when the
	// application version is missing from configuration.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
