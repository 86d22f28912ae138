package player

import (
	"errors"
	"fmt"
)

// LockedError is returned when a locked lesson is asked to mount a player.
type LockedError struct {
	SourceID string
	Title    string
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("lesson %q (%s) is locked", e.Title, e.SourceID)
}

// ClipboardError wraps a failed copy of an embed link.
type ClipboardError struct {
	URL string
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("copy %s to clipboard: %v", e.URL, e.Err)
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}

var errNotMounted = errors.New("no player mounted")
