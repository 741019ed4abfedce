package radial

import "errors"

// Caller misuse. The host must not trigger these by construction; they are
// returned instead of being silently ignored.
var (
	// ErrSessionActive is returned for a pointer-down while a session is
	// still active (two simultaneous pointer tracks are not supported).
	ErrSessionActive = errors.New("radial: session already active")
	// ErrNoSession is returned for a move or up without a preceding down.
	ErrNoSession = errors.New("radial: no active session")
	// ErrSessionEnded is returned when an ended session is fed another sample.
	ErrSessionEnded = errors.New("radial: session already ended")
	// ErrMenuClosed is returned for any pointer event after the menu closed.
	ErrMenuClosed = errors.New("radial: menu closed")
	// ErrUnknownOption is returned when a vocabulary cannot decode a selection.
	ErrUnknownOption = errors.New("radial: unknown option")
	// ErrAtRoot is returned by Navigator.Back when no submenu is open.
	ErrAtRoot = errors.New("radial: already at root partition")
)
