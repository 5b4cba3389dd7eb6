package state

import "errors"

var (
	// ErrCaptureActive is returned when a capture is started while another
	// one is still in progress.
	ErrCaptureActive = errors.New("state: capture already active")
	// ErrNoCapture is returned by Extend and End when nothing is being captured.
	ErrNoCapture = errors.New("state: no active capture")
	// ErrInvalidWidth is returned for a line width that is not positive and
	// finite.
	ErrInvalidWidth = errors.New("state: line width must be positive and finite")
	// ErrEmptyStroke is returned when a stroke without points would be stored.
	ErrEmptyStroke = errors.New("state: stroke has no points")
	// ErrInvalidColor is returned by ParseColor.
	ErrInvalidColor = errors.New("state: invalid color")
)
