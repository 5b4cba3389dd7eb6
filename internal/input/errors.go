package input

import "errors"

var (
	// ErrEmptyTouch is returned for a touch event without any contact.
	ErrEmptyTouch = errors.New("input: touch event has no contacts")
	// ErrNoPosition is returned for event kinds that do not carry a position.
	ErrNoPosition = errors.New("input: event carries no position")
)
