package state

import "github.com/google/uuid"

// newStrokeID returns a unique id for a stroke. IDs only need to be unique
// within one drawing; they are carried into saved documents and logs.
func newStrokeID() string {
	return uuid.NewString()
}
