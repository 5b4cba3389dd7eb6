package state

// History holds the committed strokes (oldest first) and the undone strokes
// (most recently undone last). A stroke lives in at most one of the two.
//
// History is not safe for concurrent use; the engine drives it from a single
// goroutine.
type History struct {
	committed []Stroke
	undone    []Stroke
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Commit appends s to the committed strokes. Any undone strokes are
// discarded: a new drawing action invalidates redo.
func (h *History) Commit(s Stroke) error {
	if s.Len() == 0 {
		return ErrEmptyStroke
	}
	h.committed = append(h.committed, s)
	clear(h.undone)
	h.undone = h.undone[:0]
	return nil
}

// Undo moves the newest committed stroke onto the undone stack. It returns
// the resulting committed strokes and false if there was nothing to undo.
func (h *History) Undo() ([]Stroke, bool) {
	n := len(h.committed)
	if n == 0 {
		return h.Snapshot(), false
	}
	last := h.committed[n-1]
	h.committed[n-1] = Stroke{}
	h.committed = h.committed[:n-1]
	h.undone = append(h.undone, last)
	return h.Snapshot(), true
}

// Redo moves the most recently undone stroke back onto the committed
// strokes. It returns the resulting committed strokes and false if there was
// nothing to redo.
func (h *History) Redo() ([]Stroke, bool) {
	n := len(h.undone)
	if n == 0 {
		return h.Snapshot(), false
	}
	last := h.undone[n-1]
	h.undone[n-1] = Stroke{}
	h.undone = h.undone[:n-1]
	h.committed = append(h.committed, last)
	return h.Snapshot(), true
}

// Snapshot returns a copy of the committed strokes.
func (h *History) Snapshot() []Stroke {
	out := make([]Stroke, len(h.committed))
	copy(out, h.committed)
	return out
}

// Reset replaces the committed strokes and drops the undone ones.
func (h *History) Reset(strokes []Stroke) error {
	for _, s := range strokes {
		if s.Len() == 0 {
			return ErrEmptyStroke
		}
	}
	h.committed = make([]Stroke, len(strokes))
	copy(h.committed, strokes)
	h.undone = nil
	return nil
}

func (h *History) CanUndo() bool  { return len(h.committed) > 0 }
func (h *History) CanRedo() bool  { return len(h.undone) > 0 }
func (h *History) Len() int       { return len(h.committed) }
func (h *History) UndoneLen() int { return len(h.undone) }
