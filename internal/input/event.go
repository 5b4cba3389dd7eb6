// Package input turns raw mouse and touch events into surface-local points.
package input

// Kind identifies a raw device event.
type Kind int

const (
	MouseDown Kind = iota
	MouseMove
	MouseUp
	MouseLeave
	TouchStart
	TouchMove
	TouchEnd
	TouchCancel
)

var kindNames = [...]string{
	MouseDown:   "mouse-down",
	MouseMove:   "mouse-move",
	MouseUp:     "mouse-up",
	MouseLeave:  "mouse-leave",
	TouchStart:  "touch-start",
	TouchMove:   "touch-move",
	TouchEnd:    "touch-end",
	TouchCancel: "touch-cancel",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Phase is the capture step an event drives.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseStart
	PhaseMove
	PhaseEnd
)

// Phase maps the device event to the capture step it triggers. Leaving the
// surface and cancelled touches finish the capture like a normal release.
func (k Kind) Phase() Phase {
	switch k {
	case MouseDown, TouchStart:
		return PhaseStart
	case MouseMove, TouchMove:
		return PhaseMove
	case MouseUp, MouseLeave, TouchEnd, TouchCancel:
		return PhaseEnd
	}
	return PhaseNone
}

// IsTouch reports whether the event came from a touch device.
func (k Kind) IsTouch() bool {
	return k >= TouchStart && k <= TouchCancel
}

// Contact is one finger on a touch surface, in client (window) coordinates.
type Contact struct {
	ClientX float64
	ClientY float64
}

// Event is a raw input event as delivered by the host. Mouse events carry
// their position relative to the drawing surface in OffsetX/OffsetY; touch
// events carry their active contacts in client coordinates.
type Event struct {
	Kind    Kind
	OffsetX float64
	OffsetY float64
	Touches []Contact
}

// Mouse builds a mouse event at the given surface offset.
func Mouse(kind Kind, x, y float64) Event {
	return Event{Kind: kind, OffsetX: x, OffsetY: y}
}

// Touch builds a touch event with the given contacts.
func Touch(kind Kind, contacts ...Contact) Event {
	return Event{Kind: kind, Touches: contacts}
}

// Rect is the surface's bounding rectangle in client coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}
