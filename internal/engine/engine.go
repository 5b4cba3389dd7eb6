// Package engine ties input sampling, stroke recording, history and
// rendering together behind a two-state machine: Idle and Capturing.
//
// All methods must be called from the same goroutine, normally the UI
// goroutine, in the order events arrive.
package engine

import (
	"fmt"
	"image"
	"image/color"

	"LocalSketch/internal/input"
	"LocalSketch/internal/render"
	"LocalSketch/internal/state"
)

// State is the engine's capture state.
type State int

const (
	Idle State = iota
	Capturing
)

func (s State) String() string {
	if s == Capturing {
		return "capturing"
	}
	return "idle"
}

// Change describes what happened to the surface after an operation so the
// host knows how much to repaint.
type Change struct {
	// Full is set when the whole surface was redrawn.
	Full bool
	// Damage is the area touched by the live trace when Full is false.
	Damage image.Rectangle
}

// Engine is the drawing surface's controller.
type Engine struct {
	surface  *render.Surface
	renderer *render.Renderer
	recorder state.Recorder
	history  *state.History
	trace    *render.Trace

	// touch is true when the active capture was started by a touch event.
	touch bool

	color color.NRGBA
	width float64

	// OnChange is called after the surface was modified.
	OnChange func(Change)
	// OnHistory is called after the committed or undone strokes changed.
	OnHistory func()
}

// Option configures a new Engine.
type Option func(*Engine)

// WithColor sets the brush color of the first stroke.
func WithColor(c color.Color) Option {
	return func(e *Engine) { e.color = toNRGBA(c) }
}

// WithWidth sets the line width of the first stroke. Widths that are not
// positive and finite are ignored.
func WithWidth(w float64) Option {
	return func(e *Engine) {
		if state.ValidWidth(w) {
			e.width = w
		}
	}
}

// New returns an idle engine drawing onto surface, which it clears.
func New(surface *render.Surface, opts ...Option) *Engine {
	e := &Engine{
		surface:  surface,
		renderer: render.New(),
		history:  state.NewHistory(),
		color:    color.NRGBA{A: 255},
		width:    1,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.renderer.Clear(surface)
	return e
}

// Handle processes one raw input event. rect is the surface's bounding
// rectangle in client coordinates, needed to place touch contacts.
//
// Starting a capture while one is active returns state.ErrCaptureActive and
// leaves the active stroke untouched. Moves and releases while idle (hover,
// leaving the surface without drawing) are ignored. Events from a different
// device family than the one that started the capture are ignored too, so
// emulated mouse events that trail a touch do not corrupt the stroke.
func (e *Engine) Handle(ev input.Event, rect input.Rect) error {
	switch ev.Kind.Phase() {
	case input.PhaseStart:
		return e.start(ev, rect)
	case input.PhaseMove:
		if !e.accepts(ev) {
			return nil
		}
		return e.move(ev, rect)
	case input.PhaseEnd:
		if !e.accepts(ev) {
			return nil
		}
		_, err := e.end()
		return err
	}
	return fmt.Errorf("engine: unsupported event %s", ev.Kind)
}

func (e *Engine) accepts(ev input.Event) bool {
	return e.recorder.Active() && ev.Kind.IsTouch() == e.touch
}

func (e *Engine) start(ev input.Event, rect input.Rect) error {
	if e.recorder.Active() {
		Logger().Warn("capture start rejected", "event", ev.Kind.String())
		return fmt.Errorf("engine: %s: %w", ev.Kind, state.ErrCaptureActive)
	}
	p, err := input.Sample(ev, rect)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if err := e.recorder.Begin(p, e.color, e.width); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	e.touch = ev.Kind.IsTouch()
	e.trace = e.renderer.BeginTrace(e.surface, p, e.color, e.width)
	Logger().Debug("capture started", "x", p.X, "y", p.Y, "touch", e.touch)
	e.changed(Change{Damage: e.trace.Start()})
	// CanUndo and CanRedo report false until the stroke ends.
	e.historyChanged()
	return nil
}

func (e *Engine) move(ev input.Event, rect input.Rect) error {
	p, err := input.Sample(ev, rect)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if err := e.recorder.Extend(p); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if damage := e.trace.Extend(p); !damage.Empty() {
		e.changed(Change{Damage: damage})
	}
	return nil
}

func (e *Engine) end() (state.Stroke, error) {
	s, err := e.recorder.End()
	if err != nil {
		return state.Stroke{}, fmt.Errorf("engine: %w", err)
	}
	e.trace = nil
	if err := e.history.Commit(s); err != nil {
		return state.Stroke{}, fmt.Errorf("engine: %w", err)
	}
	Logger().Info("stroke committed", "id", s.ID(), "points", s.Len(), "committed", e.history.Len())
	e.historyChanged()
	return s, nil
}

// Undo removes the newest committed stroke and redraws the surface. It
// returns false when there was nothing to undo or a capture is active;
// undo is only meaningful between gestures, so mid-capture requests are
// ignored.
func (e *Engine) Undo() bool {
	if e.recorder.Active() {
		Logger().Warn("undo ignored during capture")
		return false
	}
	committed, ok := e.history.Undo()
	if !ok {
		Logger().Debug("nothing to undo")
		return false
	}
	e.renderer.Redraw(e.surface, committed)
	Logger().Debug("undo", "committed", len(committed), "undone", e.history.UndoneLen())
	e.changed(Change{Full: true})
	e.historyChanged()
	return true
}

// Redo restores the most recently undone stroke and redraws the surface.
// Like Undo it is ignored during a capture.
func (e *Engine) Redo() bool {
	if e.recorder.Active() {
		Logger().Warn("redo ignored during capture")
		return false
	}
	committed, ok := e.history.Redo()
	if !ok {
		Logger().Debug("nothing to redo")
		return false
	}
	e.renderer.Redraw(e.surface, committed)
	Logger().Debug("redo", "committed", len(committed), "undone", e.history.UndoneLen())
	e.changed(Change{Full: true})
	e.historyChanged()
	return true
}

// Load replaces the history with strokes, as when opening a saved drawing.
// Undone strokes are dropped. It fails during a capture.
func (e *Engine) Load(strokes []state.Stroke) error {
	if e.recorder.Active() {
		return fmt.Errorf("engine: load: %w", state.ErrCaptureActive)
	}
	if err := e.history.Reset(strokes); err != nil {
		return fmt.Errorf("engine: load: %w", err)
	}
	e.renderer.Redraw(e.surface, strokes)
	Logger().Info("strokes loaded", "count", len(strokes))
	e.changed(Change{Full: true})
	e.historyChanged()
	return nil
}

// Redraw rebuilds the surface from the committed strokes. During a capture
// the in-progress stroke is drawn on top so live feedback is not lost.
func (e *Engine) Redraw() {
	e.renderer.Redraw(e.surface, e.history.Snapshot())
	if cur, ok := e.recorder.Current(); ok {
		e.renderer.DrawStroke(e.surface, cur)
	}
	e.changed(Change{Full: true})
}

// SetColor sets the color of the next stroke. A stroke being captured keeps
// the color it started with.
func (e *Engine) SetColor(c color.Color) {
	e.color = toNRGBA(c)
}

// SetWidth sets the line width of the next stroke.
func (e *Engine) SetWidth(w float64) error {
	if !state.ValidWidth(w) {
		return fmt.Errorf("engine: width %v: %w", w, state.ErrInvalidWidth)
	}
	e.width = w
	return nil
}

func (e *Engine) Color() color.NRGBA       { return e.color }
func (e *Engine) Width() float64           { return e.width }
func (e *Engine) Surface() *render.Surface { return e.surface }
func (e *Engine) CanUndo() bool            { return !e.recorder.Active() && e.history.CanUndo() }
func (e *Engine) CanRedo() bool            { return !e.recorder.Active() && e.history.CanRedo() }

// State returns Capturing while a stroke is being recorded.
func (e *Engine) State() State {
	if e.recorder.Active() {
		return Capturing
	}
	return Idle
}

// CommittedStrokes returns the strokes that make up the drawing, oldest
// first.
func (e *Engine) CommittedStrokes() []state.Stroke {
	return e.history.Snapshot()
}

// Current returns the stroke being captured, if any.
func (e *Engine) Current() (state.Stroke, bool) {
	return e.recorder.Current()
}

func (e *Engine) changed(c Change) {
	if e.OnChange != nil {
		e.OnChange(c)
	}
}

func (e *Engine) historyChanged() {
	if e.OnHistory != nil {
		e.OnHistory()
	}
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
