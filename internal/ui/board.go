package ui

import (
	"fmt"
	"image/color"
	"log"

	"LocalSketch/internal/config"
	"LocalSketch/internal/engine"
	"LocalSketch/internal/input"
	"LocalSketch/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget shows the drawing surface and feeds mouse and touch events
// into the engine.
type BoardWidget struct {
	widget.BaseWidget

	engine *engine.Engine
	image  *canvas.Image
	size   fyne.Size
	status *widget.Label

	// touching is set between TouchDown and TouchUp so drags are reported
	// as touch moves.
	touching bool

	// origin returns the board's top-left corner in window coordinates.
	origin func() fyne.Position

	OnHistory func()
	OnBrush   func(c color.Color, width float64)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)

// NewBoardWidget creates a board with a surface of the configured size.
func NewBoardWidget(cfg config.Config) *BoardWidget {
	surface := render.NewSurface(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.BackgroundColor())
	b := &BoardWidget{
		engine: engine.New(surface,
			engine.WithColor(cfg.Brush.BrushColor()),
			engine.WithWidth(cfg.Brush.Width),
		),
		size:   fyne.NewSize(float32(cfg.Canvas.Width), float32(cfg.Canvas.Height)),
		status: widget.NewLabel("Ready"),
	}
	b.origin = func() fyne.Position {
		return fyne.CurrentApp().Driver().AbsolutePositionForObject(b)
	}

	b.image = canvas.NewImageFromImage(surface.Image())
	b.image.FillMode = canvas.ImageFillStretch
	b.image.ScaleMode = canvas.ImageScalePixels
	b.image.SetMinSize(b.size)

	b.engine.OnChange = func(engine.Change) {
		b.image.Refresh()
	}
	b.engine.OnHistory = func() {
		if b.OnHistory != nil {
			b.OnHistory()
		}
	}

	b.ExtendBaseWidget(b)
	return b
}

// Engine returns the engine behind the board.
func (b *BoardWidget) Engine() *engine.Engine {
	return b.engine
}

// Status is the label the board reports its last action on.
func (b *BoardWidget) Status() *widget.Label {
	return b.status
}

func (b *BoardWidget) SetStatus(text string) {
	b.status.SetText(text)
}

func (b *BoardWidget) SetColor(c color.Color) {
	b.engine.SetColor(c)
	b.brushChanged()
}

func (b *BoardWidget) SetStroke(w float64) {
	if err := b.engine.SetWidth(w); err != nil {
		log.Printf("[UI] %v", err)
		return
	}
	b.brushChanged()
}

// ApplyBrush switches to the brush from a reloaded configuration.
func (b *BoardWidget) ApplyBrush(brush config.BrushConfig) {
	b.engine.SetColor(brush.BrushColor())
	if err := b.engine.SetWidth(brush.Width); err != nil {
		log.Printf("[UI] %v", err)
	}
	b.brushChanged()
	b.SetStatus("Brush updated from config")
}

func (b *BoardWidget) brushChanged() {
	if b.OnBrush != nil {
		b.OnBrush(b.engine.Color(), b.engine.Width())
	}
}

func (b *BoardWidget) Undo() {
	if !b.engine.Undo() {
		b.SetStatus("Nothing to undo")
		return
	}
	b.SetStatus(fmt.Sprintf("%d strokes", len(b.engine.CommittedStrokes())))
}

func (b *BoardWidget) Redo() {
	if !b.engine.Redo() {
		b.SetStatus("Nothing to redo")
		return
	}
	b.SetStatus(fmt.Sprintf("%d strokes", len(b.engine.CommittedStrokes())))
}

func (b *BoardWidget) handle(ev input.Event, rect input.Rect) {
	if err := b.engine.Handle(ev, rect); err != nil {
		log.Printf("[UI] %s: %v", ev.Kind, err)
		b.SetStatus(err.Error())
	}
}

// rect is the board's bounding box in window coordinates, which is what
// touch contacts are reported in.
func (b *BoardWidget) rect() input.Rect {
	pos := b.origin()
	size := b.Size()
	return input.Rect{
		Left:   float64(pos.X),
		Top:    float64(pos.Y),
		Width:  float64(size.Width),
		Height: float64(size.Height),
	}
}

func mouseEvent(kind input.Kind, pos fyne.Position) input.Event {
	return input.Mouse(kind, float64(pos.X), float64(pos.Y))
}

func touchEvent(kind input.Kind, abs fyne.Position) input.Event {
	return input.Touch(kind, input.Contact{ClientX: float64(abs.X), ClientY: float64(abs.Y)})
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.handle(mouseEvent(input.MouseDown, e.Position), b.rect())
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.handle(input.Event{Kind: input.MouseUp}, b.rect())
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.touching {
		b.handle(touchEvent(input.TouchMove, e.AbsolutePosition), b.rect())
		return
	}
	b.handle(mouseEvent(input.MouseMove, e.Position), b.rect())
}

// DragEnd finishes a mouse capture whose button was released outside the
// board. The engine ignores it if MouseUp already did.
func (b *BoardWidget) DragEnd() {
	if b.touching {
		return
	}
	b.handle(input.Event{Kind: input.MouseUp}, b.rect())
}

func (b *BoardWidget) MouseOut() {
	b.handle(input.Event{Kind: input.MouseLeave}, b.rect())
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	b.touching = true
	b.handle(touchEvent(input.TouchStart, e.AbsolutePosition), b.rect())
}

func (b *BoardWidget) TouchUp(*mobile.TouchEvent) {
	b.touching = false
	b.handle(input.Touch(input.TouchEnd), b.rect())
}

func (b *BoardWidget) TouchCancel(*mobile.TouchEvent) {
	b.touching = false
	b.handle(input.Touch(input.TouchCancel), b.rect())
}

func (b *BoardWidget) MinSize() fyne.Size {
	return b.size
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: b}
}

type boardWidgetRenderer struct {
	board *BoardWidget
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.image}
}

// Layout pins the image to its pixel size so board coordinates and surface
// pixels stay one to one whatever size the board is given.
func (r *boardWidgetRenderer) Layout(fyne.Size) {
	r.board.image.Move(fyne.NewPos(0, 0))
	r.board.image.Resize(r.board.size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.board.size
}

func (r *boardWidgetRenderer) Refresh() {
	r.board.image.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
