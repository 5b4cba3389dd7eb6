package ui

import (
	"image/color"

	"LocalSketch/internal/config"
	"LocalSketch/internal/export"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the brush and history controls for a board.
type Toolbar struct {
	board  *BoardWidget
	window fyne.Window
	cfg    config.Config

	// lastColor is restored when switching back from the eraser.
	lastColor color.Color

	slider *widget.Slider
	undo   *widget.Button
	redo   *widget.Button

	content fyne.CanvasObject
}

// NewToolbar builds the toolbar and subscribes it to the board's history
// and brush changes.
func NewToolbar(board *BoardWidget, cfg config.Config, window fyne.Window) *Toolbar {
	t := &Toolbar{
		board:     board,
		window:    window,
		cfg:       cfg,
		lastColor: cfg.Brush.BrushColor(),
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), t.pen),
		widget.NewToolbarAction(theme.DeleteIcon(), t.eraser),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FolderOpenIcon(), t.showOpen),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), t.showSave),
	)

	// --- Color Palette ---
	colorBox := container.NewHBox()
	for _, c := range cfg.Brush.Colors() {
		colorBox.Add(newColorSwatch(c, t.chooseColor))
	}
	colorBox.Add(widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), t.showColorPicker))

	// --- Stroke Width Slider ---
	t.slider = widget.NewSlider(cfg.Brush.MinWidth, cfg.Brush.MaxWidth)
	t.slider.Step = 1
	t.slider.SetValue(cfg.Brush.Width)
	t.slider.OnChanged = func(val float64) {
		board.SetStroke(val)
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.slider)

	// --- History ---
	t.undo = widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), board.Undo)
	t.redo = widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), board.Redo)
	board.OnHistory = t.syncHistory
	board.OnBrush = t.syncBrush
	t.syncHistory()

	// --- Assemble everything ---
	t.content = container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		t.undo,
		t.redo,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
	)
	return t
}

// Content returns the toolbar's canvas object.
func (t *Toolbar) Content() fyne.CanvasObject {
	return t.content
}

// ApplyBrush switches to a reloaded brush configuration. The pen tool and
// the width slider pick it up too.
func (t *Toolbar) ApplyBrush(brush config.BrushConfig) {
	t.cfg.Brush = brush
	t.lastColor = brush.BrushColor()
	t.slider.Min = brush.MinWidth
	t.slider.Max = brush.MaxWidth
	t.board.ApplyBrush(brush)
	t.slider.Refresh()
}

func (t *Toolbar) chooseColor(c color.Color) {
	t.lastColor = c
	t.board.SetColor(c)
}

func (t *Toolbar) showColorPicker() {
	picker := dialog.NewColorPicker("Brush Color", "Pick any color for the next stroke", t.chooseColor, t.window)
	picker.Advanced = true
	picker.SetColor(t.lastColor)
	picker.Show()
}

func (t *Toolbar) pen() {
	t.board.SetColor(t.lastColor)
	if t.board.Engine().Width() > t.cfg.Brush.MaxWidth {
		t.board.SetStroke(t.cfg.Brush.Width)
	}
}

// eraser paints with the background color at the widest brush. Erasing is
// an ordinary stroke, so it can be undone like any other.
func (t *Toolbar) eraser() {
	t.board.SetColor(t.cfg.Canvas.BackgroundColor())
	t.board.SetStroke(t.cfg.Brush.MaxWidth * 2)
}

// syncHistory disables undo and redo when there is nothing to act on.
func (t *Toolbar) syncHistory() {
	setEnabled(t.undo, t.board.Engine().CanUndo())
	setEnabled(t.redo, t.board.Engine().CanRedo())
}

func (t *Toolbar) syncBrush(_ color.Color, width float64) {
	if width >= t.slider.Min && width <= t.slider.Max && width != t.slider.Value {
		// SetValue would call OnChanged again.
		t.slider.Value = width
		t.slider.Refresh()
	}
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}

func (t *Toolbar) showSave() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, t.window)
			return
		}
		if writer == nil {
			return
		}
		t.board.SaveToFile(writer)
	}, t.window)
	d.SetFileName(t.cfg.Export.DefaultName)
	d.SetFilter(storage.NewExtensionFileFilter(export.Extensions()))
	d.Show()
}

func (t *Toolbar) showOpen() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, t.window)
			return
		}
		if reader == nil {
			return
		}
		t.board.LoadFromFile(reader)
	}, t.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}
