package ui

import (
	"fmt"
	"io"
	"log"

	"LocalSketch/internal/export"
	"LocalSketch/internal/state"

	"fyne.io/fyne/v2"
)

// SaveTo exports the drawing to w in the format matching name's extension.
func (b *BoardWidget) SaveTo(w io.Writer, name string) error {
	f, err := export.FormatFromPath(name)
	if err != nil {
		return err
	}
	strokes := b.engine.CommittedStrokes()
	if err := export.Write(w, f, b.engine.Surface(), strokes); err != nil {
		return err
	}
	log.Printf("[EXPORT] Wrote %d strokes to %s as %s", len(strokes), name, f)
	return nil
}

// LoadFrom replaces the drawing with the strokes of a saved document.
func (b *BoardWidget) LoadFrom(r io.Reader) (int, error) {
	doc, err := export.ReadDocument(r)
	if err != nil {
		return 0, err
	}
	strokes, err := doc.Restore()
	if err != nil {
		return 0, err
	}
	surf := b.engine.Surface()
	if n := offBoard(strokes, surf.Width(), surf.Height()); n > 0 {
		ext := state.Extent(strokes)
		log.Printf("[EXPORT] %d of %d strokes lie outside the %dx%d board (drawing spans %.0fx%.0f)",
			n, len(strokes), surf.Width(), surf.Height(), ext.X+ext.Width, ext.Y+ext.Height)
	}
	if err := b.engine.Load(strokes); err != nil {
		return 0, err
	}
	return len(strokes), nil
}

// offBoard counts the strokes that leave no mark on a width x height board.
func offBoard(strokes []state.Stroke, width, height int) int {
	board := state.Rect{Width: float64(width), Height: float64(height)}
	n := 0
	for _, s := range strokes {
		if !s.Bounds().Overlaps(board) {
			n++
		}
	}
	return n
}

func (b *BoardWidget) SaveToFile(writer fyne.URIWriteCloser) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("Error closing writer: %v", err)
		}
	}()

	name := writer.URI().Name()
	if err := b.SaveTo(writer, name); err != nil {
		log.Printf("SaveToFile: %v", err)
		b.SetStatus("Error saving file")
		return
	}
	b.SetStatus("Saved " + name)
}

func (b *BoardWidget) LoadFromFile(reader fyne.URIReadCloser) {
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("Error closing reader: %v", err)
		}
	}()

	n, err := b.LoadFrom(reader)
	if err != nil {
		log.Printf("LoadFromFile: %v", err)
		b.SetStatus("Error loading file")
		return
	}
	b.SetStatus(fmt.Sprintf("Loaded %d strokes", n))
}
