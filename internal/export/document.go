package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"LocalSketch/internal/state"
)

// DocumentVersion is the version written by WriteDocument.
const DocumentVersion = 1

// ErrVersion is returned for documents written by a newer version.
var ErrVersion = errors.New("export: unsupported document version")

// Document is the saved form of a drawing: the committed strokes in order,
// plus the surface they were drawn on.
type Document struct {
	Version    int            `json:"version"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Background string         `json:"background,omitempty"`
	Strokes    []StrokeRecord `json:"strokes"`
}

// StrokeRecord is one stroke: its color, width and points, plus when it
// was drawn.
type StrokeRecord struct {
	ID      string        `json:"id,omitempty"`
	Created time.Time     `json:"created,omitzero"`
	Color   string        `json:"color"`
	Width   float64       `json:"width"`
	Points  []state.Point `json:"points"`
}

// NewDocument captures strokes drawn on a width x height surface.
func NewDocument(strokes []state.Stroke, width, height int, background color.NRGBA) Document {
	doc := Document{
		Version:    DocumentVersion,
		Width:      width,
		Height:     height,
		Background: state.FormatColor(background),
		Strokes:    make([]StrokeRecord, 0, len(strokes)),
	}
	for _, s := range strokes {
		doc.Strokes = append(doc.Strokes, StrokeRecord{
			ID:      s.ID(),
			Created: s.CreatedAt().UTC(),
			Color:   state.FormatColor(s.Color()),
			Width:   s.Width(),
			Points:  s.Points(),
		})
	}
	return doc
}

// WriteDocument writes doc as indented JSON.
func WriteDocument(w io.Writer, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// ReadDocument parses a document written by WriteDocument.
func ReadDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse document: %w", err)
	}
	if doc.Version > DocumentVersion {
		return Document{}, fmt.Errorf("%w: %d", ErrVersion, doc.Version)
	}
	return doc, nil
}

// Restore rebuilds the frozen strokes of the document in order.
func (d Document) Restore() ([]state.Stroke, error) {
	out := make([]state.Stroke, 0, len(d.Strokes))
	for i, rec := range d.Strokes {
		c, err := state.ParseColor(rec.Color)
		if err != nil {
			return nil, fmt.Errorf("stroke %d: %w", i, err)
		}
		s, err := state.NewStrokeAt(rec.ID, rec.Points, c, rec.Width, rec.Created)
		if err != nil {
			return nil, fmt.Errorf("stroke %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// BackgroundColor returns the document's background, white if unset.
func (d Document) BackgroundColor() color.NRGBA {
	c, err := state.ParseColor(d.Background)
	if err != nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return c
}
