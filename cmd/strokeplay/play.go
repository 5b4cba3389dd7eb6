package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"LocalSketch/internal/export"
	"LocalSketch/internal/render"
	"LocalSketch/internal/state"
)

type playOptions struct {
	In, Out       string
	Strokes       int // negative replays everything
	Width, Height int // zero keeps the document's size
	Background    string
}

// play renders the document at opts.In into opts.Out and returns how many
// strokes were drawn. The output file is only created once the drawing has
// been rendered, so a failed replay leaves nothing behind.
func play(opts playOptions) (int, error) {
	f, err := export.FormatFromPath(opts.Out)
	if err != nil {
		return 0, err
	}
	if samePath(opts.In, opts.Out) {
		return 0, fmt.Errorf("output %s would overwrite the input drawing", opts.Out)
	}

	in, err := os.Open(opts.In)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	var buf bytes.Buffer
	n, err := replay(in, &buf, f, opts)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(opts.Out, buf.Bytes(), 0o644); err != nil {
		return 0, err
	}
	return n, nil
}

func samePath(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

func replay(r io.Reader, w io.Writer, f export.Format, opts playOptions) (int, error) {
	doc, err := export.ReadDocument(r)
	if err != nil {
		return 0, err
	}
	strokes, err := doc.Restore()
	if err != nil {
		return 0, err
	}
	if opts.Strokes >= 0 && opts.Strokes < len(strokes) {
		strokes = strokes[:opts.Strokes]
	}

	width, height := doc.Width, doc.Height
	if opts.Width > 0 {
		width = opts.Width
	}
	if opts.Height > 0 {
		height = opts.Height
	}
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	bg := doc.BackgroundColor()
	if opts.Background != "" {
		bg, err = state.ParseColor(opts.Background)
		if err != nil {
			return 0, err
		}
	}

	surface := render.NewSurface(width, height, bg)
	render.New().Redraw(surface, strokes)
	if err := export.Write(w, f, surface, strokes); err != nil {
		return 0, err
	}
	return len(strokes), nil
}
