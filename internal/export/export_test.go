package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"LocalSketch/internal/render"
	"LocalSketch/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func sampleStrokes(t *testing.T) []state.Stroke {
	t.Helper()
	a, err := state.NewStroke("a", []state.Point{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}}, color.NRGBA{R: 255, A: 255}, 3)
	require.NoError(t, err)
	b, err := state.NewStroke("b", []state.Point{{X: 5, Y: 25}}, color.NRGBA{B: 255, A: 0x80}, 6)
	require.NoError(t, err)
	return []state.Stroke{a, b}
}

func drawn(t *testing.T) (*render.Surface, []state.Stroke) {
	t.Helper()
	strokes := sampleStrokes(t)
	surf := render.NewSurface(32, 32, white)
	render.New().Redraw(surf, strokes)
	return surf, strokes
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"paint.png":    PNG,
		"PHOTO.JPG":    JPEG,
		"a/b/c.jpeg":   JPEG,
		"x.bmp":        BMP,
		"x.tif":        TIFF,
		"x.tiff":       TIFF,
		"board.pdf":    PDF,
		"drawing.json": JSON,
	}
	for path, want := range cases {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := FormatFromPath("notes.txt")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Len(t, Extensions(), 8)
}

func TestImageFormatsDecode(t *testing.T) {
	surf, _ := drawn(t)
	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		PNG:  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		BMP:  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
		TIFF: func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) },
	}
	for f, decode := range decoders {
		var buf bytes.Buffer
		require.NoError(t, Image(&buf, surf.Image(), f), f.String())
		img, err := decode(&buf)
		require.NoError(t, err, f.String())
		assert.Equal(t, surf.Bounds(), img.Bounds(), f.String())

		r, g, b, _ := img.At(15, 10).RGBA()
		assert.Greater(t, r>>8, uint32(200), f.String())
		assert.Less(t, g>>8, uint32(100), f.String())
		assert.Less(t, b>>8, uint32(100), f.String())
	}
}

func TestImageRejectsVectorFormats(t *testing.T) {
	surf, _ := drawn(t)
	assert.ErrorIs(t, Image(&bytes.Buffer{}, surf.Image(), PDF), ErrUnknownFormat)
}

func TestWritePDF(t *testing.T) {
	surf, strokes := drawn(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, PDF, surf, strokes))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWriteJPEG(t *testing.T) {
	surf, strokes := drawn(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JPEG, surf, strokes))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xff, 0xd8}))
}

func TestDocumentRoundTrip(t *testing.T) {
	surf, strokes := drawn(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JSON, surf, strokes))

	doc, err := ReadDocument(&buf)
	require.NoError(t, err)
	assert.Equal(t, DocumentVersion, doc.Version)
	assert.Equal(t, 32, doc.Width)
	assert.Equal(t, white, doc.BackgroundColor())

	back, err := doc.Restore()
	require.NoError(t, err)
	require.Len(t, back, len(strokes))
	for i := range strokes {
		assert.True(t, strokes[i].Equal(back[i]), "stroke %d", i)
		assert.True(t, strokes[i].CreatedAt().Equal(back[i].CreatedAt()), "stroke %d created", i)
	}

	// Replaying the document reproduces the surface exactly.
	replay := render.NewSurface(doc.Width, doc.Height, doc.BackgroundColor())
	render.New().Redraw(replay, back)
	assert.Equal(t, surf.Image().Pix, replay.Image().Pix)
}

func TestReadDocumentErrors(t *testing.T) {
	_, err := ReadDocument(strings.NewReader("{"))
	assert.Error(t, err)

	_, err = ReadDocument(strings.NewReader(`{"version": 99, "strokes": []}`))
	assert.ErrorIs(t, err, ErrVersion)

	doc, err := ReadDocument(strings.NewReader(`{"version": 1, "strokes": [{"color": "#000", "width": 1, "points": []}]}`))
	require.NoError(t, err)
	_, err = doc.Restore()
	assert.ErrorIs(t, err, state.ErrEmptyStroke)

	doc, err = ReadDocument(strings.NewReader(`{"version": 1, "strokes": [{"color": "blue", "width": 1, "points": [{"x": 1, "y": 2}]}]}`))
	require.NoError(t, err)
	_, err = doc.Restore()
	assert.Error(t, err)

	doc, err = ReadDocument(strings.NewReader(`{"version": 1, "strokes": [{"color": "#00f", "width": 0, "points": [{"x": 1, "y": 2}]}]}`))
	require.NoError(t, err)
	_, err = doc.Restore()
	assert.ErrorIs(t, err, state.ErrInvalidWidth)
}

func TestWriteUnknownFormat(t *testing.T) {
	surf, strokes := drawn(t)
	assert.ErrorIs(t, Write(&bytes.Buffer{}, Format(42), surf, strokes), ErrUnknownFormat)
	assert.Equal(t, "unknown", Format(42).String())
}
