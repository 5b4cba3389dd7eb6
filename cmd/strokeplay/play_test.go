package main

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"LocalSketch/internal/export"
	"LocalSketch/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDrawing(t *testing.T) string {
	t.Helper()
	red, err := state.NewStroke("red", []state.Point{{X: 2, Y: 2}, {X: 18, Y: 2}}, color.NRGBA{R: 255, A: 255}, 3)
	require.NoError(t, err)
	blue, err := state.NewStroke("blue", []state.Point{{X: 2, Y: 12}, {X: 18, Y: 12}}, color.NRGBA{B: 255, A: 255}, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	doc := export.NewDocument([]state.Stroke{red, blue}, 20, 16, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	require.NoError(t, export.WriteDocument(&buf, doc))

	path := filepath.Join(t.TempDir(), "drawing.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestPlayWritesPNG(t *testing.T) {
	in := writeDrawing(t)
	out := filepath.Join(t.TempDir(), "paint.png")

	n, err := play(playOptions{In: in, Out: out, Strokes: -1})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())

	red := color.NRGBAModel.Convert(img.At(10, 2)).(color.NRGBA)
	blue := color.NRGBAModel.Convert(img.At(10, 12)).(color.NRGBA)
	assert.Greater(t, red.R, uint8(200))
	assert.Less(t, red.B, uint8(60))
	assert.Greater(t, blue.B, uint8(200))
	assert.Less(t, blue.R, uint8(60))
}

func TestPlayPrefix(t *testing.T) {
	in := writeDrawing(t)
	out := filepath.Join(t.TempDir(), "first.png")

	n, err := play(playOptions{In: in, Out: out, Strokes: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	// The second stroke is not drawn.
	c := color.NRGBAModel.Convert(img.At(10, 12)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, c)
}

func TestPlayOverrides(t *testing.T) {
	in := writeDrawing(t)
	var buf bytes.Buffer

	f, err := os.Open(in)
	require.NoError(t, err)
	defer f.Close()

	n, err := replay(f, &buf, export.JSON, playOptions{Strokes: -1, Width: 40, Background: "#000000"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	doc, err := export.ReadDocument(&buf)
	require.NoError(t, err)
	assert.Equal(t, 40, doc.Width)
	assert.Equal(t, 16, doc.Height)
	assert.Equal(t, "#000000", doc.Background)
	assert.Len(t, doc.Strokes, 2)
}

func TestPlayErrors(t *testing.T) {
	in := writeDrawing(t)

	_, err := play(playOptions{In: in, Out: filepath.Join(t.TempDir(), "paint.gif")})
	assert.ErrorIs(t, err, export.ErrUnknownFormat)

	_, err = play(playOptions{In: filepath.Join(t.TempDir(), "missing.json"), Out: filepath.Join(t.TempDir(), "x.png")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = play(playOptions{In: in, Out: filepath.Join(t.TempDir(), "x.png"), Background: "nope"})
	assert.Error(t, err)
}

func TestPlayKeepsInputWhenOutputIsInput(t *testing.T) {
	in := writeDrawing(t)
	before, err := os.ReadFile(in)
	require.NoError(t, err)

	_, err = play(playOptions{In: in, Out: in, Strokes: -1})
	require.Error(t, err)
	_, err = play(playOptions{In: in, Out: filepath.Dir(in) + "/./drawing.json", Strokes: -1})
	require.Error(t, err)

	after, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestPlayFailureLeavesNoOutput(t *testing.T) {
	in := writeDrawing(t)
	dir := t.TempDir()

	out := filepath.Join(dir, "paint.png")
	_, err := play(playOptions{In: in, Out: out, Strokes: -1, Background: "nope"})
	require.Error(t, err)
	assert.NoFileExists(t, out)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0o644))
	_, err = play(playOptions{In: broken, Out: out, Strokes: -1})
	require.Error(t, err)
	assert.NoFileExists(t, out)
}
