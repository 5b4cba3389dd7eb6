// Package export writes a drawing out as a raster image, a PDF, or a stroke
// document that can be opened again.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"LocalSketch/internal/render"
	"LocalSketch/internal/state"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for file extensions with no matching format.
var ErrUnknownFormat = errors.New("export: unknown format")

// Format is an output file format.
type Format int

const (
	PNG Format = iota
	JPEG
	BMP
	TIFF
	PDF
	JSON
)

var formatNames = map[Format]string{
	PNG:  "png",
	JPEG: "jpeg",
	BMP:  "bmp",
	TIFF: "tiff",
	PDF:  "pdf",
	JSON: "json",
}

func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return "unknown"
}

// IsRaster reports whether the format stores the surface's pixels.
func (f Format) IsRaster() bool {
	return f == PNG || f == JPEG || f == BMP || f == TIFF
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".pdf":
		return PDF, nil
	case ".json":
		return JSON, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Extensions lists the file extensions FormatFromPath understands.
func Extensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff", ".pdf", ".json"}
}

// Image encodes img in one of the raster formats.
func Image(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 92})
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %s is not a raster format", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", f, err)
	}
	return nil
}

// Write exports a drawing in format f. Raster formats take the surface's
// pixels; PDF and documents replay the strokes themselves.
func Write(w io.Writer, f Format, surface *render.Surface, strokes []state.Stroke) error {
	switch {
	case f.IsRaster():
		return Image(w, surface.Image(), f)
	case f == PDF:
		return WritePDF(w, strokes, surface.Width(), surface.Height(), surface.Background())
	case f == JSON:
		return WriteDocument(w, NewDocument(strokes, surface.Width(), surface.Height(), surface.Background()))
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}
