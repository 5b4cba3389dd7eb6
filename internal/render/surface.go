// Package render rasterizes strokes onto a fixed-size RGBA surface.
package render

import (
	"image"
	"image/color"
)

// Surface is the raster target strokes are drawn onto. Its size is fixed at
// creation; the host owns it and displays Image().
type Surface struct {
	img        *image.RGBA
	background color.NRGBA
}

// NewSurface allocates a width x height surface filled with background.
func NewSurface(width, height int, background color.Color) *Surface {
	s := &Surface{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: color.NRGBAModel.Convert(background).(color.NRGBA),
	}
	fill(s.img, s.background)
	return s
}

// Image returns the backing image. Callers may read and display it but
// should only write to it through a Renderer.
func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) Width() int              { return s.img.Rect.Dx() }
func (s *Surface) Height() int             { return s.img.Rect.Dy() }
func (s *Surface) Bounds() image.Rectangle { return s.img.Rect }
func (s *Surface) Background() color.NRGBA { return s.background }

// Snapshot returns a copy of the current pixels.
func (s *Surface) Snapshot() *image.RGBA {
	cp := image.NewRGBA(s.img.Rect)
	copy(cp.Pix, s.img.Pix)
	return cp
}
