package render

import (
	"image"
	"image/color"
	"image/draw"

	"LocalSketch/internal/state"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// miterLimit only matters for miter joins; strokes use round joins but
// rasterx still wants a value.
const miterLimit = fixed.Int26_6(4 << 6)

// Renderer draws strokes onto a Surface. It keeps no state between calls,
// so replaying the same strokes always yields the same pixels.
type Renderer struct{}

// New returns a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Clear resets the whole surface to its background color.
func (r *Renderer) Clear(s *Surface) {
	fill(s.img, s.background)
}

// DrawStroke traces the stroke's points in order with its own color and
// width, using round caps and joins. A stroke whose points all coincide is
// drawn as a disc of diameter Width so it never vanishes.
func (r *Renderer) DrawStroke(s *Surface, st state.Stroke) {
	if st.Len() == 0 {
		return
	}
	pts := st.Path()
	if len(pts) == 1 {
		r.dot(s, pts[0], st.Color(), st.Width())
		return
	}
	r.polyline(s, pts, st.Color(), st.Width())
}

// Redraw rebuilds the surface from scratch: clear, then every stroke in order.
func (r *Renderer) Redraw(s *Surface, strokes []state.Stroke) {
	r.Clear(s)
	for _, st := range strokes {
		r.DrawStroke(s, st)
	}
}

func (r *Renderer) polyline(s *Surface, pts []state.Point, c color.NRGBA, width float64) {
	w, h := s.Width(), s.Height()
	scanner := rasterx.NewScannerGV(w, h, s.img, s.img.Bounds())
	stroker := rasterx.NewStroker(w, h, scanner)
	stroker.SetStroke(fixed.Int26_6(width*64), miterLimit,
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
	stroker.SetColor(c)

	stroker.Start(rasterx.ToFixedP(pts[0].X, pts[0].Y))
	for _, p := range pts[1:] {
		stroker.Line(rasterx.ToFixedP(p.X, p.Y))
	}
	stroker.Stop(false)
	stroker.Draw()
}

func (r *Renderer) dot(s *Surface, p state.Point, c color.NRGBA, width float64) {
	w, h := s.Width(), s.Height()
	scanner := rasterx.NewScannerGV(w, h, s.img, s.img.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(c)
	rasterx.AddCircle(p.X, p.Y, width/2, filler)
	filler.Draw()
}

func fill(img *image.RGBA, c color.NRGBA) {
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}
