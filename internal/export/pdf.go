package export

import (
	"fmt"
	"image/color"
	"io"

	"LocalSketch/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF replays strokes as vector paths on a single page the size of the
// surface, one PDF point per pixel.
func WritePDF(w io.Writer, strokes []state.Stroke, width, height int, background color.NRGBA) error {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	p.SetFillColor(int(background.R), int(background.G), int(background.B))
	p.Rect(0, 0, float64(width), float64(height), "F")

	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	for _, st := range strokes {
		drawStroke(p, st)
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

func drawStroke(p *gofpdf.Fpdf, st state.Stroke) {
	c := st.Color()
	p.SetAlpha(float64(c.A)/255, "Normal")
	defer p.SetAlpha(1, "Normal")

	pts := st.Path()
	if len(pts) == 1 {
		p.SetFillColor(int(c.R), int(c.G), int(c.B))
		p.Circle(pts[0].X, pts[0].Y, st.Width()/2, "F")
		return
	}

	p.SetDrawColor(int(c.R), int(c.G), int(c.B))
	p.SetLineWidth(st.Width())
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.DrawPath("D")
}
