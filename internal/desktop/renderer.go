package desktop

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/asteroids3d/internal/draw"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is an internal sub image of whiteImage.
	// Use whiteSubImage at DrawTriangles instead of whiteImage in order to avoid bleeding edges.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Renderer draws onto an ebiten image with antialiased vector strokes.
type Renderer struct {
	Target *ebiten.Image

	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

// Line strokes a segment. Widths below one pixel are drawn as one pixel.
func (r *Renderer) Line(a, b draw.Point, clr color.NRGBA, width float64) {
	vector.StrokeLine(r.Target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
		float32(max(width, 1)), clr, true)
}

// Polygon fills the closed shape when width <= 0, otherwise strokes its edges.
func (r *Renderer) Polygon(points []draw.Point, clr color.NRGBA, width float64) {
	if len(points) < 2 {
		return
	}
	if width > 0 {
		for i := range points {
			r.Line(points[i], points[(i+1)%len(points)], clr, width)
		}
		return
	}
	if len(points) < 3 {
		return
	}

	r.path = vector.Path{}
	r.path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		r.path.LineTo(float32(p.X), float32(p.Y))
	}
	r.path.Close()

	r.vertices, r.indices = r.path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	cr, cg, cb, ca := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = cr
		r.vertices[i].ColorG = cg
		r.vertices[i].ColorB = cb
		r.vertices[i].ColorA = ca
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	r.Target.DrawTriangles(r.vertices, r.indices, whiteSubImage, op)
}

// Circle fills a disc.
func (r *Renderer) Circle(center draw.Point, radius float64, clr color.NRGBA) {
	vector.DrawFilledCircle(r.Target, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

var _ draw.Renderer = (*Renderer)(nil)
