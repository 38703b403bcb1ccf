// Package draw defines the renderer contract used by the game core and the
// terminal implementation of it.
package draw

import (
	"image/color"

	"github.com/tomz197/asteroids3d/internal/vmath"
)

// Point represents a 2D coordinate in logical screen space.
type Point = vmath.Vec2

// Renderer accepts the draw calls the game core issues each frame.
// Callers issue entities in ascending depth order so distant objects land first.
type Renderer interface {
	// Polygon draws a closed polygon. A width <= 0 fills it.
	Polygon(points []Point, clr color.NRGBA, width float64)
	// Line draws a segment from a to b.
	Line(a, b Point, clr color.NRGBA, width float64)
	// Circle draws a filled circle. Alpha is honored.
	Circle(center Point, radius float64, clr color.NRGBA)
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Recorder is a Renderer that only counts calls. Useful for tests and for
// measuring how much a frame draws.
type Recorder struct {
	Polygons int
	Lines    int
	Circles  int
}

func (r *Recorder) Polygon(points []Point, _ color.NRGBA, _ float64) {
	if len(points) >= 3 {
		r.Polygons++
	}
}

func (r *Recorder) Line(_, _ Point, _ color.NRGBA, _ float64) {
	r.Lines++
}

func (r *Recorder) Circle(_ Point, _ float64, _ color.NRGBA) {
	r.Circles++
}

// Reset zeroes all counters.
func (r *Recorder) Reset() {
	*r = Recorder{}
}

var _ Renderer = (*Recorder)(nil)
