package object

import (
	"image/color"

	"github.com/tomz197/asteroids3d/internal/depth"
	"github.com/tomz197/asteroids3d/internal/draw"
	"github.com/tomz197/asteroids3d/internal/random"
	"github.com/tomz197/asteroids3d/internal/vmath"
)

// Star depth band. Always farther than any asteroid.
const (
	StarMinDepth = 0.15
	StarMaxDepth = 0.75
)

const (
	starDrift    = 3.0 // Downward speed at depth 1
	starParallax = 0.3 // Fraction of the ship velocity a depth-1 star moves against
)

// Star is a background point drifting slowly downward with parallax against the ship.
type Star struct {
	Pos   vmath.Vec2
	Size  float64
	depth float64
	color color.NRGBA
}

// NewStar creates a star at pos with depth d. Near stars are sometimes larger.
func NewStar(rng *random.Source, pos vmath.Vec2, d float64) *Star {
	size := 1.0
	if d >= 0.5 && rng.Float64() > 0.7 {
		size = 2
	}
	return &Star{Pos: pos, Size: size, depth: d, color: depth.Color(d)}
}

// NewStarfield scatters n stars over the screen with random depths.
func NewStarfield(rng *random.Source, screen Screen, n int) []*Star {
	stars := make([]*Star, 0, n)
	for range n {
		pos := vmath.Vec2{
			X: float64(rng.IntRange(0, screen.Width)),
			Y: float64(rng.IntRange(0, screen.Height)),
		}
		stars = append(stars, NewStar(rng, pos, rng.Uniform(StarMinDepth, StarMaxDepth)))
	}
	return stars
}

// Depth returns the star's depth.
func (s *Star) Depth() float64 {
	return s.depth
}

// Color returns the depth color.
func (s *Star) Color() color.NRGBA {
	return s.color
}

// Update drifts the star and applies parallax against ctx.ShipVelocity.
// Stars leaving the top or bottom re-enter on the other side at a new column.
func (s *Star) Update(ctx UpdateContext) bool {
	dt := ctx.DT()
	w, h := ctx.Screen.Size()

	s.Pos.Y += starDrift * s.depth * dt
	factor := s.depth * starParallax
	s.Pos.X -= ctx.ShipVelocity.X * factor * dt
	s.Pos.Y -= ctx.ShipVelocity.Y * factor * dt

	if s.Pos.Y > h {
		s.Pos.Y = 0
		s.Pos.X = float64(ctx.Rand.IntRange(0, ctx.Screen.Width))
	} else if s.Pos.Y < 0 {
		s.Pos.Y = h
		s.Pos.X = float64(ctx.Rand.IntRange(0, ctx.Screen.Width))
	}

	if s.Pos.X > w {
		s.Pos.X = 0
	} else if s.Pos.X < 0 {
		s.Pos.X = w
	}
	return false
}

// Draw renders the star as a dot.
func (s *Star) Draw(r draw.Renderer) {
	r.Circle(s.Pos, s.Size, s.color)
}
