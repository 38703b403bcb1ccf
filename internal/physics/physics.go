// Package physics provides collision detection, distance and boundary utilities.
package physics

import (
	"math"

	"github.com/tomz197/asteroids3d/internal/vmath"
)

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap. Circles that only touch
// (distance equal to the sum of radii) do not overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// Collides reports whether the circle (a, ra) overlaps the circle (b, rb).
func Collides(a vmath.Vec2, ra float64, b vmath.Vec2, rb float64) bool {
	return CirclesOverlap(a.X, a.Y, ra, b.X, b.Y, rb)
}

// Circle is anything with a collision circle.
type Circle interface {
	Center() vmath.Vec2
	CollisionRadius() float64
}

// Hit reports whether two collision circles overlap.
func Hit(a, b Circle) bool {
	return Collides(a.Center(), a.CollisionRadius(), b.Center(), b.CollisionRadius())
}

// Wrap moves p to the opposite side of a w×h area once it travels more than
// margin past an edge: x > w+margin becomes -margin and x < -margin becomes
// w+margin, likewise for y.
func Wrap(p *vmath.Vec2, w, h, margin float64) {
	if p.X > w+margin {
		p.X = -margin
	} else if p.X < -margin {
		p.X = w + margin
	}
	if p.Y > h+margin {
		p.Y = -margin
	} else if p.Y < -margin {
		p.Y = h + margin
	}
}

// InBounds reports whether p lies inside [0,w]×[0,h], edges included.
func InBounds(p vmath.Vec2, w, h float64) bool {
	return p.X >= 0 && p.X <= w && p.Y >= 0 && p.Y <= h
}
