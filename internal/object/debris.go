package object

import (
	"image/color"

	"github.com/tomz197/asteroids3d/internal/depth"
	"github.com/tomz197/asteroids3d/internal/draw"
	"github.com/tomz197/asteroids3d/internal/random"
	"github.com/tomz197/asteroids3d/internal/vmath"
)

const (
	debrisLifetime = 1.0
	debrisDrag     = 0.97
	debrisSpin     = 5.0 // Max degrees per second
)

var debrisColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// ShipDebris is one edge of the destroyed ship tumbling away.
type ShipDebris struct {
	Pos      vmath.Vec2
	Vel      vmath.Vec2
	A, B     vmath.Vec2 // Segment endpoints, local
	Angle    float64    // Degrees
	Spin     float64    // Degrees per second
	Lifetime float64
}

// NewShipExplosion breaks the ship into one piece of debris per triangle edge.
func NewShipExplosion(rng *random.Source, ship *Ship) []*ShipDebris {
	edges := ship.Edges()
	pieces := make([]*ShipDebris, 0, len(edges))
	for _, e := range edges {
		pieces = append(pieces, &ShipDebris{
			Pos:      ship.Pos,
			Vel:      vmath.FromAngle(rng.Angle(), rng.Uniform(80, 150)),
			A:        e[0],
			B:        e[1],
			Angle:    ship.Angle,
			Spin:     rng.Uniform(-debrisSpin, debrisSpin),
			Lifetime: debrisLifetime,
		})
	}
	return pieces
}

// Alpha returns the remaining fraction of the lifetime.
func (d *ShipDebris) Alpha() float64 {
	return d.Lifetime / debrisLifetime
}

// IsAlive reports whether the debris is still visible.
func (d *ShipDebris) IsAlive() bool {
	return d.Lifetime > 0
}

// Segment returns the rotated edge in world coordinates.
func (d *ShipDebris) Segment() (a, b vmath.Vec2) {
	rad := vmath.Radians(d.Angle)
	return d.A.Rotate(rad).Add(d.Pos), d.B.Rotate(rad).Add(d.Pos)
}

func (d *ShipDebris) Update(ctx UpdateContext) bool {
	dt := ctx.DT()

	d.Pos = d.Pos.Add(d.Vel.Scale(dt))
	d.Angle += d.Spin * dt
	d.Vel = d.Vel.Scale(debrisDrag)

	d.Lifetime -= dt
	return d.Lifetime <= 0
}

func (d *ShipDebris) Draw(r draw.Renderer) {
	if !d.IsAlive() {
		return
	}
	a, b := d.Segment()
	r.Line(a, b, depth.Fade(debrisColor, d.Alpha()), 2)
}
