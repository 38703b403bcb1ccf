package object

import (
	"image/color"

	"github.com/tomz197/asteroids3d/internal/draw"
	"github.com/tomz197/asteroids3d/internal/physics"
	"github.com/tomz197/asteroids3d/internal/vmath"
)

// BulletRadius is the draw and collision radius of a bullet.
const BulletRadius = 2.0

// BulletLifetime is how long bullets last before disappearing.
const BulletLifetime = 1.5

var bulletColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Bullet is a projectile fired by the ship. Bullets never wrap: leaving the
// screen kills them.
type Bullet struct {
	Pos      vmath.Vec2
	Vel      vmath.Vec2
	Angle    float64 // Degrees, informational
	Lifetime float64 // Seconds remaining
	Alive    bool
}

// NewBullet creates a bullet from the ship's firing description.
func NewBullet(spec BulletSpec) *Bullet {
	return &Bullet{
		Pos:      spec.Pos,
		Vel:      spec.Vel,
		Angle:    spec.Angle,
		Lifetime: BulletLifetime,
		Alive:    true,
	}
}

// Center implements physics.Circle.
func (b *Bullet) Center() vmath.Vec2 {
	return b.Pos
}

// CollisionRadius implements physics.Circle.
func (b *Bullet) CollisionRadius() float64 {
	return BulletRadius
}

// IsAlive reports whether the bullet is still in flight.
func (b *Bullet) IsAlive() bool {
	return b.Alive
}

// Update moves the bullet and kills it once its lifetime runs out or it leaves the screen.
func (b *Bullet) Update(ctx UpdateContext) bool {
	if !b.Alive {
		return true
	}
	dt := ctx.DT()

	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.Lifetime -= dt

	w, h := ctx.Screen.Size()
	if b.Lifetime <= 0 || !physics.InBounds(b.Pos, w, h) {
		b.Alive = false
	}
	return !b.Alive
}

// Draw renders the bullet as a small disk.
func (b *Bullet) Draw(r draw.Renderer) {
	if !b.Alive {
		return
	}
	r.Circle(b.Pos, BulletRadius, bulletColor)
}
