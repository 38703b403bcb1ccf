package object

import (
	"image/color"

	"github.com/tomz197/asteroids3d/internal/draw"
	"github.com/tomz197/asteroids3d/internal/physics"
	"github.com/tomz197/asteroids3d/internal/vmath"
)

// Ship tuning.
const (
	ShipThrust          = 200.0 // Acceleration in units per second²
	ShipTurnRate        = 180.0 // Degrees per second
	ShipFriction        = 0.98  // Velocity factor applied once per update call
	ShipMaxSpeed        = 300.0
	ShipCollisionRadius = 12.0
	ShipFireCooldown    = 0.25 // Seconds between shots
	ShipMuzzleSpeed     = 400.0
	shipSize            = 15.0
)

var (
	shipColor         = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	flameFillColor    = color.NRGBA{R: 255, G: 150, A: 255}
	flameOutlineColor = color.NRGBA{R: 255, G: 255, A: 255}
)

// shipShape is the local triangle: nose first, then the two base corners.
var shipShape = [3]vmath.Vec2{
	{X: 0, Y: -shipSize},
	{X: -shipSize / 2, Y: shipSize / 2},
	{X: shipSize / 2, Y: shipSize / 2},
}

// BulletSpec describes a bullet the ship just fired.
type BulletSpec struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Angle float64 // Degrees
}

// Ship is the player-controlled spaceship.
// Angle is in degrees, 0 points up and values grow clockwise on screen.
type Ship struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Angle float64
	Alive bool

	cooldown float64 // Seconds until the next shot is allowed
}

// NewShip creates a ship at rest at the given position, pointing up.
func NewShip(pos vmath.Vec2) *Ship {
	return &Ship{Pos: pos, Alive: true}
}

// Reset puts the ship back at pos with zero velocity, pointing up and ready to fire.
func (s *Ship) Reset(pos vmath.Vec2) {
	s.Pos = pos
	s.Vel = vmath.Vec2{}
	s.Angle = 0
	s.Alive = true
	s.cooldown = 0
}

// Rotate turns the ship. direction is -1 for left and +1 for right.
func (s *Ship) Rotate(direction, dt float64) {
	s.Angle = vmath.WrapDegrees(s.Angle + ShipTurnRate*direction*dt)
}

// heading returns the unit vector the nose points along.
func (s *Ship) heading() vmath.Vec2 {
	return vmath.FromAngle(vmath.Radians(s.Angle-90), 1)
}

// Thrust accelerates along the heading, capping speed at ShipMaxSpeed.
func (s *Ship) Thrust(dt float64) {
	s.Vel = s.Vel.Add(s.heading().Scale(ShipThrust * dt))
	if s.Vel.Len() > ShipMaxSpeed {
		s.Vel = s.Vel.ScaleToLength(ShipMaxSpeed)
	}
}

// CanFire reports whether the cooldown has elapsed.
func (s *Ship) CanFire() bool {
	return s.cooldown <= 0
}

// Fire returns the bullet to spawn, or false while the cooldown is running.
func (s *Ship) Fire() (BulletSpec, bool) {
	if !s.CanFire() {
		return BulletSpec{}, false
	}
	s.cooldown = ShipFireCooldown

	return BulletSpec{
		Pos:   s.Nose(),
		Vel:   s.heading().Scale(ShipMuzzleSpeed).Add(s.Vel),
		Angle: s.Angle,
	}, true
}

// Nose returns the world position of the ship's tip.
func (s *Ship) Nose() vmath.Vec2 {
	return s.toWorld(shipShape[0])
}

// Points returns the world-space triangle.
func (s *Ship) Points() []draw.Point {
	pts := make([]draw.Point, len(shipShape))
	for i, p := range shipShape {
		pts[i] = s.toWorld(p)
	}
	return pts
}

// Edges returns the triangle's three sides in local coordinates.
func (s *Ship) Edges() [3][2]vmath.Vec2 {
	return [3][2]vmath.Vec2{
		{shipShape[0], shipShape[1]},
		{shipShape[1], shipShape[2]},
		{shipShape[2], shipShape[0]},
	}
}

func (s *Ship) toWorld(local vmath.Vec2) vmath.Vec2 {
	return local.Rotate(vmath.Radians(s.Angle)).Add(s.Pos)
}

// Center implements physics.Circle.
func (s *Ship) Center() vmath.Vec2 {
	return s.Pos
}

// CollisionRadius implements physics.Circle.
func (s *Ship) CollisionRadius() float64 {
	return ShipCollisionRadius
}

// IsAlive reports whether the ship is flying.
func (s *Ship) IsAlive() bool {
	return s.Alive
}

// Update applies friction, moves and wraps the ship, and counts the cooldown down.
func (s *Ship) Update(ctx UpdateContext) bool {
	if !s.Alive {
		return false
	}
	dt := ctx.DT()

	s.Vel = s.Vel.Scale(ShipFriction)
	s.Pos = s.Pos.Add(s.Vel.Scale(dt))

	w, h := ctx.Screen.Size()
	physics.Wrap(&s.Pos, w, h, 0)

	if s.cooldown > 0 {
		s.cooldown -= dt
		if s.cooldown < 0 {
			s.cooldown = 0
		}
	}
	return false
}

// Draw renders the ship as a wireframe triangle.
func (s *Ship) Draw(r draw.Renderer) {
	if !s.Alive {
		return
	}
	r.Polygon(s.Points(), shipColor, 2)
}

// DrawFlame renders the engine flame behind the ship.
func (s *Ship) DrawFlame(r draw.Renderer) {
	if !s.Alive {
		return
	}
	flame := []draw.Point{
		s.toWorld(shipShape[1]),
		s.toWorld(vmath.Vec2{Y: shipSize * 0.8}),
		s.toWorld(shipShape[2]),
	}
	r.Polygon(flame, flameFillColor, 0)
	r.Polygon(flame, flameOutlineColor, 1)
}
