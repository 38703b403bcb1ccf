package object

import (
	"image/color"
	"math"

	"github.com/tomz197/asteroids3d/internal/depth"
	"github.com/tomz197/asteroids3d/internal/draw"
	"github.com/tomz197/asteroids3d/internal/physics"
	"github.com/tomz197/asteroids3d/internal/random"
	"github.com/tomz197/asteroids3d/internal/vmath"
)

// AsteroidSize represents the size category of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall AsteroidSize = iota + 1
	AsteroidMedium
	AsteroidLarge
)

// String returns the lower-case class name.
func (s AsteroidSize) String() string {
	switch s {
	case AsteroidSmall:
		return "small"
	case AsteroidMedium:
		return "medium"
	case AsteroidLarge:
		return "large"
	}
	return "unknown"
}

// Per-class tuning, indexed by AsteroidSize.
var (
	asteroidRadii  = [...]float64{AsteroidSmall: 15, AsteroidMedium: 25, AsteroidLarge: 40}
	asteroidPoints = [...]int{AsteroidSmall: 100, AsteroidMedium: 50, AsteroidLarge: 20}

	asteroidSpeeds = [...]struct{ lo, hi float64 }{
		AsteroidSmall:  {60, 100},
		AsteroidMedium: {40, 70},
		AsteroidLarge:  {30, 50},
	}
)

// Depth band for asteroids. Always nearer than any star.
const (
	AsteroidMinDepth = 0.8
	AsteroidMaxDepth = 1.0
)

const (
	asteroidSpin         = 2.0 // Max angular speed in rad/s
	asteroidMinVertices  = 8
	asteroidMaxVertices  = 12
	asteroidRadiusJitter = 0.3
	asteroidHitboxFactor = 0.9
	asteroidLineWidth    = 2
)

// BaseRadius returns the radius of the class at depth 1.
func (s AsteroidSize) BaseRadius() float64 {
	if s < AsteroidSmall || s > AsteroidLarge {
		return 0
	}
	return asteroidRadii[s]
}

// Asteroid is a destructible space rock drawn at a fixed depth.
type Asteroid struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Angle float64 // Radians, unbounded
	Spin  float64 // Radians per second
	Size  AsteroidSize
	Alive bool

	depth    float64
	radius   float64
	color    color.NRGBA
	vertices []vmath.Vec2 // Local outline
}

type asteroidOptions struct {
	depth    float64
	hasDepth bool
	vel      vmath.Vec2
	hasVel   bool
}

// AsteroidOption customizes NewAsteroid.
type AsteroidOption func(*asteroidOptions)

// WithDepth fixes the depth instead of drawing it from [0.8, 1.0].
func WithDepth(d float64) AsteroidOption {
	return func(o *asteroidOptions) {
		o.depth = d
		o.hasDepth = true
	}
}

// WithVelocity fixes the velocity instead of drawing a random heading and class speed.
func WithVelocity(v vmath.Vec2) AsteroidOption {
	return func(o *asteroidOptions) {
		o.vel = v
		o.hasVel = true
	}
}

// NewAsteroid creates an asteroid of the given class at pos. Unless overridden,
// depth is uniform in [0.8, 1.0] and velocity has a random heading with a class
// speed scaled by depth.
func NewAsteroid(rng *random.Source, pos vmath.Vec2, size AsteroidSize, opts ...AsteroidOption) *Asteroid {
	var o asteroidOptions
	for _, opt := range opts {
		opt(&o)
	}

	d := o.depth
	if !o.hasDepth {
		d = rng.Uniform(AsteroidMinDepth, AsteroidMaxDepth)
	}

	vel := o.vel
	if !o.hasVel {
		band := asteroidSpeeds[size]
		speed := rng.Uniform(band.lo, band.hi) * d
		vel = vmath.FromAngle(rng.Angle(), speed)
	}

	a := &Asteroid{
		Pos:    pos,
		Vel:    vel,
		Angle:  rng.Angle(),
		Spin:   rng.Uniform(-asteroidSpin, asteroidSpin),
		Size:   size,
		Alive:  true,
		depth:  d,
		radius: size.BaseRadius() * d,
		color:  depth.Color(d),
	}
	a.vertices = a.outline(rng)
	return a
}

// outline generates an irregular polygon around the origin.
func (a *Asteroid) outline(rng *random.Source) []vmath.Vec2 {
	n := rng.IntRange(asteroidMinVertices, asteroidMaxVertices)
	pts := make([]vmath.Vec2, n)
	for i := range pts {
		r := a.radius * rng.Uniform(1-asteroidRadiusJitter, 1+asteroidRadiusJitter)
		pts[i] = vmath.FromAngle(2*math.Pi*float64(i)/float64(n), r)
	}
	return pts
}

// Depth returns the asteroid's depth in [0.8, 1.0].
func (a *Asteroid) Depth() float64 {
	return a.depth
}

// Radius returns the visual radius.
func (a *Asteroid) Radius() float64 {
	return a.radius
}

// Color returns the depth color.
func (a *Asteroid) Color() color.NRGBA {
	return a.color
}

// Center implements physics.Circle.
func (a *Asteroid) Center() vmath.Vec2 {
	return a.Pos
}

// CollisionRadius is slightly smaller than the visual radius.
func (a *Asteroid) CollisionRadius() float64 {
	return a.radius * asteroidHitboxFactor
}

// IsAlive reports whether the asteroid has not been destroyed.
func (a *Asteroid) IsAlive() bool {
	return a.Alive
}

// Score returns the points for destroying this asteroid, rewarding nearer rocks more.
func (a *Asteroid) Score() int {
	return int(math.Round(float64(asteroidPoints[a.Size]) * a.depth))
}

// Fragment splits the asteroid into the next smaller class. Large and Medium
// produce exactly two pieces at the same depth, each faster than the parent.
// Small produces none.
func (a *Asteroid) Fragment(rng *random.Source) []*Asteroid {
	var (
		child  AsteroidSize
		offset float64
		lo, hi float64 // Speed multiplier band
	)
	switch a.Size {
	case AsteroidLarge:
		child, offset, lo, hi = AsteroidMedium, 20, 1.2, 1.5
	case AsteroidMedium:
		child, offset, lo, hi = AsteroidSmall, 15, 1.3, 1.6
	default:
		return nil
	}

	speed := a.Vel.Len()
	pieces := make([]*Asteroid, 0, 2)
	for range 2 {
		pos := a.Pos.Add(vmath.Vec2{
			X: rng.Uniform(-offset, offset),
			Y: rng.Uniform(-offset, offset),
		})
		vel := vmath.FromAngle(rng.Angle(), speed*rng.Uniform(lo, hi))
		pieces = append(pieces, NewAsteroid(rng, pos, child, WithDepth(a.depth), WithVelocity(vel)))
	}
	return pieces
}

// Points returns the rotated outline in world coordinates.
func (a *Asteroid) Points() []draw.Point {
	pts := make([]draw.Point, len(a.vertices))
	for i, v := range a.vertices {
		pts[i] = v.Rotate(a.Angle).Add(a.Pos)
	}
	return pts
}

// Update moves and spins the asteroid, wrapping with its radius as margin.
// Asteroids only leave the game by being destroyed.
func (a *Asteroid) Update(ctx UpdateContext) bool {
	dt := ctx.DT()
	a.Pos = a.Pos.Add(a.Vel.Scale(dt))
	a.Angle += a.Spin * dt

	w, h := ctx.Screen.Size()
	physics.Wrap(&a.Pos, w, h, a.radius)
	return !a.Alive
}

// Draw renders the asteroid as a wireframe polygon.
func (a *Asteroid) Draw(r draw.Renderer) {
	if !a.Alive {
		return
	}
	r.Polygon(a.Points(), a.color, asteroidLineWidth)
}
