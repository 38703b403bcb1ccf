package object

import (
	"image/color"

	"github.com/tomz197/asteroids3d/internal/depth"
	"github.com/tomz197/asteroids3d/internal/draw"
	"github.com/tomz197/asteroids3d/internal/random"
	"github.com/tomz197/asteroids3d/internal/vmath"
)

// Explosion tuning.
const (
	ExplosionParticles = 15
	ExplosionSpeed     = 100.0
	particleDrag       = 0.95 // Applied once per update, after moving
	particleColorJit   = 30
)

// Particle is a short-lived explosion spark that fades out. Particles are
// allocated fresh for every explosion and dropped when they expire.
type Particle struct {
	Pos         vmath.Vec2
	Vel         vmath.Vec2
	Color       color.NRGBA
	Size        float64
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime, for the fade
}

// NewParticle creates one spark at pos with a random heading and a speed in
// [0.5, 1.5] × baseSpeed.
func NewParticle(rng *random.Source, pos vmath.Vec2, clr color.NRGBA, baseSpeed float64) *Particle {
	life := rng.Uniform(0.3, 0.8)
	return &Particle{
		Pos:         pos,
		Vel:         vmath.FromAngle(rng.Angle(), rng.Uniform(baseSpeed*0.5, baseSpeed*1.5)),
		Color:       clr,
		Size:        float64(rng.IntRange(2, 4)),
		Lifetime:    life,
		MaxLifetime: life,
	}
}

// SpawnExplosion creates count particles at pos, each with a slightly varied copy of clr.
func SpawnExplosion(rng *random.Source, pos vmath.Vec2, clr color.NRGBA, count int, speed float64) []*Particle {
	particles := make([]*Particle, 0, count)
	for range count {
		particles = append(particles, NewParticle(rng, pos, depth.Jitter(rng, clr, particleColorJit), speed))
	}
	return particles
}

// Alpha returns the remaining fraction of the lifetime.
func (p *Particle) Alpha() float64 {
	if p.MaxLifetime <= 0 {
		return 0
	}
	return p.Lifetime / p.MaxLifetime
}

// IsAlive reports whether the particle still has lifetime left.
func (p *Particle) IsAlive() bool {
	return p.Lifetime > 0
}

// Update moves the particle and checks lifetime.
func (p *Particle) Update(ctx UpdateContext) bool {
	dt := ctx.DT()

	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Vel = p.Vel.Scale(particleDrag)

	p.Lifetime -= dt
	return p.Lifetime <= 0
}

// Draw renders the particle as a fading disk.
func (p *Particle) Draw(r draw.Renderer) {
	if !p.IsAlive() {
		return
	}
	r.Circle(p.Pos, p.Size, depth.Fade(p.Color, p.Alpha()))
}
