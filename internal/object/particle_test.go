package object

import (
	"image/color"
	"testing"

	"github.com/tomz197/asteroids3d/internal/random"
	"github.com/tomz197/asteroids3d/internal/vmath"
)

func TestExplosion(t *testing.T) {
	rng := random.New(15)
	base := color.NRGBA{R: 250, G: 10, B: 128, A: 255}
	origin := vmath.Vec2{X: 50, Y: 50}

	particles := SpawnExplosion(rng, origin, base, ExplosionParticles, ExplosionSpeed)
	if len(particles) != ExplosionParticles {
		t.Fatalf("got %d particles", len(particles))
	}
	for _, p := range particles {
		if speed := p.Vel.Len(); speed < 50-1e-9 || speed > 150+1e-9 {
			t.Errorf("speed %v outside [50,150]", speed)
		}
		if p.Size < 2 || p.Size > 4 {
			t.Errorf("size %v", p.Size)
		}
		if p.MaxLifetime < 0.3 || p.MaxLifetime > 0.8 || p.Alpha() != 1 {
			t.Errorf("lifetime %v/%v", p.Lifetime, p.MaxLifetime)
		}
		if int(p.Color.G) > 40 || int(p.Color.R) < 220 {
			t.Errorf("color %v strays from base", p.Color)
		}
	}

	p := particles[0]
	v := p.Vel
	p.Update(ctxWithDelta(rng, 0.01))
	if p.Pos.Dist(origin.Add(v.Scale(0.01))) > 1e-9 {
		t.Error("particle should move before drag applies")
	}
	if p.Vel.Dist(v.Scale(0.95)) > 1e-9 {
		t.Error("particle drag not applied")
	}
	if p.Alpha() >= 1 {
		t.Error("alpha should drop as lifetime runs out")
	}
}
