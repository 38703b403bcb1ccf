package object

import (
	"testing"
	"time"

	"github.com/tomz197/asteroids3d/internal/draw"
	"github.com/tomz197/asteroids3d/internal/random"
	"github.com/tomz197/asteroids3d/internal/vmath"
)

var testScreen = NewScreen(800, 600)

func ctxWithDelta(rng *random.Source, dt float64) UpdateContext {
	return UpdateContext{
		Delta:  time.Duration(dt * float64(time.Second)),
		Screen: testScreen,
		Rand:   rng,
	}
}

func TestObjectsDrawThroughRenderer(t *testing.T) {
	rng := random.New(18)
	var r draw.Recorder

	objs := []Object{
		NewShip(testScreen.Center()),
		NewAsteroid(rng, vmath.Vec2{X: 200, Y: 200}, AsteroidLarge),
		NewBullet(BulletSpec{Pos: vmath.Vec2{X: 10, Y: 10}}),
		NewStar(rng, vmath.Vec2{X: 5, Y: 5}, 0.2),
	}
	objs = append(objs, NewShipExplosion(rng, NewShip(vmath.Vec2{}))[0])
	for _, o := range objs {
		o.Draw(&r)
	}
	if r.Polygons != 2 || r.Circles != 2 || r.Lines != 1 {
		t.Errorf("unexpected draw calls %+v", r)
	}
}

func TestClampDelta(t *testing.T) {
	if got := ClampDelta(-1); got <= 0 {
		t.Errorf("negative dt clamped to %v", got)
	}
	if got := ClampDelta(5); got != MaxDelta {
		t.Errorf("large dt clamped to %v", got)
	}
	if got := ClampDelta(0.016); got != 0.016 {
		t.Errorf("normal dt changed to %v", got)
	}
}
