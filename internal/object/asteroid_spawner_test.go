package object

import (
	"testing"

	"github.com/tomz197/asteroids3d/internal/random"
)

func TestSpawnAsteroidAtEdge(t *testing.T) {
	rng := random.New(6)
	for range 200 {
		a := SpawnAsteroidAtEdge(rng, testScreen, AsteroidLarge)
		onEdge := a.Pos.X == -EdgeMargin || a.Pos.X == 800+EdgeMargin ||
			a.Pos.Y == -EdgeMargin || a.Pos.Y == 600+EdgeMargin
		if !onEdge {
			t.Fatalf("asteroid at %v is not on a spawn edge", a.Pos)
		}
		if a.Size != AsteroidLarge {
			t.Fatalf("size %s, want large", a.Size)
		}
	}

	if n := len(SpawnWave(rng, testScreen, AsteroidLarge, 4)); n != 4 {
		t.Errorf("wave has %d asteroids, want 4", n)
	}
}
