package object

import (
	"github.com/tomz197/asteroids3d/internal/random"
	"github.com/tomz197/asteroids3d/internal/vmath"
)

// EdgeMargin is how far outside the screen new asteroids appear.
const EdgeMargin = 50.0

// Edge identifies one side of the screen.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// EdgePosition returns a point EdgeMargin outside the given edge, uniformly
// placed along it.
func EdgePosition(rng *random.Source, screen Screen, edge Edge) vmath.Vec2 {
	w, h := screen.Size()
	switch edge {
	case EdgeTop:
		return vmath.Vec2{X: rng.Uniform(0, w), Y: -EdgeMargin}
	case EdgeBottom:
		return vmath.Vec2{X: rng.Uniform(0, w), Y: h + EdgeMargin}
	case EdgeLeft:
		return vmath.Vec2{X: -EdgeMargin, Y: rng.Uniform(0, h)}
	default:
		return vmath.Vec2{X: w + EdgeMargin, Y: rng.Uniform(0, h)}
	}
}

// SpawnAsteroidAtEdge creates an asteroid just off a random screen edge with a
// random depth, heading and class speed.
func SpawnAsteroidAtEdge(rng *random.Source, screen Screen, size AsteroidSize) *Asteroid {
	edge := Edge(rng.IntN(4))
	return NewAsteroid(rng, EdgePosition(rng, screen, edge), size)
}

// SpawnWave creates n asteroids of the given class at random edges.
func SpawnWave(rng *random.Source, screen Screen, size AsteroidSize, n int) []*Asteroid {
	wave := make([]*Asteroid, 0, n)
	for range n {
		wave = append(wave, SpawnAsteroidAtEdge(rng, screen, size))
	}
	return wave
}
