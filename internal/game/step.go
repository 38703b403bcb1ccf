package game

import (
	"time"

	"github.com/tomz197/asteroids3d/internal/audio"
	"github.com/tomz197/asteroids3d/internal/input"
	"github.com/tomz197/asteroids3d/internal/object"
)

// Step advances the session by dt seconds with the given intents.
// dt is clamped to (0, object.MaxDelta].
func Step(s *Session, in input.Input, dt float64) {
	ctx := object.UpdateContext{
		Delta:  time.Duration(object.ClampDelta(dt) * float64(time.Second)),
		Screen: s.Screen,
		Rand:   s.rng,
	}

	switch s.Mode {
	case ModePlaying:
		updatePlaying(s, in, ctx)
	case ModeGameOver:
		updateGameOver(s, in, ctx)
	}
}

// updatePlaying runs one frame of active gameplay.
func updatePlaying(s *Session, in input.Input, ctx object.UpdateContext) {
	dt := ctx.DT()

	applyIntents(s, in, dt)

	// Kinematics
	starCtx := ctx
	starCtx.ShipVelocity = s.Ship.Vel
	updateStars(s, starCtx)
	s.Ship.Update(ctx)
	s.Bullets = object.Prune(s.Bullets, ctx)
	for _, a := range s.Asteroids {
		a.Update(ctx)
	}

	diff := updateLevel(s)
	spawnTimed(s, diff, dt)

	resolveBulletHits(s)
	resolveShipHit(s)

	s.Asteroids = object.RemoveDead(s.Asteroids)
	s.Bullets = object.RemoveDead(s.Bullets)
	updateEffects(s, ctx)
}

// updateGameOver keeps the backdrop and explosions alive until a restart.
func updateGameOver(s *Session, in input.Input, ctx object.UpdateContext) {
	s.Thrusting = false
	updateStars(s, ctx) // zero ship velocity
	updateEffects(s, ctx)

	if in.Restart {
		s.Restart()
	}
}

func applyIntents(s *Session, in input.Input, dt float64) {
	s.Thrusting = false
	if !s.Ship.Alive {
		return
	}

	if in.TurnLeft {
		s.Ship.Rotate(-1, dt)
	}
	if in.TurnRight {
		s.Ship.Rotate(1, dt)
	}
	if in.Thrust {
		s.Ship.Thrust(dt)
		s.Thrusting = true
	}
	if in.Fire {
		if spec, ok := s.Ship.Fire(); ok {
			s.Bullets = append(s.Bullets, object.NewBullet(spec))
			s.audio.Play(audio.ClipShot)
		}
	}
}

func updateStars(s *Session, ctx object.UpdateContext) {
	for _, st := range s.Stars {
		st.Update(ctx)
	}
}

func updateEffects(s *Session, ctx object.UpdateContext) {
	s.Particles = object.Prune(s.Particles, ctx)
	s.Debris = object.Prune(s.Debris, ctx)
}

// updateLevel recomputes the level from the score and reports level-ups.
func updateLevel(s *Session) Difficulty {
	diff := s.Difficulty()
	if diff.Level > s.Level {
		s.logger.Info("level up",
			"level", diff.Level,
			"score", s.Score,
			"speed", diff.SpeedMultiplier,
			"interval", diff.SpawnInterval,
			"cap", diff.MaxAsteroids,
		)
	}
	s.Level = diff.Level
	return diff
}

// spawnTimed adds one large asteroid at an edge once the interval has passed,
// unless the field is already at its cap. The timer keeps running while capped.
func spawnTimed(s *Session, diff Difficulty, dt float64) {
	s.spawnTimer += dt
	if s.spawnTimer < diff.SpawnInterval || len(s.Asteroids) >= diff.MaxAsteroids {
		return
	}

	a := object.SpawnAsteroidAtEdge(s.rng, s.Screen, object.AsteroidLarge)
	a.Vel = a.Vel.Scale(diff.SpeedMultiplier)
	s.Asteroids = append(s.Asteroids, a)
	s.spawnTimer = 0
}
