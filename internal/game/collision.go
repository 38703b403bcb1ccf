package game

import (
	"github.com/tomz197/asteroids3d/internal/audio"
	"github.com/tomz197/asteroids3d/internal/object"
	"github.com/tomz197/asteroids3d/internal/physics"
)

// resolveBulletHits destroys each bullet with the first live asteroid it
// touches. The asteroid scores, explodes and fragments. Fragments join the
// field at once, so later bullets in the same frame can hit them.
func resolveBulletHits(s *Session) {
	for _, b := range s.Bullets {
		if !b.Alive {
			continue
		}
		for _, a := range s.Asteroids {
			if !a.Alive || !physics.Hit(b, a) {
				continue
			}
			b.Alive = false
			a.Alive = false
			s.Score += a.Score()

			s.Particles = append(s.Particles,
				object.SpawnExplosion(s.rng, a.Pos, a.Color(), object.ExplosionParticles, object.ExplosionSpeed)...)
			s.audio.Play(audio.ClipAsteroidExplosion)
			s.Asteroids = append(s.Asteroids, a.Fragment(s.rng)...)
			break
		}
	}
}

// resolveShipHit costs a life when the ship touches a live asteroid. At most
// one life is lost per frame.
func resolveShipHit(s *Session) {
	if !s.Ship.Alive {
		return
	}
	for _, a := range s.Asteroids {
		if !a.Alive || !physics.Hit(s.Ship, a) {
			continue
		}
		killShip(s)
		return
	}
}

// killShip spawns the wreck and either respawns the ship or ends the game.
func killShip(s *Session) {
	s.Ship.Alive = false
	s.Lives--
	s.Debris = append(s.Debris, object.NewShipExplosion(s.rng, s.Ship)...)
	s.audio.Play(audio.ClipShipExplosion)

	if s.Lives <= 0 {
		s.Lives = 0
		s.Mode = ModeGameOver
		s.FinalScore = s.Score
		s.Thrusting = false
		s.logger.Info("game over", "score", s.FinalScore, "level", s.Level)
		return
	}

	s.Ship.Reset(s.Screen.Center())
	s.logger.Debug("ship lost", "lives", s.Lives)
}
