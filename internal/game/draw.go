package game

import (
	"github.com/tomz197/asteroids3d/internal/draw"
	"github.com/tomz197/asteroids3d/internal/object"
)

// Draw issues the frame's draw calls back to front: stars by depth, the
// engine flame, asteroids by depth, particles, debris, the ship and bullets.
// Clearing to the background color is the renderer's job.
func Draw(s *Session, r draw.Renderer) {
	for _, st := range object.SortedByDepth(s.Stars) {
		st.Draw(r)
	}

	if s.Thrusting && s.Mode == ModePlaying {
		s.Ship.DrawFlame(r)
	}

	for _, a := range object.SortedByDepth(s.Asteroids) {
		a.Draw(r)
	}
	for _, p := range s.Particles {
		p.Draw(r)
	}
	for _, d := range s.Debris {
		d.Draw(r)
	}

	if s.Mode == ModePlaying {
		s.Ship.Draw(r)
	}
	for _, b := range s.Bullets {
		b.Draw(r)
	}
}
