// Package game holds the rules: session state, the per-frame step, collision
// resolution and difficulty progression. It performs no I/O of its own; sound,
// drawing and input come in through narrow interfaces.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroids3d/internal/audio"
	"github.com/tomz197/asteroids3d/internal/object"
	"github.com/tomz197/asteroids3d/internal/random"
)

const (
	InitialLives     = 3
	InitialAsteroids = 4
)

// Mode is the session's top-level state.
type Mode int

const (
	ModePlaying Mode = iota
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game over"
	}
	return "unknown"
}

// Config sizes a session.
type Config struct {
	Width  int // Logical play field width
	Height int // Logical play field height
	Stars  int // Starfield size
}

// DefaultConfig returns the classic 800×600 field with 300 stars.
func DefaultConfig() Config {
	return Config{Width: 800, Height: 600, Stars: 300}
}

// Session is one player's game. It owns every entity; entities never
// reference each other.
type Session struct {
	Screen    object.Screen
	Ship      *object.Ship
	Asteroids []*object.Asteroid
	Bullets   []*object.Bullet
	Particles []*object.Particle
	Debris    []*object.ShipDebris
	Stars     []*object.Star

	Score      int
	Lives      int
	Level      int
	Mode       Mode
	FinalScore int  // Score captured when the game ended
	Thrusting  bool // Set while the thrust intent was applied this frame

	spawnTimer float64
	rng        *random.Source
	audio      audio.Player
	logger     *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithAudio sets the sound effect player. Defaults to silence.
func WithAudio(p audio.Player) Option {
	return func(s *Session) {
		if p != nil {
			s.audio = p
		}
	}
}

// WithLogger sets the logger for game events. Defaults to discarding.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a session in the playing state: three lives, the ship
// centered, four large asteroids at the edges and a fresh starfield.
func NewSession(cfg Config, rng *random.Source, opts ...Option) *Session {
	if rng == nil {
		rng = random.NewTimeSeeded()
	}
	screen := object.NewScreen(cfg.Width, cfg.Height)

	s := &Session{
		Screen: screen,
		Ship:   object.NewShip(screen.Center()),
		Stars:  object.NewStarfield(rng, screen, cfg.Stars),
		rng:    rng,
		audio:  audio.Nop{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Restart()
	return s
}

// Restart resets score, lives, level, mode and ship, clears every gameplay
// collection and spawns a new opening wave. The starfield is kept.
func (s *Session) Restart() {
	s.Score = 0
	s.Lives = InitialLives
	s.Level = 1
	s.Mode = ModePlaying
	s.FinalScore = 0
	s.Thrusting = false
	s.spawnTimer = 0

	s.Ship.Reset(s.Screen.Center())

	clear(s.Bullets)
	s.Bullets = s.Bullets[:0]
	clear(s.Particles)
	s.Particles = s.Particles[:0]
	clear(s.Debris)
	s.Debris = s.Debris[:0]
	clear(s.Asteroids)
	s.Asteroids = append(s.Asteroids[:0],
		object.SpawnWave(s.rng, s.Screen, object.AsteroidLarge, InitialAsteroids)...)

	s.logger.Debug("session restarted", "seed", s.rng.Seed())
}

// HUD is a plain snapshot of what the heads-up display shows.
type HUD struct {
	Score      int
	Lives      int
	Level      int
	Asteroids  int
	GameOver   bool
	FinalScore int
}

// HUD returns the current display values.
func (s *Session) HUD() HUD {
	return HUD{
		Score:      s.Score,
		Lives:      s.Lives,
		Level:      s.Level,
		Asteroids:  len(s.Asteroids),
		GameOver:   s.Mode == ModeGameOver,
		FinalScore: s.FinalScore,
	}
}

// Difficulty returns the knobs for the current score.
func (s *Session) Difficulty() Difficulty {
	return DifficultyFor(s.Score)
}
