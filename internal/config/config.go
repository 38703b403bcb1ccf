// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// ErrInvalid is wrapped by every validation error returned from Load.
var ErrInvalid = errors.New("invalid configuration")

// Defaults
const (
	DefaultWidth       = 800
	DefaultHeight      = 600
	DefaultTickRate    = 60
	DefaultStars       = 300
	DefaultAudioDir    = "assets"
	DefaultLogLevel    = "info"
	DefaultSSHHost     = "::"
	DefaultSSHPort     = "2222"
	DefaultSSHHostKey  = ".ssh/host_key"
	maxTickRate        = 240
	defaultEnvFileName = ".env"
)

// Config holds every setting the binaries read at startup.
type Config struct {
	Width    int       // Logical screen width
	Height   int       // Logical screen height
	TickRate int       // Frames per second
	Seed     uint64    // RNG seed, 0 means time based
	Stars    int       // Starfield size
	AudioDir string    // Directory holding the WAV clips
	Audio    bool      // Sound effects on or off
	LogLevel log.Level // Minimum log level
	LogFile  string    // Log destination for the terminal binary, empty discards

	SSHHost    string
	SSHPort    string
	SSHHostKey string
}

// FrameTime is the target duration of one frame.
func (c Config) FrameTime() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Load reads .env from the working directory when present, then the process
// environment. Variables already set in the environment win over .env.
func Load() (Config, error) {
	return LoadFile(defaultEnvFileName)
}

// LoadFile is Load with an explicit .env path. A missing file is not an error.
func LoadFile(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment alone.
func FromEnv() (Config, error) {
	var errs []error
	intVar := func(key string, fallback int) int {
		v, err := strconv.Atoi(GetEnv(key, strconv.Itoa(fallback)))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, ErrInvalid))
			return fallback
		}
		return v
	}

	cfg := Config{
		Width:      intVar("ASTEROIDS_WIDTH", DefaultWidth),
		Height:     intVar("ASTEROIDS_HEIGHT", DefaultHeight),
		TickRate:   intVar("ASTEROIDS_TICK_RATE", DefaultTickRate),
		Stars:      intVar("ASTEROIDS_STARS", DefaultStars),
		AudioDir:   GetEnv("ASTEROIDS_AUDIO_DIR", DefaultAudioDir),
		LogFile:    GetEnv("ASTEROIDS_LOG_FILE", ""),
		SSHHost:    GetEnv("SSH_HOST", DefaultSSHHost),
		SSHPort:    GetEnv("SSH_PORT", DefaultSSHPort),
		SSHHostKey: GetEnv("SSH_HOST_KEY", DefaultSSHHostKey),
	}

	seed, err := strconv.ParseUint(GetEnv("ASTEROIDS_SEED", "0"), 10, 64)
	if err != nil {
		errs = append(errs, fmt.Errorf("ASTEROIDS_SEED: %w", ErrInvalid))
	}
	cfg.Seed = seed

	audio, err := strconv.ParseBool(GetEnv("ASTEROIDS_AUDIO", "true"))
	if err != nil {
		errs = append(errs, fmt.Errorf("ASTEROIDS_AUDIO: %w", ErrInvalid))
		audio = true
	}
	cfg.Audio = audio

	level, err := log.ParseLevel(GetEnv("ASTEROIDS_LOG_LEVEL", DefaultLogLevel))
	if err != nil {
		errs = append(errs, fmt.Errorf("ASTEROIDS_LOG_LEVEL: %w", ErrInvalid))
		level = log.InfoLevel
	}
	cfg.LogLevel = level

	errs = append(errs, cfg.Validate())
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges. Errors wrap ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("screen size %dx%d: %w", c.Width, c.Height, ErrInvalid)
	case c.TickRate <= 0 || c.TickRate > maxTickRate:
		return fmt.Errorf("tick rate %d: %w", c.TickRate, ErrInvalid)
	case c.Stars < 0:
		return fmt.Errorf("star count %d: %w", c.Stars, ErrInvalid)
	}
	return nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
