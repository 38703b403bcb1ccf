package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/asteroids3d/internal/audio"
	"github.com/tomz197/asteroids3d/internal/config"
	"github.com/tomz197/asteroids3d/internal/desktop"
	"github.com/tomz197/asteroids3d/internal/game"
	"github.com/tomz197/asteroids3d/internal/random"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "asteroids"})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", "err", err)
	}
	logger.SetLevel(cfg.LogLevel)

	player := audio.Player(audio.Nop{})
	if cfg.Audio {
		player = audio.New(cfg.AudioDir, logger)
	}

	rng := random.NewTimeSeeded()
	if cfg.Seed != 0 {
		rng = random.New(cfg.Seed)
	}

	ebiten.SetTPS(cfg.TickRate)
	g := desktop.New(game.Config{Width: cfg.Width, Height: cfg.Height, Stars: cfg.Stars}, rng, player, logger)
	logger.Info("opening window", "width", cfg.Width, "height", cfg.Height, "seed", rng.Seed())
	if err := g.Run(); err != nil {
		logger.Fatal("desktop", "err", err)
	}
}
