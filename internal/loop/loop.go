// Package loop runs a game session in a terminal: input, step, draw, pace.
// It is shared by the local binary and the SSH server.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroids3d/internal/audio"
	"github.com/tomz197/asteroids3d/internal/config"
	"github.com/tomz197/asteroids3d/internal/draw"
	"github.com/tomz197/asteroids3d/internal/game"
	"github.com/tomz197/asteroids3d/internal/input"
	"github.com/tomz197/asteroids3d/internal/random"
)

// Max render resolution in terminal cells. Larger terminals get a centered,
// bordered play area.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 75
)

// Options configures Run. Zero values fall back to defaults.
type Options struct {
	Config   config.Config
	TermSize draw.TermSizeFunc
	Audio    audio.Player
	Logger   *log.Logger
	Rand     *random.Source
}

// Client drives one session on one terminal.
type Client struct {
	session     *game.Session
	canvas      *draw.Canvas
	chunkWriter *draw.ChunkWriter
	inputStream *input.Stream
	termSize    draw.TermSizeFunc
	frameTime   time.Duration
	logger      *log.Logger

	started  time.Time
	prevMode game.Mode
	input    input.Input
	running  bool
}

// NewClient builds a client reading keys from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts Options) *Client {
	cfg := opts.Config
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = config.DefaultWidth, config.DefaultHeight
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = config.DefaultTickRate
	}
	termSize := opts.TermSize
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		rng = newRand(cfg.Seed)
	}

	session := game.NewSession(
		game.Config{Width: cfg.Width, Height: cfg.Height, Stars: cfg.Stars},
		rng,
		game.WithAudio(opts.Audio),
		game.WithLogger(logger),
	)

	termWidth, termHeight, _ := termSize()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, float64(cfg.Width), float64(cfg.Height))
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		session:     session,
		canvas:      canvas,
		chunkWriter: draw.NewChunkWriter(w, offsetCol, offsetRow),
		inputStream: input.StartStream(r),
		termSize:    termSize,
		frameTime:   cfg.FrameTime(),
		logger:      logger,
		running:     true,
	}
}

// Run plays until the player quits, input closes or ctx is done.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	return NewClient(r, w, opts).Run(ctx)
}

// Run starts the frame loop. It returns the first terminal write error.
func (c *Client) Run(ctx context.Context) error {
	c.chunkWriter.HideCursor()
	if err := c.chunkWriter.Flush(); err != nil {
		return err
	}
	defer func() {
		c.chunkWriter.Clear()
		c.chunkWriter.ShowCursor()
		if err := c.chunkWriter.Flush(); err != nil {
			c.logger.Debug("restore terminal", "err", err)
		}
	}()

	lastTime := time.Now()
	c.started = lastTime
	timer := time.NewTimer(c.frameTime)
	defer timer.Stop()

	for c.running {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput()
		if !c.running {
			break
		}
		c.updateScreen()
		game.Step(c.session, c.input, delta.Seconds())

		if err := c.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		timer.Reset(max(c.frameTime-time.Since(frameStart), 0))
		select {
		case <-ctx.Done():
			c.logger.Debug("loop cancelled", "err", ctx.Err())
			c.running = false
		case <-timer.C:
		}
	}
	return nil
}

// Session exposes the running session.
func (c *Client) Session() *game.Session {
	return c.session
}

func (c *Client) processInput() {
	c.input = input.ReadInput(c.inputStream)
	if c.input.Quit {
		c.running = false
	}
	// Keys held when the game ends must not carry into the restarted game.
	if c.input.Restart && c.session.Mode == game.ModeGameOver {
		c.inputStream.Reset()
	}
}

// updateScreen follows terminal resizes, clamping to the max render
// resolution. The next frame starts with a full clear, so leftovers outside
// the new play area go away without a write here.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSize()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, MaxTermWidth)
	renderHeight = min(termHeight, MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

func newRand(seed uint64) *random.Source {
	if seed == 0 {
		return random.NewTimeSeeded()
	}
	return random.New(seed)
}
