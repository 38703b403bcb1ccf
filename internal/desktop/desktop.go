// Package desktop runs a session in an ebiten window.
package desktop

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/asteroids3d/internal/audio"
	"github.com/tomz197/asteroids3d/internal/depth"
	"github.com/tomz197/asteroids3d/internal/game"
	"github.com/tomz197/asteroids3d/internal/input"
	"github.com/tomz197/asteroids3d/internal/random"
)

const windowTitle = "Asteroids 3D"

var hudColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Game adapts a session to ebiten.Game.
type Game struct {
	session  *game.Session
	renderer *Renderer
	logger   *log.Logger
	width    int
	height   int
}

// New creates the window game. Audio and logger may be nil.
func New(cfg game.Config, rng *random.Source, player audio.Player, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		session:  game.NewSession(cfg, rng, game.WithAudio(player), game.WithLogger(logger)),
		renderer: &Renderer{},
		logger:   logger,
		width:    cfg.Width,
		height:   cfg.Height,
	}
}

// Run opens the window and blocks until it closes.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizable(true)
	return ebiten.RunGame(g)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	in := readKeys(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	if in.Quit {
		g.logger.Debug("window closed by player")
		return ebiten.Termination
	}
	game.Step(g.session, in, 1/float64(ebiten.TPS()))
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(depth.Background)
	g.renderer.Target = screen
	game.Draw(g.session, g.renderer)

	h := g.session.HUD()
	text.Draw(screen, fmt.Sprintf("Score: %d", h.Score), basicfont.Face7x13, 10, 20, hudColor)
	text.Draw(screen, fmt.Sprintf("Lives: %d", h.Lives), basicfont.Face7x13, g.width-80, 20, hudColor)
	text.Draw(screen, fmt.Sprintf("Level: %d", h.Level), basicfont.Face7x13, 10, g.height-10, hudColor)
	text.Draw(screen, fmt.Sprintf("Asteroids: %d", h.Asteroids), basicfont.Face7x13, g.width-110, g.height-10, hudColor)

	if h.GameOver {
		cx, cy := g.width/2, g.height/2
		drawCentered(screen, "GAME OVER", cx, cy-20)
		drawCentered(screen, fmt.Sprintf("Final score: %d", h.FinalScore), cx, cy+5)
		drawCentered(screen, "Press ENTER to restart", cx, cy+30)
	}
}

// Layout implements ebiten.Game. The logical field is fixed and ebiten scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Session exposes the running session.
func (g *Game) Session() *game.Session {
	return g.session
}

func drawCentered(dst *ebiten.Image, s string, cx, y int) {
	// basicfont glyphs are 7px wide
	text.Draw(dst, s, basicfont.Face7x13, cx-len(s)*7/2, y, hudColor)
}

// readKeys maps keyboard state to intents. Movement keys are held; quit and
// restart fire on the press only.
func readKeys(pressed, justPressed func(ebiten.Key) bool) input.Input {
	anyKey := func(f func(ebiten.Key) bool, keys ...ebiten.Key) bool {
		for _, k := range keys {
			if f(k) {
				return true
			}
		}
		return false
	}
	return input.Input{
		TurnLeft:  anyKey(pressed, ebiten.KeyArrowLeft, ebiten.KeyA),
		TurnRight: anyKey(pressed, ebiten.KeyArrowRight, ebiten.KeyD),
		Thrust:    anyKey(pressed, ebiten.KeyArrowUp, ebiten.KeyW),
		Fire:      anyKey(pressed, ebiten.KeySpace),
		Quit:      anyKey(justPressed, ebiten.KeyEscape),
		Restart:   anyKey(justPressed, ebiten.KeyEnter, ebiten.KeyR),
	}
}

var _ ebiten.Game = (*Game)(nil)
