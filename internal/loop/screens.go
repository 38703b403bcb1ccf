package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/asteroids3d/internal/game"
)

var gameOverArt = []string{
	`   ___   _   __  __ ___    _____   _____ ___  `,
	`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
	` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
	`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
}

var controlLines = []string{
	"W / Up  . . . . Thrust",
	"A D / < >  . .  Rotate",
	"SPACE  . . . . . Shoot",
	"ENTER  . . . . Restart",
	"Q / ESC  . . . .  Quit",
}

// controlsDuration is how long the controls stay on screen after launch.
const controlsDuration = 5 * time.Second

// drawFrame renders the session and the overlay for the current screen and
// flushes everything in one write.
func (c *Client) drawFrame() error {
	cw := c.chunkWriter
	// The canvas only emits lit cells, so every frame starts blank.
	cw.Clear()
	c.canvas.Clear()

	game.Draw(c.session, c.canvas)
	if err := c.canvas.Render(cw); err != nil {
		return err
	}
	if err := c.canvas.RenderBorder(cw); err != nil {
		return err
	}

	if c.session.Mode != c.prevMode {
		c.logger.Debug("mode changed", "from", c.prevMode, "to", c.session.Mode)
		c.prevMode = c.session.Mode
	}

	blink := time.Now().UnixMilli()/600%2 == 0
	width, height := c.canvas.TerminalWidth(), c.canvas.TerminalHeight()
	hud := c.session.HUD()
	drawHUD(cw, hud, width, height)
	switch {
	case hud.GameOver:
		drawGameOver(cw, hud, width, height, blink)
	case time.Since(c.started) < controlsDuration:
		drawControls(cw, width, height)
	}

	return cw.Flush()
}

// textWriter is the slice of draw.ChunkWriter the overlays need.
type textWriter interface {
	WriteAt(col, row int, s string)
}

func writeCentered(w textWriter, centerX, row int, s string) {
	w.WriteAt(centerX-len(s)/2, row, s)
}

// drawControls shows the key list under the title while a new player gets going.
func drawControls(w textWriter, width, height int) {
	centerX := width / 2
	top := height/2 + 3

	writeCentered(w, centerX, top, "A S T E R O I D S   3 D")
	for i, line := range controlLines {
		writeCentered(w, centerX, top+2+i, line)
	}
}

// hudText returns the four HUD corner labels. Fields are padded to a fixed
// width so shrinking values never leave stale digits behind.
func hudText(h game.HUD) (score, lives, level, asteroids string) {
	return fmt.Sprintf("Score: %-8d", h.Score),
		fmt.Sprintf("Lives: %-3d", h.Lives),
		fmt.Sprintf("Level: %-3d", h.Level),
		fmt.Sprintf("Asteroids: %-4d", h.Asteroids)
}

// drawHUD draws the in-game HUD in the corners.
func drawHUD(w textWriter, h game.HUD, width, height int) {
	score, lives, level, asteroids := hudText(h)
	w.WriteAt(2, 1, score)
	w.WriteAt(width-len(lives)-1, 1, lives)
	w.WriteAt(2, height, level)
	w.WriteAt(width-len(asteroids)-1, height, asteroids)
}

// drawGameOver draws the final score over the still-running field.
func drawGameOver(w textWriter, h game.HUD, width, height int, blink bool) {
	centerX, centerY := width/2, height/2
	top := centerY - 5

	artWidth := 0
	for _, line := range gameOverArt {
		artWidth = max(artWidth, len(line))
	}
	for i, line := range gameOverArt {
		w.WriteAt(centerX-artWidth/2, top+i, line)
	}

	writeCentered(w, centerX, top+len(gameOverArt)+1, fmt.Sprintf("Final score: %d", h.FinalScore))
	if blink {
		writeCentered(w, centerX, top+len(gameOverArt)+3, ">>  Press ENTER to Restart  <<")
	}
}
