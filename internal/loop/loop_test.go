package loop

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomz197/asteroids3d/internal/config"
	"github.com/tomz197/asteroids3d/internal/game"
	"github.com/tomz197/asteroids3d/internal/random"
)

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name                           string
		termW, termH                   int
		wantW, wantH, wantCol, wantRow int
	}{
		{"small", 80, 24, 80, 24, 0, 0},
		{"exact", MaxTermWidth, MaxTermHeight, MaxTermWidth, MaxTermHeight, 0, 0},
		{"wide", 300, 50, MaxTermWidth, 50, 50, 0},
		{"tall", 100, 95, 100, MaxTermHeight, 0, 10},
		{"huge", 301, 80, MaxTermWidth, MaxTermHeight, 50, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, col, row := clampTermSize(tt.termW, tt.termH)
			if w != tt.wantW || h != tt.wantH || col != tt.wantCol || row != tt.wantRow {
				t.Errorf("clampTermSize(%d, %d) = %d, %d, %d, %d", tt.termW, tt.termH, w, h, col, row)
			}
		})
	}
}

func TestHUDTextFixedWidth(t *testing.T) {
	a1, b1, c1, d1 := hudText(game.HUD{Score: 12345, Lives: 3, Level: 10, Asteroids: 12})
	a2, b2, c2, d2 := hudText(game.HUD{Score: 0, Lives: 0, Level: 1, Asteroids: 0})
	if len(a1) != len(a2) || len(b1) != len(b2) || len(c1) != len(c2) || len(d1) != len(d2) {
		t.Error("HUD fields must keep their width")
	}
	if !strings.HasPrefix(a1, "Score: 12345") || !strings.HasPrefix(b1, "Lives: 3") {
		t.Errorf("got %q %q", a1, b1)
	}
}

type textRecorder struct {
	lines map[int]string
}

func (r *textRecorder) WriteAt(_, row int, s string) {
	if r.lines == nil {
		r.lines = make(map[int]string)
	}
	r.lines[row] += s
}

func (r *textRecorder) contains(s string) bool {
	for _, l := range r.lines {
		if strings.Contains(l, s) {
			return true
		}
	}
	return false
}

func TestGameOverOverlay(t *testing.T) {
	var rec textRecorder
	drawGameOver(&rec, game.HUD{GameOver: true, FinalScore: 870}, 80, 24, true)
	if !rec.contains("Final score: 870") || !rec.contains("Press ENTER to Restart") {
		t.Errorf("overlay missing text: %v", rec.lines)
	}

	rec = textRecorder{}
	drawGameOver(&rec, game.HUD{GameOver: true}, 80, 24, false)
	if rec.contains("Press ENTER") {
		t.Error("prompt should blink off")
	}
}

func TestControlsOverlay(t *testing.T) {
	var rec textRecorder
	drawControls(&rec, 80, 24)
	for _, want := range []string{"A S T E R O I D S", "Thrust", "Restart", "Quit"} {
		if !rec.contains(want) {
			t.Errorf("controls missing %q", want)
		}
	}
}

// syncBuffer guards the output against the test reading it concurrently.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testOptions() Options {
	cfg := config.Config{Width: 800, Height: 600, TickRate: 120, Stars: 20}
	return Options{
		Config:   cfg,
		TermSize: func() (int, int, error) { return 80, 24, nil },
		Rand:     random.New(1),
	}
}

func TestRunQuitsOnEOF(t *testing.T) {
	var out syncBuffer
	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), bufio.NewReader(strings.NewReader("")), &out, testOptions())
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after input closed")
	}
	if !strings.Contains(out.String(), "\033[?25h") {
		t.Error("cursor should be restored on exit")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out syncBuffer
	ctx, cancel := context.WithCancel(context.Background())
	c := NewClient(bufio.NewReader(pr), &out, testOptions())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	// Fire once and let a few frames go by.
	if _, err := pw.Write([]byte(" ")); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}

	got := out.String()
	if !strings.Contains(got, "Score:") {
		t.Error("HUD never drawn")
	}
	if c.Session().Mode != game.ModePlaying {
		t.Errorf("mode %s, want playing", c.Session().Mode)
	}
}

func TestResizeDefersToNextFrame(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	width, height := 80, 24
	opts := testOptions()
	opts.TermSize = func() (int, int, error) { return width, height, nil }

	var out syncBuffer
	c := NewClient(bufio.NewReader(pr), &out, opts)

	width, height = 300, 100
	c.updateScreen()
	if got := out.String(); got != "" {
		t.Fatalf("resize wrote outside a frame: %q", got)
	}
	if c.canvas.TerminalWidth() != MaxTermWidth || c.canvas.TerminalHeight() != MaxTermHeight {
		t.Errorf("canvas %dx%d, want clamped %dx%d",
			c.canvas.TerminalWidth(), c.canvas.TerminalHeight(), MaxTermWidth, MaxTermHeight)
	}

	if err := c.drawFrame(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); !strings.HasPrefix(got, "\033[H\033[2J") {
		t.Errorf("frame should open with a clear, got %q", got[:min(len(got), 16)])
	}
}
