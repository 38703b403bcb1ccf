package draw

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func TestCanvasScaling(t *testing.T) {
	// 80 logical units -> 40 columns, 60 logical units -> 30 sub-pixel rows
	c := NewScaledCanvas(40, 15, 80, 60)

	c.Circle(Point{X: 40, Y: 30}, 0.1, white)
	if got := c.At(20, 15); got != white {
		t.Fatalf("expected pixel at (20,15), got %+v", got)
	}

	col, row := c.LogicalToTerminal(40, 30)
	if col != 21 || row != 8 {
		t.Errorf("LogicalToTerminal = (%d,%d), want (21,8)", col, row)
	}
}

func TestCanvasLineEndpoints(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.Line(Point{X: 0, Y: 0}, Point{X: 9, Y: 9}, white, 1)

	for i := 0; i < 10; i++ {
		if c.At(i, i).A == 0 {
			t.Errorf("diagonal pixel (%d,%d) not set", i, i)
		}
	}
}

func TestCanvasPolygonFill(t *testing.T) {
	square := []Point{{X: 2, Y: 2}, {X: 7, Y: 2}, {X: 7, Y: 7}, {X: 2, Y: 7}}

	outline := NewScaledCanvas(10, 5, 10, 10)
	outline.Polygon(square, white, 1)
	if outline.At(4, 4).A != 0 {
		t.Error("outline polygon should not fill its interior")
	}

	filled := NewScaledCanvas(10, 5, 10, 10)
	filled.Polygon(square, white, 0)
	if filled.At(4, 4).A == 0 {
		t.Error("filled polygon should fill its interior")
	}
}

func TestCanvasTranslucentPixelsDarken(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.Circle(Point{X: 1, Y: 1}, 0.1, color.NRGBA{R: 200, G: 100, B: 50, A: 127})

	got := c.At(1, 1)
	if got.A != 255 {
		t.Fatalf("stored pixel should be opaque, got alpha %d", got.A)
	}
	if got.R >= 200 || got.G >= 100 || got.B >= 50 {
		t.Errorf("translucent pixel not darkened: %+v", got)
	}
}

func TestCanvasRender(t *testing.T) {
	c := NewScaledCanvas(3, 1, 3, 2)
	red := color.NRGBA{R: 255, A: 255}
	c.Circle(Point{X: 0, Y: 0}, 0.1, white) // top only
	c.Circle(Point{X: 1, Y: 1}, 0.1, white) // bottom only
	c.Circle(Point{X: 2, Y: 0}, 0.1, white) // top and bottom differ
	c.Circle(Point{X: 2, Y: 1}, 0.1, red)

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	if strings.Count(out, string(BlockUpperHalf)) != 2 {
		t.Errorf("expected two upper half blocks in %q", out)
	}
	if !strings.Contains(out, string(BlockLowerHalf)) {
		t.Errorf("expected a lower half block in %q", out)
	}
	if !strings.Contains(out, "\033[48;2;255;0;0m") {
		t.Errorf("expected red background escape in %q", out)
	}
	if !strings.HasSuffix(out, "\033[0m") {
		t.Errorf("render should end with a reset, got %q", out)
	}
}

func TestCanvasRenderBorder(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)

	var buf bytes.Buffer
	if err := c.RenderBorder(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("no border expected without offset, got %q", buf.String())
	}

	c.SetOffset(2, 1)
	if err := c.RenderBorder(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "┌────┐") {
		t.Errorf("expected top border, got %q", buf.String())
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Polygon([]Point{{}, {}}, white, 1)
	r.Polygon([]Point{{}, {}, {}}, white, 1)
	r.Line(Point{}, Point{}, white, 1)
	r.Circle(Point{}, 1, white)

	if r.Polygons != 1 || r.Lines != 1 || r.Circles != 1 {
		t.Errorf("unexpected counts %+v", r)
	}
	r.Reset()
	if r != (Recorder{}) {
		t.Errorf("Reset left %+v", r)
	}
}
