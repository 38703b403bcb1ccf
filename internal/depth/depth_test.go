package depth

import (
	"image/color"
	"testing"

	"github.com/tomz197/asteroids3d/internal/random"
)

func TestColorEndpoints(t *testing.T) {
	if got := Color(0); got != Far {
		t.Errorf("Color(0) = %+v, want %+v", got, Far)
	}
	if got := Color(1); got != Near {
		t.Errorf("Color(1) = %+v, want %+v", got, Near)
	}
	if got := Color(-3); got != Far {
		t.Errorf("Color(-3) = %+v, want clamp to Far", got)
	}
}

func TestColorBrightensWithDepth(t *testing.T) {
	prev := Color(0)
	for d := 0.1; d <= 1.0; d += 0.1 {
		c := Color(d)
		if c.R < prev.R || c.G < prev.G || c.B < prev.B {
			t.Fatalf("Color(%.1f) = %+v darker than %+v", d, c, prev)
		}
		prev = c
	}
}

func TestJitterStaysInRange(t *testing.T) {
	rng := random.New(11)
	base := color.NRGBA{R: 250, G: 5, B: 128, A: 255}
	for i := 0; i < 500; i++ {
		c := Jitter(rng, base, 30)
		if int(c.R) < 220 || int(c.G) > 35 || int(c.B) < 98 || int(c.B) > 158 {
			t.Fatalf("jitter out of band: %+v", c)
		}
		if c.A != 255 {
			t.Fatalf("alpha changed: %d", c.A)
		}
	}
}

func TestFade(t *testing.T) {
	c := Fade(color.NRGBA{R: 1, G: 2, B: 3, A: 200}, 0.5)
	if c.A != 100 {
		t.Errorf("Fade alpha = %d, want 100", c.A)
	}
}
