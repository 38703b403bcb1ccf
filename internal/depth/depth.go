// Package depth maps the fake-3D depth scalar to colors.
//
// Depth runs from 0.0 (far) to 1.0 (near). Stars live in the lower part of the
// range and asteroids in [0.8, 1.0], so asteroids always read as closer.
package depth

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/asteroids3d/internal/random"
)

var (
	// Far is the color at depth 0.
	Far = color.NRGBA{R: 74, G: 95, B: 156, A: 255}
	// Near is the color at depth 1.
	Near = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	// Background is the space backdrop.
	Background = color.NRGBA{R: 10, G: 10, B: 20, A: 255}
)

var (
	farRGB, _  = colorful.MakeColor(Far)
	nearRGB, _ = colorful.MakeColor(Near)
)

// Color interpolates linearly in RGB between Far and Near. Depth outside
// [0, 1] is clamped.
func Color(d float64) color.NRGBA {
	d = Clamp(d)
	r, g, b := farRGB.BlendRgb(nearRGB, d).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Clamp limits d to [0, 1].
func Clamp(d float64) float64 {
	switch {
	case d < 0:
		return 0
	case d > 1:
		return 1
	}
	return d
}

// Jitter offsets each channel of c by an integer in [-amount, amount] and
// clamps the result to 0..255. Alpha is preserved.
func Jitter(rng *random.Source, c color.NRGBA, amount int) color.NRGBA {
	return color.NRGBA{
		R: clampChannel(int(c.R) + rng.IntRange(-amount, amount)),
		G: clampChannel(int(c.G) + rng.IntRange(-amount, amount)),
		B: clampChannel(int(c.B) + rng.IntRange(-amount, amount)),
		A: c.A,
	}
}

// Fade scales the alpha of c by f in [0, 1].
func Fade(c color.NRGBA, f float64) color.NRGBA {
	c.A = uint8(float64(c.A) * Clamp(f))
	return c
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
