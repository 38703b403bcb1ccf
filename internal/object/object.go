package object

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/tomz197/asteroids3d/internal/draw"
	"github.com/tomz197/asteroids3d/internal/random"
	"github.com/tomz197/asteroids3d/internal/vmath"
)

// MaxDelta caps a single frame step in seconds so a stalled frame cannot
// teleport entities through each other.
const MaxDelta = 0.1

// minDelta keeps dt strictly positive so lifetimes always advance.
const minDelta = 1e-6

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta        time.Duration
	Screen       Screen
	Rand         *random.Source
	ShipVelocity vmath.Vec2 // Used by stars for parallax
}

// DT returns the frame delta in seconds, clamped to (0, MaxDelta].
func (ctx UpdateContext) DT() float64 {
	return ClampDelta(ctx.Delta.Seconds())
}

// ClampDelta clamps dt to (0, MaxDelta]. NaN and non-positive values become a
// tiny positive step.
func ClampDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt <= 0 {
		return minDelta
	}
	if dt > MaxDelta {
		return MaxDelta
	}
	return dt
}

// Screen represents the logical play field dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen builds a Screen with its center precomputed.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// Size returns the width and height as floats.
func (s Screen) Size() (w, h float64) {
	return float64(s.Width), float64(s.Height)
}

// Center returns the center of the screen.
func (s Screen) Center() vmath.Vec2 {
	return vmath.Vec2{X: float64(s.Width) / 2, Y: float64(s.Height) / 2}
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object by one frame. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Draw issues the object's draw calls.
	Draw(r draw.Renderer)
}

// Depther is implemented by objects that live at a depth in [0,1].
type Depther interface {
	Depth() float64
}

// SortedByDepth returns a copy of items ordered by ascending depth, so far
// objects are drawn before near ones. Equal depths keep their order.
func SortedByDepth[T Depther](items []T) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(a.Depth(), b.Depth())
	})
	return sorted
}

// Prune updates every object and compacts the slice in place, dropping the ones
// that asked to be removed.
func Prune[T Object](objs []T, ctx UpdateContext) []T {
	kept := objs[:0] // reuse backing array
	for _, obj := range objs {
		if !obj.Update(ctx) {
			kept = append(kept, obj)
		}
	}
	clear(objs[len(kept):])
	return kept
}

// Mortal is implemented by objects that can be killed outside their own Update,
// for example by a collision.
type Mortal interface {
	IsAlive() bool
}

// RemoveDead compacts the slice in place, keeping only living objects.
func RemoveDead[T Mortal](objs []T) []T {
	kept := objs[:0]
	for _, obj := range objs {
		if obj.IsAlive() {
			kept = append(kept, obj)
		}
	}
	clear(objs[len(kept):])
	return kept
}
