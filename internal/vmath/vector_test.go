package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVectorArithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: -1, Y: 2}

	if got := a.Add(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %f, want 5", got)
	}
	if got := a.Dist(Vec2{}); got != 5 {
		t.Errorf("Dist = %f, want 5", got)
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize of zero = %+v, want zero", got)
	}
	n := Vec2{X: 10, Y: 0}.Normalize()
	if math.Abs(n.Len()-1) > eps {
		t.Errorf("normalized length = %f", n.Len())
	}
}

func TestScaleToLengthKeepsDirection(t *testing.T) {
	v := Vec2{X: 30, Y: 40}.ScaleToLength(10)
	if math.Abs(v.X-6) > eps || math.Abs(v.Y-8) > eps {
		t.Errorf("ScaleToLength = %+v, want (6,8)", v)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	v := Vec2{X: 1, Y: 0}.Rotate(math.Pi / 2)
	if math.Abs(v.X) > eps || math.Abs(v.Y-1) > eps {
		t.Errorf("Rotate = %+v, want (0,1)", v)
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{725, 5},
		{-90, 270},
		{-720, 0},
		{-1e-15, 0},
	}
	for _, tt := range tests {
		got := WrapDegrees(tt.in)
		if math.Abs(got-tt.want) > eps {
			t.Errorf("WrapDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("WrapDegrees(%v) = %v out of [0,360)", tt.in, got)
		}
	}
}
