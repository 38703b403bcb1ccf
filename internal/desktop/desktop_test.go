package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/asteroids3d/internal/input"
)

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, want := range keys {
			if k == want {
				return true
			}
		}
		return false
	}
}

func TestReadKeys(t *testing.T) {
	none := keySet()
	tests := []struct {
		name        string
		pressed     []ebiten.Key
		justPressed []ebiten.Key
		want        input.Input
	}{
		{"idle", nil, nil, input.Input{}},
		{"arrows", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowUp}, nil, input.Input{TurnLeft: true, Thrust: true}},
		{"wasd", []ebiten.Key{ebiten.KeyD, ebiten.KeyW}, nil, input.Input{TurnRight: true, Thrust: true}},
		{"fire", []ebiten.Key{ebiten.KeySpace}, nil, input.Input{Fire: true}},
		{"escape", nil, []ebiten.Key{ebiten.KeyEscape}, input.Input{Quit: true}},
		{"enter", nil, []ebiten.Key{ebiten.KeyEnter}, input.Input{Restart: true}},
		// Held escape must not quit again after the first frame.
		{"escape held", []ebiten.Key{ebiten.KeyEscape}, nil, input.Input{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pressed, just := none, none
			if tt.pressed != nil {
				pressed = keySet(tt.pressed...)
			}
			if tt.justPressed != nil {
				just = keySet(tt.justPressed...)
			}
			if got := readKeys(pressed, just); got != tt.want {
				t.Errorf("readKeys() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
