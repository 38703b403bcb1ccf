package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParseKeys(t *testing.T) {
	now := time.Unix(1000, 0)
	tests := []struct {
		name string
		keys string
		want Input
	}{
		{"letters rotate", "a", Input{TurnLeft: true}},
		{"vim keys rotate", "l", Input{TurnRight: true}},
		{"thrust", "w", Input{Thrust: true}},
		{"alt thrust", "i", Input{Thrust: true}},
		{"fire", " ", Input{Fire: true}},
		{"left arrow", "\x1b[D", Input{TurnLeft: true}},
		{"right arrow", "\x1b[C", Input{TurnRight: true}},
		{"up arrow", "\x1b[A", Input{Thrust: true}},
		{"down arrow ignored", "\x1b[B", Input{}},
		{"ss3 up arrow", "\x1bOA", Input{Thrust: true}},
		{"ss3 left arrow", "\x1bOD", Input{TurnLeft: true}},
		{"modified arrow ignored", "\x1b[1;5C", Input{}},
		{"focus event ignored", "\x1b[I", Input{}},
		{"unknown csi then key", "\x1b[200~w", Input{Thrust: true}},
		{"alt chord drops escape", "\x1bd", Input{TurnRight: true}},
		{"lone escape waits", "\x1b", Input{}},
		{"q quits", "q", Input{Quit: true}},
		{"enter restarts", "\r", Input{Restart: true}},
		{"r restarts", "r", Input{Restart: true}},
		{"combination", "w \x1b[D", Input{Thrust: true, Fire: true, TurnLeft: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st keyState
			if got := parse(&st, []byte(tt.keys), now); got != tt.want {
				t.Errorf("parse(%q) = %+v, want %+v", tt.keys, got, tt.want)
			}
		})
	}
}

func TestSplitEscapeSequence(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   Input
	}{
		{"csi after escape", []string{"\x1b", "[D"}, Input{TurnLeft: true}},
		{"csi after bracket", []string{"\x1b[", "D"}, Input{TurnLeft: true}},
		{"ss3 after escape", []string{"\x1b", "OC"}, Input{TurnRight: true}},
		{"long csi", []string{"\x1b[1;", "5C"}, Input{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st keyState
			now := time.Unix(1000, 0)
			var got Input
			for i, chunk := range tt.chunks {
				got = parse(&st, []byte(chunk), now.Add(time.Duration(i)*16*time.Millisecond))
				if got.Quit {
					t.Fatalf("chunk %d of %q quit", i, tt.chunks)
				}
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			if len(st.pending) != 0 {
				t.Errorf("sequence left pending: %q", st.pending)
			}
		})
	}
}

func TestLoneEscapeQuitsAfterHold(t *testing.T) {
	var st keyState
	start := time.Unix(1000, 0)

	if in := parse(&st, []byte("\x1b"), start); in.Quit {
		t.Fatal("escape must not quit before the hold window")
	}
	if in := parse(&st, nil, start.Add(keyHoldDuration/2)); in.Quit {
		t.Fatal("escape must not quit before the hold window")
	}
	if in := parse(&st, nil, start.Add(keyHoldDuration)); !in.Quit {
		t.Error("lone escape should quit once the hold window passed")
	}
	if in := parse(&st, nil, start.Add(2*keyHoldDuration)); in.Quit {
		t.Error("quit must fire only once")
	}
}

func TestStalePartialSequenceDropped(t *testing.T) {
	var st keyState
	start := time.Unix(1000, 0)

	parse(&st, []byte("\x1b["), start)
	if in := parse(&st, nil, start.Add(keyHoldDuration)); in.Quit {
		t.Error("a partial sequence must not quit")
	}
	if len(st.pending) != 0 {
		t.Fatalf("stale sequence kept: %q", st.pending)
	}
	// The next key is read on its own.
	if in := parse(&st, []byte("D"), start.Add(keyHoldDuration+time.Millisecond)); !in.TurnRight {
		t.Errorf("got %+v, want plain d", in)
	}
}

func TestStreamJoinsSplitArrow(t *testing.T) {
	s := newStream()
	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }

	s.ch <- '\x1b'
	if in := ReadInput(s); in.Quit || in.TurnRight || in.TurnLeft {
		t.Fatalf("first half gave %+v", in)
	}

	now = now.Add(16 * time.Millisecond)
	s.ch <- '['
	s.ch <- 'D'
	in := ReadInput(s)
	if !in.TurnLeft || in.TurnRight || in.Quit {
		t.Errorf("left arrow gave %+v", in)
	}
}

func TestHeldKeysExpire(t *testing.T) {
	var st keyState
	start := time.Unix(1000, 0)
	parse(&st, []byte("w"), start)

	if in := parse(&st, nil, start.Add(keyHoldDuration/2)); !in.Thrust {
		t.Error("thrust should still be held")
	}
	if in := parse(&st, nil, start.Add(keyHoldDuration)); in.Thrust {
		t.Error("thrust should have been released")
	}
}

func TestEventsDoNotRepeat(t *testing.T) {
	var st keyState
	now := time.Unix(1000, 0)
	if in := parse(&st, []byte("r"), now); !in.Restart {
		t.Fatal("expected restart")
	}
	if in := parse(&st, nil, now); in.Restart {
		t.Error("restart must fire only once")
	}
}

func TestStreamQuitsOnEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if in := ReadInput(s); in.Quit {
			if !s.Closed() {
				t.Error("stream should report closed")
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("closed input never produced Quit")
}

func TestStreamReset(t *testing.T) {
	s := newStream()
	s.ch <- ' '
	if in := ReadInput(s); !in.Fire {
		t.Fatal("expected fire")
	}
	s.Reset()
	if in := ReadInput(s); in.Fire {
		t.Error("reset should release held keys")
	}
}
