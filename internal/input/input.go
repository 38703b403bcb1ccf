// Package input turns raw key bytes into the game's logical intents.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, never releases.
const keyHoldDuration = 80 * time.Millisecond

// Input represents the current frame's intents. TurnLeft, TurnRight, Thrust and
// Fire are held intents; Quit and Restart are one-shot events.
type Input struct {
	TurnLeft  bool
	TurnRight bool
	Thrust    bool
	Fire      bool
	Quit      bool
	Restart   bool
}

// Any reports whether any intent is active.
func (in Input) Any() bool {
	return in.TurnLeft || in.TurnRight || in.Thrust || in.Fire || in.Quit || in.Restart
}

// keyState tracks the last time each held key was seen, plus an escape
// sequence that was cut off at the end of the previous read.
type keyState struct {
	left   time.Time
	right  time.Time
	thrust time.Time
	fire   time.Time

	pending  []byte    // Unfinished escape sequence
	escSince time.Time // When pending started
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	closed bool
	state  keyState
	now    func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// Reset forgets all held keys, so a key pressed before a state change does
// not leak into the next one. An unfinished escape sequence is kept.
func (s *Stream) Reset() {
	s.state = keyState{pending: s.state.pending, escSince: s.state.escSince}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys, including ones split across calls. Held keys stay active for
// keyHoldDuration after their last byte so simultaneous keys combine.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := parse(&s.state, buf, s.now())
	if s.closed {
		in.Quit = true
	}
	return in
}

const esc = '\x1b'

// parse applies buf to the held-key state and returns the resulting intents at now.
//
// Escape sequences may be split across reads, so an unfinished one is kept
// in state and joined with the next buffer. A bare ESC quits only once it has
// stood alone for keyHoldDuration; a partial sequence that old is dropped.
func parse(state *keyState, buf []byte, now time.Time) Input {
	var in Input

	data := buf
	if len(state.pending) > 0 {
		data = append(state.pending, buf...)
		state.pending = nil
	}

	for i := 0; i < len(data); i++ {
		b := data[i]
		if b != esc {
			applyByte(state, &in, b, now)
			continue
		}

		n := escapeLen(data[i:])
		if n == 0 {
			// Incomplete: wait for the rest unless it has waited long enough.
			if state.escSince.IsZero() {
				state.escSince = now
			}
			if now.Sub(state.escSince) < keyHoldDuration {
				state.pending = append([]byte(nil), data[i:]...)
				break
			}
			if len(data[i:]) == 1 {
				in.Quit = true
			}
			state.escSince = time.Time{}
			break
		}

		applyEscape(state, data[i:i+n], now)
		state.escSince = time.Time{}
		i += n - 1
	}

	in.TurnLeft = now.Sub(state.left) < keyHoldDuration
	in.TurnRight = now.Sub(state.right) < keyHoldDuration
	in.Thrust = now.Sub(state.thrust) < keyHoldDuration
	in.Fire = now.Sub(state.fire) < keyHoldDuration
	return in
}

// escapeLen returns the length of the escape sequence at the start of seq,
// or 0 when seq ends before the sequence does. seq[0] is ESC.
func escapeLen(seq []byte) int {
	if len(seq) < 2 {
		return 0
	}
	switch seq[1] {
	case '[': // CSI: parameters, then a final byte in 0x40-0x7E
		for j := 2; j < len(seq); j++ {
			if seq[j] >= 0x40 && seq[j] <= 0x7e {
				return j + 1
			}
		}
		return 0
	case 'O': // SS3: one final byte
		if len(seq) < 3 {
			return 0
		}
		return 3
	}
	// ESC plus any other byte is an Alt chord. Drop the ESC only.
	return 1
}

// applyEscape handles one complete escape sequence. Plain arrows steer;
// anything else is ignored.
func applyEscape(state *keyState, seq []byte, now time.Time) {
	if len(seq) != 3 || (seq[1] != '[' && seq[1] != 'O') {
		return
	}
	switch seq[2] {
	case 'A': // Up arrow
		state.thrust = now
	case 'C': // Right arrow
		state.right = now
	case 'D': // Left arrow
		state.left = now
	}
}

// applyByte updates held keys and one-shot events for a single byte.
func applyByte(state *keyState, in *Input, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl+C arrives as a byte in raw mode
		in.Quit = true
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.thrust = now
	case ' ':
		state.fire = now
	case '\n', '\r', 'r', 'R':
		in.Restart = true
	}
}
