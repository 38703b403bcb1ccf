// Package audio plays the game's short sound effects. Playback is fire and
// forget: a missing clip or an unavailable sound device never stops the game.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// Clip names.
const (
	ClipShot              = "shot"
	ClipAsteroidExplosion = "asteroid_explosion"
	ClipShipExplosion     = "ship_explosion"
)

// Volumes maps each clip to its playback volume in [0, 1].
var Volumes = map[string]float64{
	ClipShot:              0.3,
	ClipAsteroidExplosion: 0.5,
	ClipShipExplosion:     0.7,
}

const sampleRate = beep.SampleRate(44100)

// Player plays a named clip without blocking.
type Player interface {
	Play(clip string)
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Play(string) {}

// ClipPlayer mixes decoded clips into a single output stream.
type ClipPlayer struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	clips   map[string]*beep.Buffer
	volumes map[string]float64
	lock    func() // Guards the mixer against the output goroutine
	unlock  func()
}

// New loads every known clip from dir and starts the speaker. When the
// speaker cannot start, New logs a warning and returns Nop.
func New(dir string, logger *log.Logger) Player {
	if logger == nil {
		logger = log.Default()
	}

	clips := LoadClips(dir, logger)
	if len(clips) == 0 {
		logger.Warn("no audio clips loaded, sound disabled", "dir", dir)
		return Nop{}
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		logger.Warn("speaker unavailable, sound disabled", "err", err)
		return Nop{}
	}

	p := newClipPlayer(clips, speaker.Lock, speaker.Unlock)
	speaker.Play(p.mixer)
	logger.Debug("audio ready", "clips", len(clips))
	return p
}

func newClipPlayer(clips map[string]*beep.Buffer, lock, unlock func()) *ClipPlayer {
	return &ClipPlayer{
		mixer:   &beep.Mixer{},
		clips:   clips,
		volumes: Volumes,
		lock:    lock,
		unlock:  unlock,
	}
}

// Play queues clip on the mixer. Unknown clips are ignored.
func (p *ClipPlayer) Play(clip string) {
	buf, ok := p.clips[clip]
	if !ok {
		return
	}
	s := withVolume(buf.Streamer(0, buf.Len()), p.volumes[clip])

	p.mu.Lock()
	defer p.mu.Unlock()
	p.lock()
	p.mixer.Add(s)
	p.unlock()
}

// Playing returns the number of clips still sounding.
func (p *ClipPlayer) Playing() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}

// LoadClips decodes <dir>/<clip>.wav for every known clip. Clips that fail to
// load are logged and left out.
func LoadClips(dir string, logger *log.Logger) map[string]*beep.Buffer {
	clips := make(map[string]*beep.Buffer, len(Volumes))
	for name := range Volumes {
		buf, err := loadWAV(filepath.Join(dir, name+".wav"))
		if err != nil {
			logger.Warn("clip disabled", "clip", name, "err", err)
			continue
		}
		clips[name] = buf
	}
	return clips
}

// ErrEmptyClip is returned for a WAV file without samples.
var ErrEmptyClip = errors.New("audio: empty clip")

func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}
	format.SampleRate = sampleRate

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyClip)
	}
	return buf, nil
}

// withVolume scales s by a linear volume. math.Log2(0) is -Inf, so zero is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
