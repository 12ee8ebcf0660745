package platform

import (
	"errors"
	"sync"

	"github.com/gen2brain/beeep"
)

// ErrReleased reports use of a released player.
var ErrReleased = errors.New("sound player released")

// SoundPlayer is a scoped playback handle. Release must be called once the
// owner is done with it.
type SoundPlayer interface {
	PlayOnce() error
	Release() error
}

// Sound references understood by NewSoundPlayer.
const (
	SoundNotification = "notification"
	SoundAlarm        = "alarm"
)

// Tone describes a beep.
type Tone struct {
	Frequency  float64
	DurationMS int
}

// DefaultTone returns the tone for a sound reference.
func DefaultTone(ref string) Tone {
	if ref == SoundAlarm {
		return Tone{Frequency: 880, DurationMS: 800}
	}
	return Tone{Frequency: beeep.DefaultFreq, DurationMS: beeep.DefaultDuration}
}

// BeepPlayer plays a tone on the system speaker.
type BeepPlayer struct {
	tone Tone
	beep func(freq float64, duration int) error

	mu       sync.Mutex
	released bool
	plays    int
}

// NewBeepPlayer acquires a player for tone.
func NewBeepPlayer(tone Tone) *BeepPlayer {
	return &BeepPlayer{tone: tone, beep: beeep.Beep}
}

// PlayOnce plays the tone once.
func (p *BeepPlayer) PlayOnce() error {
	p.mu.Lock()
	if p.released {
		p.mu.Unlock()
		return ErrReleased
	}
	p.plays++
	p.mu.Unlock()
	return p.beep(p.tone.Frequency, p.tone.DurationMS)
}

// Release frees the player. Extra calls are no-ops.
func (p *BeepPlayer) Release() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.released = true
	return nil
}

// Plays returns how many times the tone was played.
func (p *BeepPlayer) Plays() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.plays
}

// NoopPlayer is used when sound is disabled.
type NoopPlayer struct{}

func (NoopPlayer) PlayOnce() error { return nil }
func (NoopPlayer) Release() error  { return nil }

// NewSoundPlayer acquires a player for ref, or a NoopPlayer when disabled.
func NewSoundPlayer(enabled bool, tone Tone) SoundPlayer {
	if !enabled {
		return NoopPlayer{}
	}
	return NewBeepPlayer(tone)
}
