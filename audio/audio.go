// Package audio tracks named sound effects on top of a platform backend.
package audio

import (
	"github.com/charmbracelet/log"
)

// Clip is a single loaded sound.
type Clip interface {
	Play()
	Stop()
	Rewind()
	IsPlaying() bool
}

// Backend loads clips by name.
type Backend interface {
	Load(name string) (Clip, error)
}

// Sound wraps a clip with "already played" bookkeeping so per-frame code can
// ask for a sound every frame without restarting it.
type Sound struct {
	clip   Clip
	played bool
}

// Play starts the clip. A clip that is still playing is restarted only when
// restart is set.
func (s *Sound) Play(restart bool) {
	if s == nil || s.clip == nil {
		return
	}
	if s.clip.IsPlaying() {
		if !restart {
			return
		}
		s.clip.Stop()
	}
	s.clip.Rewind()
	s.clip.Play()
	s.played = true
}

// PlayOnce plays the clip if it has not been played since the last reset.
func (s *Sound) PlayOnce() {
	if s == nil || s.played {
		return
	}
	s.Play(false)
}

func (s *Sound) Stop() {
	if s == nil || s.clip == nil {
		return
	}
	s.clip.Stop()
}

func (s *Sound) IsPlaying() bool {
	if s == nil || s.clip == nil || !s.played {
		return false
	}
	return s.clip.IsPlaying()
}

// SetPlayed overrides the played flag.
func (s *Sound) SetPlayed(v bool) {
	if s == nil {
		return
	}
	s.played = v
}

func (s *Sound) Played() bool {
	return s != nil && s.played
}

// Bank lazily loads and caches sounds by name. Missing sounds are silent.
type Bank struct {
	backend Backend
	logger  *log.Logger
	sounds  map[string]*Sound
}

// NewBank creates a bank. A nil backend yields a silent bank.
func NewBank(backend Backend, logger *log.Logger) *Bank {
	return &Bank{backend: backend, logger: logger, sounds: make(map[string]*Sound)}
}

// Sound returns the named sound, loading it on first use.
func (b *Bank) Sound(name string) *Sound {
	if b == nil {
		return nil
	}
	if s, ok := b.sounds[name]; ok {
		return s
	}
	s := &Sound{}
	if b.backend != nil {
		clip, err := b.backend.Load(name)
		if err != nil {
			if b.logger != nil {
				b.logger.Warn("sound unavailable", "name", name, "err", err)
			}
		} else {
			s.clip = clip
		}
	}
	b.sounds[name] = s
	return s
}

// Play restarts the named sound.
func (b *Bank) Play(name string) {
	b.Sound(name).Play(true)
}

// PlayOnce plays the named sound unless it already played.
func (b *Bank) PlayOnce(name string) {
	b.Sound(name).PlayOnce()
}

// Loop starts the named sound unless it is already playing.
func (b *Bank) Loop(name string) {
	b.Sound(name).Play(false)
}

func (b *Bank) Stop(name string) {
	b.Sound(name).Stop()
}

func (b *Bank) IsPlaying(name string) bool {
	return b.Sound(name).IsPlaying()
}

func (b *Bank) SetPlayed(name string, v bool) {
	b.Sound(name).SetPlayed(v)
}

// Reset stops every sound and clears the played flags.
func (b *Bank) Reset() {
	if b == nil {
		return
	}
	for _, s := range b.sounds {
		s.Stop()
		s.SetPlayed(false)
	}
}
