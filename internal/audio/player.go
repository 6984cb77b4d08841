// Package audio plays the game's sound cues. Playback is best effort: when no
// audio device is available the game runs silently.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a sound.
type Cue int

const (
	CueCatch Cue = iota
)

// Player plays sound cues.
type Player interface {
	Play(c Cue)
	SetMuted(muted bool)
	Muted() bool
}

// Speaker plays cues through the local audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	muted  bool
	closed bool
}

// NewSpeaker opens the audio device.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play starts a cue without blocking. Muted or closed speakers ignore it.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.muted || s.closed {
		return
	}

	var (
		st  beep.Streamer
		err error
	)
	switch c {
	case CueCatch:
		st, err = CatchTone(sampleRate)
	default:
		return
	}
	if err != nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// SetMuted enables or disables playback.
func (s *Speaker) SetMuted(muted bool) {
	s.mu.Lock()
	s.muted = muted
	s.mu.Unlock()
}

// Muted reports whether playback is disabled.
func (s *Speaker) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Close stops all sounds and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}

// Silent is a Player that records cues instead of playing them.
// It is used for SSH sessions, --mute, and hosts without audio.
type Silent struct {
	mu     sync.Mutex
	muted  bool
	played []Cue
}

// Play records the cue unless muted.
func (s *Silent) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.muted {
		s.played = append(s.played, c)
	}
}

// SetMuted enables or disables recording.
func (s *Silent) SetMuted(muted bool) {
	s.mu.Lock()
	s.muted = muted
	s.mu.Unlock()
}

// Muted reports whether the player is muted.
func (s *Silent) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Played returns the cues recorded so far.
func (s *Silent) Played() []Cue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Cue(nil), s.played...)
}
