// Package audio plays the synth effects through oto in reaction to game
// events.
package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"quizsky/internal/audio/synth"
	"quizsky/internal/game"
)

const bitDepth = 0 // 32-bit float (oto.FormatFloat32LE)

// System owns the oto context. A nil *System is valid and silent.
type System struct {
	ctx   *oto.Context
	ready chan struct{}

	mu     sync.Mutex
	volume float64
	muted  bool
	cache  map[synth.Sound][]byte
}

// New opens the default output device.
func New(volume float64, muted bool) (*System, error) {
	ctx, ready, err := oto.NewContext(synth.SampleRate, synth.ChannelCount, bitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio init: %w", err)
	}
	s := &System{
		ctx:   ctx,
		ready: ready,
		cache: make(map[synth.Sound][]byte),
	}
	s.SetVolume(volume)
	s.SetMuted(muted)
	return s, nil
}

// Attach plays the matching effect for every event on bus.
func (s *System) Attach(bus *game.EventBus) {
	if s == nil || bus == nil {
		return
	}
	bus.SubscribeAll(func(e game.Event) {
		if kind, ok := synth.ForEvent(e); ok {
			s.Play(kind)
		}
	})
}

func (s *System) SetVolume(vol float64) {
	if s == nil {
		return
	}
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}
	s.mu.Lock()
	s.volume = vol
	s.mu.Unlock()
}

func (s *System) SetMuted(m bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.muted = m
	s.mu.Unlock()
}

// Play starts kind on its own player and returns immediately. Sounds are
// dropped until the device reports ready.
func (s *System) Play(kind synth.Sound) {
	if s == nil {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}

	s.mu.Lock()
	if s.muted || s.volume <= 0 {
		s.mu.Unlock()
		return
	}
	vol := s.volume
	samples, ok := s.cache[kind]
	if !ok {
		samples = synth.Generate(kind)
		s.cache[kind] = samples
	}
	s.mu.Unlock()
	if len(samples) == 0 {
		return
	}

	go func() {
		player := s.ctx.NewPlayer(synth.NewReader(samples))
		player.SetVolume(vol)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			slog.Debug("close player", "sound", kind.String(), "err", err)
		}
	}()
}
