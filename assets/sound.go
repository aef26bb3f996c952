package assets

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// audioCtx returns the process-wide audio context. Ebiten allows only one,
// so it is created on first use.
func audioCtx() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

// SoundEffect is a short clip that restarts from the beginning every time it
// is played. The zero value is silent.
type SoundEffect struct {
	Name   string
	Volume float64

	player *audio.Player
}

// Play rewinds and plays the clip.
func (s *SoundEffect) Play() {
	if s == nil || s.player == nil {
		return
	}
	s.player.SetVolume(s.Volume)
	if err := s.player.Rewind(); err != nil {
		log.Printf("assets: rewind %s: %v", s.Name, err)
		return
	}
	s.player.Play()
}

// Silent reports whether the effect has no clip behind it.
func (s *SoundEffect) Silent() bool {
	return s == nil || s.player == nil
}

// LoadEffect loads a .wav or .ogg clip from the assets.
func LoadEffect(path string, volume float64) (*SoundEffect, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	player, err := newPlayer(path, b)
	if err != nil {
		return nil, err
	}
	return &SoundEffect{Name: path, Volume: volume, player: player}, nil
}

// LoadEffectOr loads path or returns a silent effect when it cannot be read.
func LoadEffectOr(path string, volume float64) *SoundEffect {
	if path == "" {
		return &SoundEffect{}
	}
	s, err := LoadEffect(path, volume)
	if err != nil {
		log.Printf("assets: %v, effect will be silent", err)
		return &SoundEffect{Name: path, Volume: volume}
	}
	return s
}

func newPlayer(path string, b []byte) (*audio.Player, error) {
	ctx := audioCtx()
	reader := bytes.NewReader(b)

	var (
		stream io.Reader
		err    error
	)
	switch clean := strings.ToLower(cleanAssetPath(path)); {
	case strings.HasSuffix(clean, ".wav"):
		stream, err = wav.DecodeWithSampleRate(ctx.SampleRate(), reader)
	case strings.HasSuffix(clean, ".ogg"):
		stream, err = vorbis.DecodeWithSampleRate(ctx.SampleRate(), reader)
	default:
		// already-decoded PCM in Ebiten's native format
		return ctx.NewPlayerFromBytes(b), nil
	}
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return ctx.NewPlayer(stream)
}
