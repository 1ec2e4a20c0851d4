package ui

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/Garsondee/Feline-Finances/internal/game"
)

const sampleRate = 44100

// Sounds plays the controller's cues. The samples are synthesised at startup
// so the binary ships no asset files.
type Sounds struct {
	ctx   *audio.Context
	click *audio.Player
	fail  *audio.Player
	muted bool
}

func NewSounds() *Sounds {
	ctx := audio.NewContext(sampleRate)
	return &Sounds{
		ctx:   ctx,
		click: ctx.NewPlayerFromBytes(tone(880, 60, 0.25)),
		fail:  ctx.NewPlayerFromBytes(append(tone(220, 90, 0.3), tone(180, 120, 0.3)...)),
	}
}

// Play starts the sample for c from the beginning.
func (s *Sounds) Play(c game.Cue) {
	if s == nil || s.muted {
		return
	}
	p := s.click
	if c == game.CueError {
		p = s.fail
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

func (s *Sounds) ToggleMute() { s.muted = !s.muted }

// tone renders a sine burst as 16-bit little-endian stereo PCM with a linear
// fade out.
func tone(freq float64, ms int, volume float64) []byte {
	n := sampleRate * ms / 1000
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * volume * env
		sample := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(sample))
	}
	return buf
}
