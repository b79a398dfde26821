package platform

import (
	"bytes"
	"fmt"
	"io/fs"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/milk9111/truecolor/assets"
	"github.com/milk9111/truecolor/audio"
)

const sampleRate = 44100

// Sounds loads effects from an asset file system and plays them through
// one shared ebiten audio context.
type Sounds struct {
	fsys fs.FS
	ctx  *ebaudio.Context
}

var _ audio.Backend = (*Sounds)(nil)

// NewSounds creates the audio context. Ebiten allows one per process.
func NewSounds(fsys fs.FS) *Sounds {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(sampleRate)
	}
	return &Sounds{fsys: fsys, ctx: ctx}
}

func (s *Sounds) Load(name string) (audio.Clip, error) {
	b, err := assets.LoadFile(s.fsys, assets.SoundPath(name))
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(s.ctx.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("platform: decode %s: %w", name, err)
	}
	p, err := s.ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("platform: player %s: %w", name, err)
	}
	return &clip{player: p}, nil
}

type clip struct {
	player *ebaudio.Player
}

func (c *clip) Play() { c.player.Play() }
func (c *clip) Stop() { c.player.Pause() }
func (c *clip) IsPlaying() bool { return c.player.IsPlaying() }

func (c *clip) Rewind() {
	_ = c.player.Rewind()
}
