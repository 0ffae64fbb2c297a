package assets

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/platformer/obj"
)

// SoundBank holds every decoded effect and plays them fire-and-forget.
type SoundBank struct {
	ctx *audio.Context
	pcm map[obj.Sound][]byte

	mu     sync.Mutex
	volume float64
}

func NewSoundBank(ctx *audio.Context) (*SoundBank, error) {
	b := &SoundBank{ctx: ctx, pcm: make(map[obj.Sound][]byte, len(obj.Sounds)), volume: 1}
	for _, s := range obj.Sounds {
		data, err := LoadSound(s)
		if err != nil {
			return nil, fmt.Errorf("assets: sound bank: %w", err)
		}
		b.pcm[s] = data
	}
	return b, nil
}

func (b *SoundBank) SetVolume(v float64) {
	b.mu.Lock()
	b.volume = v
	b.mu.Unlock()
}

// Play starts s on a fresh player. Unknown sounds are ignored.
func (b *SoundBank) Play(s obj.Sound) {
	data, ok := b.pcm[s]
	if !ok || b.ctx == nil {
		return
	}
	b.mu.Lock()
	vol := b.volume
	b.mu.Unlock()
	if vol <= 0 {
		return
	}

	p := b.ctx.NewPlayerFromBytes(data)
	p.SetVolume(vol)
	p.Play()
}
