package main

import (
	"log"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/obj"
)

// gameAudio routes world sounds to the sound bank, honouring the mute
// setting.
type gameAudio struct {
	bank  *assets.SoundBank
	muted bool
}

func newGameAudio(s Settings) *gameAudio {
	a := &gameAudio{}
	bank, err := assets.NewSoundBank(assets.AudioContext())
	if err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		a.bank = bank
	}
	a.Apply(s)
	return a
}

func (a *gameAudio) Apply(s Settings) {
	a.muted = !s.Sound
	if a.bank != nil {
		a.bank.SetVolume(s.Volume)
	}
}

func (a *gameAudio) Play(s obj.Sound) {
	if a.muted || a.bank == nil {
		return
	}
	a.bank.Play(s)
}
