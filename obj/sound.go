package obj

// Sound names a fire-and-forget sound effect.
type Sound string

const (
	SoundCoin           Sound = "coin"
	SoundJump           Sound = "jump"
	SoundKick           Sound = "kick"
	SoundDie            Sound = "die"
	SoundPowerup        Sound = "powerup"
	SoundPowerupAppears Sound = "powerup_appears"
	SoundStageClear     Sound = "stage_clear"
)

// Sounds lists every effect the simulation can trigger.
var Sounds = []Sound{
	SoundCoin,
	SoundJump,
	SoundKick,
	SoundDie,
	SoundPowerup,
	SoundPowerupAppears,
	SoundStageClear,
}

// Audio plays sound effects. Implementations must not block.
type Audio interface {
	Play(s Sound)
}

// NopAudio discards every sound.
type NopAudio struct{}

func (NopAudio) Play(Sound) {}
