package obj

// Intent is the player input for one sub-step.
type Intent struct {
	// Move is -1 for left, 1 for right and 0 for none.
	Move int
	Jump bool
	Duck bool
}

// Controller supplies player intents. Poll is called once per sub-step.
type Controller interface {
	Poll() Intent
}

// Poll lets a fixed Intent act as its own Controller.
func (i Intent) Poll() Intent {
	return i
}

// applyInput feeds one intent into the player the way a held keyboard does:
// a new jump needs the key released since the last one.
func (p *Player) applyInput(in Intent) {
	if p == nil || !p.alive {
		return
	}
	switch {
	case in.Move < 0:
		p.horizontalMove(-1)
	case in.Move > 0:
		p.horizontalMove(1)
	default:
		p.horizontalMove(0)
	}

	if in.Jump && !p.jumping {
		if p.jump() && p.world != nil {
			p.world.play(SoundJump)
		}
	} else if !in.Jump && p.jumping {
		p.endJump()
	}

	if in.Duck {
		p.duck()
	} else {
		p.ducking = false
	}
}
