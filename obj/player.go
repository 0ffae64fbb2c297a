package obj

import "math"

// Player is the singleton controlled by input.
type Player struct {
	Body

	dir       int
	frame     int // -1 shows the still pose
	frameTime float64
	sprite    string

	ducking     bool
	jumping     bool
	canJump     bool
	hit         float64 // invulnerable while > 0
	coins       int
	score       int
	goalReached bool
}

// NewPlayer builds a player at p. W and H, when set, override the initial
// box until the first sprite change.
func NewPlayer(p Params) *Player {
	p.Kind = KindPlayer
	sz := spriteSizes[SpritePlayerStill]
	w, h := scaled(sz.w, 1), scaled(sz.h, 1)
	if p.W > 0 && p.H > 0 {
		w, h = p.W, p.H
	}
	return &Player{
		Body:   newBody(p, w, h),
		dir:    1,
		frame:  -1,
		sprite: SpritePlayerStill,
	}
}

func (p *Player) Kind() Kind         { return KindPlayer }
func (p *Player) Category() Category { return CategoryPlayer }

func (p *Player) Coins() int         { return p.coins }
func (p *Player) Score() int         { return p.score }
func (p *Player) Ducking() bool      { return p.ducking }
func (p *Player) Invulnerable() bool { return p.hit > 0 }
func (p *Player) GoalReached() bool  { return p.goalReached }

// Grown reports the power-up state.
func (p *Player) Grown() bool { return p.lives > 1 }

func (p *Player) Sprite() Sprite {
	frame := p.frame
	if frame < 0 {
		frame = 0
	}
	return Sprite{Name: p.sprite, Frame: frame, W: p.W, H: p.H, FlipX: p.dir == -1 && p.alive}
}

// scaled shrinks a sprite dimension by the power-up factor.
func scaled(v, lives int) int {
	f := 1.3
	if lives > 1 {
		f = 1.1
	}
	return int(math.Round(float64(v) / f))
}

func (p *Player) horizontalMove(dir int) {
	if !p.ducking {
		p.Vel.X = float64(dir) * p.speed()
	}
	if dir != 0 {
		p.dir = dir
		if p.frame == -1 {
			p.frame = 0
		}
	} else {
		p.frameTime = 0
	}
	p.changeSprite()
}

func (p *Player) speed() float64 {
	if p.world == nil {
		return DefaultTuning().PlayerSpeed
	}
	return p.world.tuning.PlayerSpeed
}

func (p *Player) tuning() Tuning {
	if p.world == nil {
		return DefaultTuning()
	}
	return p.world.tuning
}

func (p *Player) duck() {
	p.Vel.X *= 0.985
	if math.Abs(p.Vel.X) < 5 {
		p.Vel.X = 0
	}
	if !p.ducking {
		p.ducking = true
		if p.Vel.Y != 0 {
			p.Vel.Y += p.tuning().DuckSpeed
		}
	}
}

// jump starts a jump when standing on something and the key has been
// released since the previous one.
func (p *Player) jump() bool {
	if !p.canJump || p.jumping {
		return false
	}
	p.canJump = false
	p.Vel.Y = -p.tuning().JumpSpeed
	p.changeSprite()
	p.jumping = true
	return true
}

// endJump cuts the ascent short when the key is released mid-air.
func (p *Player) endJump() {
	if p.jumping {
		p.Vel.Y = math.Max(0, p.Vel.Y)
		p.jumping = false
	}
}

// grow applies a mushroom.
func (p *Player) grow() {
	if p.alive {
		p.lives = 2
	}
}

func (p *Player) update(dt float64) error {
	w := p.world
	t := p.tuning()
	if p.movableY {
		if p.goalReached {
			p.Pos.Y += dt * t.FlagpoleSlideSpeed
		} else {
			p.Pos.Y += dt * p.Vel.Y
		}
		if err := w.resolve(p, Vertical); err != nil {
			return err
		}
		p.canJump = p.Vel.Y == 0
		p.Vel.Y += t.Gravity * dt
	}
	if p.world != w {
		return nil
	}
	if p.movableX {
		p.Pos.X += dt * p.Vel.X
		if err := w.resolve(p, Horizontal); err != nil {
			return err
		}
		w.keepInBounds(p)
		p.changeSprite()
		p.frameTime += dt
	}
	p.hit -= dt
	return w.err
}

// changeSprite picks the pose for the current state and resizes the box to
// it. Running and flagpole frames advance every PlayerFrameTime.
func (p *Player) changeSprite() {
	t := p.tuning()
	if p.frameTime > t.PlayerFrameTime {
		if p.goalReached {
			p.frame = (p.frame + 1) % playerFlagpoleFrames
		} else {
			p.frame = (p.frame + 1) % playerRunFrames
		}
		p.frameTime = 0
	}
	if (p.Vel.X == 0 && !p.goalReached) || !p.alive {
		p.frame = -1
	}

	switch {
	case p.frame == -1 && !p.ducking:
		p.sprite = SpritePlayerStill
	case p.goalReached:
		p.sprite = SpritePlayerFlagpole
	case p.ducking:
		p.sprite = SpritePlayerDuck
	default:
		p.sprite = SpritePlayerRun
	}

	sz := spriteSizes[p.sprite]
	if err := p.world.resize(p, scaled(sz.w, p.lives), scaled(sz.h, p.lives)); err != nil {
		p.world.fail(err)
	}
}

func (p *Player) react(axis Axis, other Entity) {
	ob := other.Base()
	switch {
	case other.Kind().IsEnemy() && ob.alive:
		stomp := axis == Vertical && p.Pos.Y < ob.Pos.Y && p.ducking && !sliding(other)
		if stomp {
			SetLives(other, ob.lives-1)
			p.score += 100
			p.world.play(SoundKick)
			p.canJump = true
			p.jump()
			// keep the full bounce even though the jump key is not held
			p.jumping = false
		} else if p.hit <= 0 {
			SetLives(p, p.lives-1)
			p.hit = p.tuning().InvulnerableTime
		}
	case other.Kind() == KindFlagpole:
		if !p.goalReached && p.Pos.X >= ob.Pos.X+float64(4*ob.W/7) {
			p.score += 1000
			p.goalReached = true
			p.frame = 0
			if p.world != nil {
				p.world.Won = true
			}
		}
	case axis == Vertical && !ob.passable && p.Pos.Y < ob.Pos.Y:
		p.canJump = true
	}
}

func (p *Player) onDeath() {
	p.die()
	if p.world != nil {
		p.world.GameOver = true
		p.world.play(SoundDie)
	}
}
