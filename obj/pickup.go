package obj

import "github.com/milk9111/platformer/common"

// Coin is a passable pickup that spins in place.
type Coin struct {
	Body
	frame     int
	frameTime float64
}

func newCoin(p Params, free bool) *Coin {
	p.Kind = KindCoin
	p = align(p, free)
	c := &Coin{Body: newStatic(p, common.TileSize, common.TileSize)}
	c.passable = true
	return c
}

func NewCoin(p Params) *Coin { return newCoin(p, false) }

func (c *Coin) Kind() Kind         { return KindCoin }
func (c *Coin) Category() Category { return CategoryActive }

func (c *Coin) Sprite() Sprite {
	return Sprite{Name: SpriteCoin, Frame: c.frame, W: c.W, H: c.H}
}

func (c *Coin) update(dt float64) error {
	c.frameTime += dt
	ft := DefaultTuning().CoinFrameTime
	if c.world != nil {
		ft = c.world.tuning.CoinFrameTime
	}
	if c.frameTime > ft {
		c.frameTime = 0
		c.frame = (c.frame + 1) % coinFrames
	}
	return nil
}

func (c *Coin) react(_ Axis, other Entity) {
	p, ok := other.(*Player)
	if !ok || c.world == nil {
		return
	}
	p.coins++
	p.score += 100
	w := c.world
	w.fail(w.Remove(c))
	w.play(SoundCoin)
}

// Mushroom slides along the ground and powers the player up on touch.
type Mushroom struct {
	Body
	dir   int
	color string
}

func NewMushroom(p Params) *Mushroom {
	p.Kind = KindMushroom
	if p.W <= 0 || p.H <= 0 {
		sz := spriteSizes[SpriteMushroom]
		p.W, p.H = sz.w, sz.h
	}
	if p.Color == "" {
		p.Color = "red"
	}
	if p.Dir == 0 {
		p.Dir = 1
	}
	m := &Mushroom{Body: newBody(p, p.W, p.H), dir: p.Dir, color: p.Color}
	m.Vel.X = float64(m.dir) * DefaultTuning().MushroomSpeed
	return m
}

func (m *Mushroom) Kind() Kind         { return KindMushroom }
func (m *Mushroom) Category() Category { return CategoryActive }
func (m *Mushroom) Dir() int           { return m.dir }
func (m *Mushroom) Color() string      { return m.color }

func (m *Mushroom) Sprite() Sprite {
	return Sprite{Name: SpriteMushroom, Variant: m.color, W: m.W, H: m.H}
}

func (m *Mushroom) speed() float64 {
	if m.world == nil {
		return DefaultTuning().MushroomSpeed
	}
	return m.world.tuning.MushroomSpeed
}

func (m *Mushroom) update(dt float64) error {
	m.Vel.X = float64(m.dir) * m.speed()
	_, err := m.world.move(m, dt)
	return err
}

func (m *Mushroom) react(axis Axis, other Entity) {
	w := m.world
	if w == nil {
		return
	}
	switch {
	case other.Kind() == KindPlayer:
		other.(*Player).grow()
		w.fail(w.Remove(m))
		w.play(SoundPowerup)
	case other.Kind().IsEnemy():
		w.fail(w.Remove(m))
	case axis == Horizontal && !other.Base().passable:
		m.dir = -m.dir
		m.Vel.X = float64(m.dir) * m.speed()
	}
}
