package obj

import "github.com/milk9111/platformer/common"

// Flagpole ends the level once the player slides down to its base.
type Flagpole struct {
	Body
}

func NewFlagpole(p Params) *Flagpole {
	p.Kind = KindFlagpole
	if p.W <= 0 || p.H <= 0 {
		sz := spriteSizes[SpriteFlagpole]
		p.W, p.H = sz.w, sz.h
	}
	return &Flagpole{Body: newStatic(p, p.W, p.H)}
}

func (f *Flagpole) Kind() Kind           { return KindFlagpole }
func (f *Flagpole) Category() Category   { return CategoryActive }
func (f *Flagpole) update(float64) error { return nil }

func (f *Flagpole) Sprite() Sprite {
	return Sprite{Name: SpriteFlagpole, W: f.W, H: f.H}
}

// react holds the player on the pole and finishes the level when its feet
// get within 20px of the base.
func (f *Flagpole) react(_ Axis, other Entity) {
	p, ok := other.(*Player)
	if !ok || f.world == nil {
		return
	}
	if p.Pos.X > f.Pos.X+float64(f.W/3) {
		p.Pos.X = f.Pos.X + float64(4*f.W/7)
	}
	base := f.Pos.Y + float64(f.H) - 20
	switch {
	case p.Pos.Y+float64(p.H) >= base:
		p.Pos.Y = base - float64(p.H)
		if !f.world.GameOver {
			f.world.play(SoundStageClear)
		}
		f.world.GameOver = true
		f.world.Won = true
	case p.Pos.Y < f.Pos.Y:
		p.Pos.Y = f.Pos.Y
	}
}

// Pipe is a solid, immovable obstacle sized in whole tiles. Dir rotates the
// opening in quarter turns.
type Pipe struct {
	Body
	dir int
}

func newPipe(p Params, free bool) *Pipe {
	p.Kind = KindPipe
	if p.W <= 0 {
		p.W = 2
	}
	if p.H <= 0 {
		p.H = 2
	}
	p.Dir = ((p.Dir % 4) + 4) % 4
	p = align(p, free)
	return &Pipe{Body: newStatic(p, p.W*common.TileSize, p.H*common.TileSize), dir: p.Dir}
}

func NewPipe(p Params) *Pipe { return newPipe(p, false) }

func (p *Pipe) Kind() Kind           { return KindPipe }
func (p *Pipe) Category() Category   { return CategoryActive }
func (p *Pipe) update(float64) error { return nil }

func (p *Pipe) Sprite() Sprite {
	return Sprite{Name: SpritePipe, W: p.W, H: p.H, Turns: p.dir}
}

// Decoration is render-only scenery.
type Decoration struct {
	Body
	name string
}

func NewDecoration(p Params) *Decoration {
	p.Kind = KindDecoration
	if p.W <= 0 || p.H <= 0 {
		sz := DecorationSprites[p.Sprite]
		if p.W <= 0 {
			p.W = sz.W
		}
		if p.H <= 0 {
			p.H = sz.H
		}
	}
	d := &Decoration{Body: newStatic(p, p.W, p.H), name: p.Sprite}
	d.passable = true
	return d
}

func (d *Decoration) Kind() Kind           { return KindDecoration }
func (d *Decoration) Category() Category   { return CategoryBackground }
func (d *Decoration) update(float64) error { return nil }

func (d *Decoration) Sprite() Sprite {
	return Sprite{Name: SpriteDecoration, Variant: d.name, W: d.W, H: d.H}
}
