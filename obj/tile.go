package obj

import (
	"github.com/milk9111/platformer/common"
)

// align snaps a position to the tile grid unless free is set (palette
// previews).
func align(p Params, free bool) Params {
	if !free {
		p.X = common.Snap(p.X, common.TileSize)
		p.Y = common.Snap(p.Y, common.TileSize)
	}
	return p
}

func newStatic(p Params, w, h int) Body {
	b := newBody(p, w, h)
	b.setImmovable()
	return b
}

// NormalTile is a static, solid grid block.
type NormalTile struct {
	Body
	name string
}

func newNormalTile(p Params, free bool) *NormalTile {
	p.Kind = KindTile
	p = align(p, free)
	return &NormalTile{Body: newStatic(p, common.TileSize, common.TileSize), name: p.Sprite}
}

func NewNormalTile(p Params) *NormalTile { return newNormalTile(p, false) }

func (t *NormalTile) Kind() Kind           { return KindTile }
func (t *NormalTile) Category() Category   { return CategoryTile }
func (t *NormalTile) update(float64) error { return nil }

func (t *NormalTile) Sprite() Sprite {
	return Sprite{Name: SpriteTile, Variant: t.name, W: t.W, H: t.H}
}

// MysteryBox is a grid block that turns solid and releases a mushroom when
// the player bumps it from below or lands on it while ducking.
type MysteryBox struct {
	Body
	color string
}

func newMysteryBox(p Params, free bool) *MysteryBox {
	p.Kind = KindMysteryBox
	if p.Color == "" {
		p.Color = "yellow"
	}
	p = align(p, free)
	return &MysteryBox{Body: newStatic(p, common.TileSize, common.TileSize), color: p.Color}
}

func NewMysteryBox(p Params) *MysteryBox { return newMysteryBox(p, false) }

func (m *MysteryBox) Kind() Kind           { return KindMysteryBox }
func (m *MysteryBox) Category() Category   { return CategoryTile }
func (m *MysteryBox) Color() string        { return m.color }
func (m *MysteryBox) update(float64) error { return nil }

func (m *MysteryBox) Sprite() Sprite {
	return Sprite{Name: SpriteMysteryBox, Variant: m.color, W: m.W, H: m.H}
}

func (m *MysteryBox) react(axis Axis, other Entity) {
	p, ok := other.(*Player)
	if axis != Vertical || !ok || m.world == nil {
		return
	}
	below := m.Pos.Y < p.Pos.Y
	if !p.ducking && !below {
		return
	}

	solid := m.color
	if solid == "yellow" {
		solid = "brown"
	}
	tile := NewNormalTile(Params{X: m.Pos.X, Y: m.Pos.Y, Sprite: solid + " solid"})

	y := m.Pos.Y + common.TileSize + 1
	if below {
		y = m.Pos.Y - common.TileSize - 1
	}
	w := m.world
	dir := 1
	if w.rng.Intn(2) == 0 {
		dir = -1
	}
	mushroom := NewMushroom(Params{
		X:     m.Pos.X,
		Y:     y,
		Color: mushroomColors[w.rng.Intn(len(mushroomColors))],
		Dir:   dir,
	})

	w.swap(m, tile, mushroom)
	w.play(SoundPowerupAppears)
}
