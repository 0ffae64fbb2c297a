package obj

import (
	"math"

	"github.com/milk9111/platformer/common"
)

// collisions returns everything overlapping e, in resolution order: grid
// tiles under e's box, then the player, then active entities in list order.
// Background entities never collide.
func (w *World) collisions(e Entity) []Entity {
	b := e.Base()
	var out []Entity

	c0, c1, r0, r1 := w.cellRange(b)
	for c := c0; c <= c1; c++ {
		for r := r0; r <= r1; r++ {
			t := w.tileAt(c, r)
			if t == nil || t == e {
				continue
			}
			if b.Overlaps(t.Base()) {
				out = append(out, t)
			}
		}
	}

	if w.player != nil && Entity(w.player) != e && b.Overlaps(&w.player.Body) {
		out = append(out, w.player)
	}
	for _, o := range w.active {
		if o != e && b.Overlaps(o.Base()) {
			out = append(out, o)
		}
	}
	return out
}

// cellRange returns the inclusive grid cells spanned by b. Cells outside the
// grid are filtered by tileAt.
func (w *World) cellRange(b *Body) (c0, c1, r0, r1 int) {
	t := float64(common.TileSize)
	c0 = int(math.Floor(b.Pos.X / t))
	c1 = int(math.Ceil((b.Pos.X+float64(b.W))/t)) - 1
	r0 = int(math.Floor(b.Pos.Y / t))
	r1 = int(math.Ceil((b.Pos.Y+float64(b.H))/t)) - 1
	return
}

// resolve pushes e out of every solid entity it overlaps on axis and runs
// the reactions of both parties. It stops early once e has died or left the
// world, since a dead entity no longer moves.
func (w *World) resolve(e Entity, axis Axis) error {
	b := e.Base()
	if b.passable {
		return nil
	}
	for _, o := range w.collisions(e) {
		if b.world != w || !b.alive {
			return nil
		}
		ob := o.Base()
		if ob.world != w || !b.Overlaps(ob) {
			continue
		}
		if blocks(e, o) {
			if err := w.separate(e, o, axis); err != nil {
				return err
			}
		}
		e.react(axis, o)
		o.react(axis, e)
		if w.err != nil {
			return w.err
		}
	}
	return nil
}

// settle separates e from its neighbours on both axes without running any
// reactions. Used when the editor drops an entity into the world.
func (w *World) settle(e Entity) error {
	b := e.Base()
	if b.passable {
		return nil
	}
	for _, axis := range []Axis{Vertical, Horizontal} {
		for _, o := range w.collisions(e) {
			if b.Overlaps(o.Base()) && blocks(e, o) {
				if err := w.separate(e, o, axis); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// blocks reports whether o stops e's movement. The player walks through the
// flagpole and mushrooms; both still react to the touch.
func blocks(e, o Entity) bool {
	if o.Base().passable {
		return false
	}
	if e.Kind() == KindPlayer {
		switch o.Kind() {
		case KindFlagpole, KindMushroom:
			return false
		}
	}
	return true
}

// separate snaps e to the side of o it came from and zeroes its velocity on
// axis. If e cannot move on axis, o is moved instead.
func (w *World) separate(e, o Entity, axis Axis) error {
	b, ob := e.Base(), o.Base()
	switch {
	case b.Movable(axis):
		snap(b, ob, axis)
	case ob.Movable(axis):
		snap(ob, b, axis)
	default:
		return &InvariantError{Axis: axis, Self: e.Kind(), Other: o.Kind(), X: b.Pos.X, Y: b.Pos.Y}
	}
	return nil
}

// snap places self just before other when it starts before it, otherwise
// just after it.
func snap(self, other *Body, axis Axis) {
	if self.axisPos(axis) < other.axisPos(axis) {
		self.setAxisPos(axis, other.axisPos(axis)-self.axisSize(axis))
	} else {
		self.setAxisPos(axis, other.axisPos(axis)+other.axisSize(axis))
	}
	self.zeroVel(axis)
}

// move integrates one sub-step for e: vertical motion and resolution, then
// gravity, then horizontal motion and resolution, then the world bounds. It
// returns whether the bounds clamped e horizontally.
func (w *World) move(e Entity, dt float64) (clampedX bool, err error) {
	b := e.Base()
	if b.movableY {
		b.Pos.Y += dt * b.Vel.Y
		if err := w.resolve(e, Vertical); err != nil {
			return false, err
		}
		b.Vel.Y += w.tuning.Gravity * dt
	}
	if b.world != w {
		return false, nil
	}
	if b.movableX {
		b.Pos.X += dt * b.Vel.X
		if err := w.resolve(e, Horizontal); err != nil {
			return false, err
		}
	}
	if b.world == w && (b.movableX || b.movableY) {
		clampedX = w.keepInBounds(e)
	}
	return clampedX, nil
}

// keepInBounds clamps e horizontally and at the top edge. Falling past the
// bottom edge kills it.
func (w *World) keepInBounds(e Entity) (clampedX bool) {
	b := e.Base()
	switch {
	case b.Pos.X+float64(b.W) > float64(w.Width):
		b.Pos.X = float64(w.Width - b.W)
		clampedX = true
	case b.Pos.X < 0:
		b.Pos.X = 0
		clampedX = true
	}
	switch {
	case b.Pos.Y > float64(w.Height):
		SetLives(e, 0)
	case b.Pos.Y < 0:
		b.Pos.Y = 0
	}
	return clampedX
}

// resize changes e's box keeping its bottom-right corner fixed, then
// resolves any overlap the growth produced.
func (w *World) resize(e Entity, width, height int) error {
	b := e.Base()
	if b.W == width && b.H == height {
		return nil
	}
	grewX, grewY := width > b.W, height > b.H

	b.Pos.X += float64(b.W - width)
	b.W = width
	if grewX && w != nil && b.world == w && b.movableX {
		if err := w.resolve(e, Horizontal); err != nil {
			return err
		}
	}

	b.Pos.Y += float64(b.H - height)
	b.H = height
	if grewY && w != nil && b.world == w && b.movableY {
		if err := w.resolve(e, Vertical); err != nil {
			return err
		}
	}
	return nil
}
