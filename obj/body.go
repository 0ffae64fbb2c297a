package obj

import "github.com/jakecoffman/cp"

// Entity is the closed set of simulated objects. Only types in this package
// implement it.
type Entity interface {
	Kind() Kind
	Category() Category
	Base() *Body
	// Params returns the reconstruction parameters captured at construction
	// or at the last editor placement.
	Params() Params
	Sprite() Sprite

	update(dt float64) error
	react(axis Axis, other Entity)
	onDeath()
}

// Body is the state shared by every entity: an axis-aligned box with a
// top-left position in world pixels.
type Body struct {
	Pos cp.Vector
	Vel cp.Vector
	W   int
	H   int

	lives    int
	alive    bool
	movableX bool
	movableY bool
	passable bool

	// non-owning; nil while detached
	world  *World
	params Params
}

func newBody(p Params, w, h int) Body {
	return Body{
		Pos:      cp.Vector{X: p.X, Y: p.Y},
		W:        w,
		H:        h,
		lives:    1,
		alive:    true,
		movableX: true,
		movableY: true,
		params:   p,
	}
}

func (b *Body) Base() *Body { return b }

func (b *Body) Params() Params { return b.params }

func (b *Body) Lives() int { return b.lives }

func (b *Body) Alive() bool { return b.alive }

func (b *Body) Passable() bool { return b.passable }

// World returns the owning world, or nil once removed.
func (b *Body) World() *World { return b.world }

func (b *Body) Movable(axis Axis) bool {
	if axis == Vertical {
		return b.movableY
	}
	return b.movableX
}

func (b *Body) setImmovable() {
	b.movableX = false
	b.movableY = false
}

// BB returns the bounding box with L/B at the top-left corner.
func (b *Body) BB() cp.BB {
	return cp.BB{L: b.Pos.X, B: b.Pos.Y, R: b.Pos.X + float64(b.W), T: b.Pos.Y + float64(b.H)}
}

// Contains reports whether the world point (x, y) lies inside the box.
func (b *Body) Contains(x, y float64) bool {
	bb := b.BB()
	return x >= bb.L && x < bb.R && y >= bb.B && y < bb.T
}

// Overlaps uses half-open intervals: boxes that only share an edge do not
// collide.
func (b *Body) Overlaps(o *Body) bool {
	a, c := b.BB(), o.BB()
	return !(a.R <= c.L || c.R <= a.L || a.T <= c.B || c.T <= a.B)
}

func (b *Body) axisPos(axis Axis) float64 {
	if axis == Vertical {
		return b.Pos.Y
	}
	return b.Pos.X
}

func (b *Body) setAxisPos(axis Axis, v float64) {
	if axis == Vertical {
		b.Pos.Y = v
	} else {
		b.Pos.X = v
	}
}

func (b *Body) axisSize(axis Axis) float64 {
	if axis == Vertical {
		return float64(b.H)
	}
	return float64(b.W)
}

func (b *Body) zeroVel(axis Axis) {
	if axis == Vertical {
		b.Vel.Y = 0
	} else {
		b.Vel.X = 0
	}
}

// die is the shared part of every death transition.
func (b *Body) die() {
	b.alive = false
	b.setImmovable()
}

func (b *Body) onDeath() { b.die() }

// SetLives stores n and runs the death transition the first time lives drop
// to zero or below while alive.
func SetLives(e Entity, n int) {
	if e == nil {
		return
	}
	b := e.Base()
	b.lives = n
	if b.lives <= 0 && b.alive {
		e.onDeath()
	}
}

func (b *Body) react(Axis, Entity) {}
