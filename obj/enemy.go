package obj

// enemy is the walking behaviour shared by goombas, koopas and shells.
type enemy struct {
	Body

	dir       int
	frame     int
	frameTime float64
	deathTime float64
	frames    int
	variant   string
}

func newEnemy(p Params, w, h, frames int) enemy {
	e := enemy{Body: newBody(p, w, h), dir: p.Dir, frames: frames, variant: p.Color}
	e.Vel.X = float64(p.Dir) * DefaultTuning().EnemySpeed
	return e
}

// Dir returns -1, 1 or 0 for an idle shell.
func (e *enemy) Dir() int { return e.dir }

func (e *enemy) Category() Category { return CategoryActive }

func (e *enemy) tuning() Tuning {
	if e.world == nil {
		return DefaultTuning()
	}
	return e.world.tuning
}

// reverse turns around on any solid horizontal contact.
func (e *enemy) reverse(speed float64) {
	e.dir = -e.dir
	e.Vel.X = float64(e.dir) * speed
}

// walk runs one sub-step of an enemy: physics, edge turn-around and
// animation timers. It reports whether the enemy is still attached.
func (e *enemy) walk(self Entity, dt, speed float64) (bool, error) {
	w := e.world
	if e.alive {
		e.Vel.X = float64(e.dir) * speed
	}
	clamped, err := w.move(self, dt)
	if err != nil {
		return false, err
	}
	if e.world != w {
		return false, nil
	}
	if clamped && e.alive {
		e.reverse(speed)
	}
	if e.alive {
		e.frameTime += dt
	} else {
		e.deathTime += dt
	}
	return true, nil
}

func (e *enemy) advanceFrame() {
	if e.frameTime > e.tuning().FrameTime {
		e.frame = (e.frame + 1) % e.frames
		e.frameTime = 0
	}
}

// Goomba walks until stomped, then lies flat for a while before vanishing.
type Goomba struct {
	enemy
}

func NewGoomba(p Params) *Goomba {
	p.Kind = KindGoomba
	if p.Dir == 0 {
		p.Dir = 1
	}
	sz := spriteSizes[SpriteGoomba]
	return &Goomba{enemy: newEnemy(p, sz.w, sz.h, goombaFrames)}
}

func (g *Goomba) Kind() Kind { return KindGoomba }

func (g *Goomba) Sprite() Sprite {
	name := SpriteGoomba
	if !g.alive {
		name = SpriteGoombaDeath
	}
	return Sprite{Name: name, Frame: g.frame, W: g.W, H: g.H, FlipX: g.dir == 1}
}

func (g *Goomba) update(dt float64) error {
	t := g.tuning()
	ok, err := g.walk(g, dt, t.EnemySpeed)
	if err != nil || !ok {
		return err
	}
	g.advanceFrame()
	if !g.alive {
		sz := spriteSizes[SpriteGoombaDeath]
		if err := g.world.resize(g, sz.w, sz.h); err != nil {
			return err
		}
		if g.deathTime >= t.GoombaCorpseTime {
			return g.world.Remove(g)
		}
	}
	return nil
}

func (g *Goomba) react(axis Axis, other Entity) {
	if axis == Horizontal && !other.Base().passable {
		g.reverse(g.tuning().EnemySpeed)
	}
}

func (g *Goomba) onDeath() {
	g.die()
	// squash immediately so the corpse is drawn this frame
	sz := spriteSizes[SpriteGoombaDeath]
	if g.world != nil {
		g.world.fail(g.world.resize(g, sz.w, sz.h))
	}
}

// KoopaTroopa walks like a goomba and leaves a shell behind when stomped.
type KoopaTroopa struct {
	enemy
}

func NewKoopaTroopa(p Params) *KoopaTroopa {
	p.Kind = KindKoopa
	if p.Dir == 0 {
		p.Dir = 1
	}
	if p.Color == "" {
		p.Color = "blue"
	}
	sz := spriteSizes[SpriteKoopa]
	return &KoopaTroopa{enemy: newEnemy(p, sz.w, sz.h, koopaFrames)}
}

func (k *KoopaTroopa) Kind() Kind    { return KindKoopa }
func (k *KoopaTroopa) Color() string { return k.variant }

func (k *KoopaTroopa) Sprite() Sprite {
	return Sprite{Name: SpriteKoopa, Variant: k.variant, Frame: k.frame, W: k.W, H: k.H, FlipX: k.dir == 1}
}

func (k *KoopaTroopa) update(dt float64) error {
	ok, err := k.walk(k, dt, k.tuning().EnemySpeed)
	if err != nil || !ok {
		return err
	}
	k.advanceFrame()
	return nil
}

func (k *KoopaTroopa) react(axis Axis, other Entity) {
	if axis == Horizontal && !other.Base().passable {
		k.reverse(k.tuning().EnemySpeed)
	}
}

// onDeath swaps the koopa for an idle shell standing on the same ground.
func (k *KoopaTroopa) onDeath() {
	k.die()
	shell := NewTurtle(Params{X: k.Pos.X, Y: k.Pos.Y, Color: k.variant})
	shell.Pos.Y += float64(k.H - shell.H)
	shell.params.Y = shell.Pos.Y
	k.world.swap(k, shell)
}

// Turtle is a koopa shell. It rests until kicked, then slides and knocks
// out other enemies.
type Turtle struct {
	enemy

	// struck is the enemy already damaged this sub-step; the same contact
	// must not cost it a second life when it walks back into the shell.
	struck Entity
}

func NewTurtle(p Params) *Turtle {
	p.Kind = KindTurtle
	if p.Color == "" {
		p.Color = "blue"
	}
	sz := spriteSizes[SpriteTurtle]
	t := &Turtle{enemy: newEnemy(p, sz.w, sz.h, turtleFrames)}
	t.Vel.X = float64(t.dir) * DefaultTuning().TurtleSpeed
	return t
}

func (t *Turtle) Kind() Kind    { return KindTurtle }
func (t *Turtle) Color() string { return t.variant }

// Sliding reports whether the shell has been kicked.
func (t *Turtle) Sliding() bool { return t.dir != 0 }

func (t *Turtle) Sprite() Sprite {
	return Sprite{Name: SpriteTurtle, Variant: t.variant, Frame: t.frame, W: t.W, H: t.H, FlipX: t.dir == 1}
}

func (t *Turtle) update(dt float64) error {
	t.struck = nil
	ok, err := t.walk(t, dt, t.tuning().TurtleSpeed)
	if err != nil || !ok {
		return err
	}
	if t.dir != 0 {
		t.advanceFrame()
	}
	return nil
}

func (t *Turtle) react(axis Axis, other Entity) {
	ob := other.Base()
	speed := t.tuning().TurtleSpeed
	switch {
	case t.dir == 0:
		if axis == Horizontal && other.Category() != CategoryTile && !ob.passable {
			if ob.Pos.X <= t.Pos.X {
				t.dir = 1
			} else {
				t.dir = -1
			}
			t.Vel.X = float64(t.dir) * speed
		}
	case other == t.struck:
	case other.Kind().IsEnemy() && other.Kind() != KindTurtle && ob.alive:
		t.struck = other
		SetLives(other, ob.lives-1)
		if ob.alive {
			t.reverse(speed)
		}
	case axis == Horizontal && !ob.passable:
		t.reverse(speed)
	}
}

func (t *Turtle) onDeath() {
	t.die()
	if t.world != nil {
		t.world.fail(t.world.Remove(t))
	}
}

// sliding reports whether e is a kicked shell, which cannot be stomped.
func sliding(e Entity) bool {
	t, ok := e.(*Turtle)
	return ok && t.Sliding()
}
