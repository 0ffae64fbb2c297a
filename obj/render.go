package obj

import "github.com/jakecoffman/cp"

// Sprite describes what to draw for an entity. Renderers map Name (and
// Variant, e.g. a colour) to an image; W and H are the on-screen size.
type Sprite struct {
	Name    string
	Variant string
	Frame   int
	W, H    int
	FlipX   bool
	// Turns is the number of counter-clockwise quarter turns (pipes).
	Turns int
}

// Renderer draws one frame. Positions are screen coordinates.
type Renderer interface {
	DrawBackground(name string, camera cp.Vector)
	DrawSprite(s Sprite, at cp.Vector)
}

// StaticRenderer is the cached-surface fast path. DrawStatic must blit the
// camera window of a surface holding the background, tiles and decorations,
// calling build to repaint that surface (in world coordinates) whenever
// version differs from the one it last built.
type StaticRenderer interface {
	Renderer
	DrawStatic(version uint64, camera cp.Vector, build func(Renderer))
}

// Render draws background, tiles and decorations, then active entities, then
// the player. Everything outside the camera window is skipped.
func (w *World) Render(r Renderer) {
	if w == nil || r == nil {
		return
	}

	if sr, ok := r.(StaticRenderer); ok {
		sr.DrawStatic(w.staticVersion, w.Camera, w.drawStatic)
	} else {
		r.DrawBackground(w.Background, w.Camera)
		for _, e := range w.tiles {
			w.drawCulled(r, e)
		}
		for _, e := range w.background {
			w.drawCulled(r, e)
		}
	}

	for _, e := range w.active {
		w.drawCulled(r, e)
	}
	if w.player != nil {
		w.drawCulled(r, w.player)
	}
}

func (w *World) drawStatic(r Renderer) {
	r.DrawBackground(w.Background, cp.Vector{})
	for _, e := range w.tiles {
		r.DrawSprite(e.Sprite(), e.Base().Pos)
	}
	for _, e := range w.background {
		r.DrawSprite(e.Sprite(), e.Base().Pos)
	}
}

func (w *World) drawCulled(r Renderer, e Entity) {
	b := e.Base()
	x := b.Pos.X - w.Camera.X
	y := b.Pos.Y - w.Camera.Y
	if x+float64(b.W) < 0 || x > float64(w.screenW) || y+float64(b.H) < 0 || y > float64(w.screenH) {
		return
	}
	r.DrawSprite(e.Sprite(), cp.Vector{X: x, Y: y})
}
