package assets

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/obj"
)

// Renderer draws world sprites straight onto Target.
type Renderer struct {
	Target  *ebiten.Image
	Sprites *Sprites
}

func (r *Renderer) DrawBackground(name string, _ cp.Vector) {
	r.Target.Fill(r.Sprites.Background(name))
}

func (r *Renderer) DrawSprite(s obj.Sprite, at cp.Vector) {
	r.Sprites.Draw(r.Target, s, at.X, at.Y)
}

// CachedRenderer keeps background, tiles and decorations on one world-sized
// surface and repaints it only when the static content changes.
type CachedRenderer struct {
	Renderer

	surface *ebiten.Image
	version uint64
	valid   bool
	width   int
	height  int
}

func NewCachedRenderer(sprites *Sprites, worldW, worldH int) *CachedRenderer {
	return &CachedRenderer{Renderer: Renderer{Sprites: sprites}, width: worldW, height: worldH}
}

// Invalidate forces a rebuild on the next frame, e.g. after a palette reload.
func (r *CachedRenderer) Invalidate() { r.valid = false }

func (r *CachedRenderer) Close() {
	if r.surface != nil {
		r.surface.Deallocate()
		r.surface = nil
	}
}

func (r *CachedRenderer) DrawStatic(version uint64, camera cp.Vector, build func(obj.Renderer)) {
	if r.surface == nil {
		r.surface = ebiten.NewImage(r.width, r.height)
		r.valid = false
	}
	if !r.valid || version != r.version {
		r.surface.Clear()
		build(&Renderer{Target: r.surface, Sprites: r.Sprites})
		r.version = version
		r.valid = true
	}

	sw, sh := r.Target.Bounds().Dx(), r.Target.Bounds().Dy()
	x, y := int(camera.X), int(camera.Y)
	view := image.Rect(x, y, x+sw, y+sh).Intersect(r.surface.Bounds())
	if view.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(view.Min.X)-camera.X, float64(view.Min.Y)-camera.Y)
	r.Target.DrawImage(r.surface.SubImage(view).(*ebiten.Image), op)
}
