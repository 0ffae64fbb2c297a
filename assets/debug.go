package assets

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/obj"
)

var debugColors = map[obj.Category]color.RGBA{
	obj.CategoryPlayer:     {0, 255, 0, 255},
	obj.CategoryActive:     {255, 200, 0, 255},
	obj.CategoryTile:       {255, 255, 255, 96},
	obj.CategoryBackground: {128, 128, 255, 96},
}

// DebugDraw outlines the hitbox of every entity inside the camera window.
// Passable entities get a thinner stroke.
func DebugDraw(screen *ebiten.Image, w *obj.World) {
	if screen == nil || w == nil {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := cp.NewBBForExtents(w.Camera.Add(cp.Vector{X: float64(sw) / 2, Y: float64(sh) / 2}), float64(sw)/2, float64(sh)/2)

	for _, e := range w.Entities() {
		b := e.Base()
		if !view.Intersects(b.BB()) {
			continue
		}
		c := debugColors[e.Category()]
		if e.Kind().IsEnemy() {
			c = color.RGBA{255, 64, 64, 255}
		}
		stroke := float32(1.5)
		if b.Passable() {
			stroke = 0.5
		}
		x := float32(b.Pos.X - w.Camera.X)
		y := float32(b.Pos.Y - w.Camera.Y)
		vector.StrokeRect(screen, x, y, float32(b.W), float32(b.H), stroke, c, false)
		if b.Vel.LengthSq() > 0 {
			cx, cy := x+float32(b.W)/2, y+float32(b.H)/2
			vector.StrokeLine(screen, cx, cy, cx+float32(b.Vel.X)/10, cy+float32(b.Vel.Y)/10, 1, c, false)
		}
	}
}
