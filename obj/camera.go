package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
)

// updateCamera follows the player's centre plus the tuning offset, clamped
// so the view never leaves the world. Worlds smaller than the screen keep
// the camera at the origin.
func (w *World) updateCamera() {
	if w.player == nil {
		return
	}
	p := &w.player.Body
	cx := p.Pos.X + float64(p.W/2) + w.tuning.CameraOffsetX
	cy := p.Pos.Y + float64(p.H/2) + w.tuning.CameraOffsetY
	w.Camera = cp.Vector{
		X: common.Clamp(cx, 0, float64(w.Width-w.screenW)),
		Y: common.Clamp(cy, 0, float64(w.Height-w.screenH)),
	}
}

// ScreenSize returns the view size the camera is clamped with.
func (w *World) ScreenSize() (int, int) {
	return w.screenW, w.screenH
}

// View returns the world-space rectangle currently on screen.
func (w *World) View() cp.BB {
	return cp.BB{
		L: w.Camera.X,
		B: w.Camera.Y,
		R: w.Camera.X + float64(w.screenW),
		T: w.Camera.Y + float64(w.screenH),
	}
}
