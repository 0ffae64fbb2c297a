package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"slices"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
	"golang.design/x/clipboard"
)

type Tool int

const (
	ToolPlace Tool = iota
	ToolErase
)

func (t Tool) String() string {
	switch t {
	case ToolPlace:
		return "Place"
	case ToolErase:
		return "Erase"
	default:
		return "Unknown"
	}
}

const panSpeed = 8

type Editor struct {
	sess    *session
	sprites *assets.Sprites
	render  *assets.CachedRenderer
	shown   *obj.World
	canvas  *ebiten.Image

	ui      *ebitenui.UI
	toolBar *ToolBar
	prompt  *Prompt

	tool     Tool
	brush    brush
	status   string
	clipOK   bool
	dragging bool

	play       *obj.World
	playRender *assets.CachedRenderer
	audio      obj.Audio
}

func NewEditor(w *obj.World, path string, cfg obj.Config) (*Editor, error) {
	palette, err := prefabs.LoadPalette()
	if err != nil {
		return nil, err
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Printf("using default tuning: %v", err)
	}
	cfg.Tuning = tuning
	w.SetTuning(tuning)

	ed := &Editor{
		sess:    newSession(w, path, cfg),
		sprites: assets.NewSprites(palette),
		canvas:  ebiten.NewImage(cfg.ScreenW, cfg.ScreenH),
		prompt:  NewPrompt(),
		brush:   newBrush(obj.KindTile),
		audio:   obj.NopAudio{},
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		ed.clipOK = true
	}
	if bank, err := assets.NewSoundBank(assets.AudioContext()); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		ed.audio = bank
	}

	ed.ui, ed.toolBar = BuildEditorUI(editorCallbacks{
		onKindSelected: func(k obj.Kind) { ed.brush = newBrush(k) },
		onToolSelected: func(t Tool) { ed.tool = t },
		onSave:         ed.Save,
		onUndo:         ed.Undo,
		onPlay:         ed.StartPlaytest,
		onCopy:         ed.Copy,
		onPaste:        ed.Paste,
	}, ed.tool)
	ed.setStatus("editing %s", path)
	return ed, nil
}

func (ed *Editor) setStatus(format string, args ...any) {
	ed.status = fmt.Sprintf(format, args...)
}

func (ed *Editor) world() *obj.World { return ed.sess.world }

func (ed *Editor) Save() {
	if err := ed.sess.save(); err != nil {
		ed.setStatus("save failed: %v", err)
		return
	}
	ed.setStatus("saved %s", ed.sess.path)
}

func (ed *Editor) Undo() {
	if err := ed.sess.undoLast(); err != nil {
		ed.setStatus("undo: %v", err)
		return
	}
	ed.setStatus("undone")
}

func (ed *Editor) Copy() {
	if !ed.clipOK {
		ed.setStatus("clipboard unavailable")
		return
	}
	data, err := ed.sess.export()
	if err != nil {
		ed.setStatus("copy failed: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	ed.setStatus("level copied to clipboard (%d bytes)", len(data))
}

func (ed *Editor) Paste() {
	if !ed.clipOK {
		ed.setStatus("clipboard unavailable")
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if err := ed.sess.importLevel(data); err != nil {
		ed.setStatus("paste failed: %v", err)
		return
	}
	ed.setStatus("level pasted from clipboard")
}

func (ed *Editor) StartPlaytest() {
	w, err := ed.sess.playtest(ed.audio)
	if err != nil {
		ed.setStatus("play-test: %v", err)
		return
	}
	ed.play = w
	ed.playRender = assets.NewCachedRenderer(ed.sprites, w.Width, w.Height)
	ed.setStatus("play-testing, Esc to stop")
}

func (ed *Editor) stopPlaytest() {
	ed.play = nil
	if ed.playRender != nil {
		ed.playRender.Close()
		ed.playRender = nil
	}
	ed.setStatus("back to editing")
}

func (ed *Editor) Update() error {
	if ed.play != nil {
		return ed.updatePlaytest()
	}
	if ed.prompt.Update() {
		return nil
	}
	ed.ui.Update()
	ed.handleKeys()
	ed.handleMouse()
	return nil
}

func (ed *Editor) updatePlaytest() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ed.stopPlaytest()
		return nil
	}
	if ed.play.GameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			ed.stopPlaytest()
		}
		return nil
	}
	if err := ed.play.Step(1/float64(ebiten.TPS()), keyboard{}); err != nil {
		ed.setStatus("play-test stopped: %v", err)
	}
	if ed.play.GameOver {
		if ed.play.Won {
			ed.setStatus("course clear, score %d. Enter to return", ed.play.Player().Score())
		} else {
			ed.setStatus("game over. Enter to return")
		}
	}
	return nil
}

func ctrl() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

func (ed *Editor) handleKeys() {
	if ctrl() {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyS):
			ed.Save()
		case inpututil.IsKeyJustPressed(ebiten.KeyZ):
			ed.Undo()
		case inpututil.IsKeyJustPressed(ebiten.KeyC):
			ed.Copy()
		case inpututil.IsKeyJustPressed(ebiten.KeyV):
			ed.Paste()
		case inpututil.IsKeyJustPressed(ebiten.KeyO):
			ed.prompt.Open("Open level:", ed.sess.path, validateOpenPath, func(path string) {
				if err := ed.sess.load(path); err != nil {
					ed.setStatus("open failed: %v", err)
					return
				}
				ed.setStatus("editing %s", path)
			})
		case inpututil.IsKeyJustPressed(ebiten.KeyA):
			ed.prompt.Open("Save as:", ed.sess.path, validateSavePath, func(path string) {
				ed.sess.path = path
				ed.Save()
			})
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ed.StartPlaytest()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		ed.brush = ed.brush.cycleVariant(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		ed.brush = ed.brush.cycleVariant(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ed.brush = ed.brush.turn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		ed.tool = (ed.tool + 1) % 2
		ed.toolBar.SetTool(ed.tool)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		step := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			step = -1
		}
		i := slices.Index(obj.Kinds, ed.brush.kind)
		n := len(obj.Kinds)
		ed.brush = newBrush(obj.Kinds[((i+step)%n+n)%n])
	}

	speed := float64(panSpeed)
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		speed *= 4
	}
	cam := ed.world().Camera
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		cam.X -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		cam.X += speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		cam.Y -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		cam.Y += speed
	}
	ed.world().Camera = clampCamera(ed.world(), cam)
}

func clampCamera(w *obj.World, cam cp.Vector) cp.Vector {
	sw, sh := w.ScreenSize()
	return cp.Vector{
		X: common.Clamp(cam.X, 0, float64(w.Width-sw)),
		Y: common.Clamp(cam.Y, 0, float64(w.Height-sh)),
	}
}

// cursorWorld maps the mouse to world coordinates; ok is false over the
// panel.
func (ed *Editor) cursorWorld() (x, y float64, ok bool) {
	mx, my := ebiten.CursorPosition()
	if mx < panelWidth {
		return 0, 0, false
	}
	cam := ed.world().Camera
	return float64(mx-panelWidth) + cam.X, float64(my) + cam.Y, true
}

func (ed *Editor) handleMouse() {
	x, y, ok := ed.cursorWorld()
	if !ok {
		ed.dragging = false
		return
	}

	erase := ed.tool == ToolErase || ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if erase && (ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)) {
		if e, ok := ed.sess.erase(x, y); ok {
			ed.setStatus("removed %s", e.Kind())
		}
		return
	}

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		ed.dragging = false
		return
	}
	// only tiles paint while dragging; everything else is one per click
	if ed.dragging && ed.brush.kind != obj.KindTile {
		return
	}
	first := !ed.dragging
	ed.dragging = true

	if ed.brush.kind == obj.KindTile && ed.world().TileAt(x, y) != nil {
		return
	}
	e, err := ed.sess.place(ed.brush, x, y)
	if err != nil {
		if first {
			ed.setStatus("cannot place %s: %v", ed.brush.kind, err)
		}
		return
	}
	b := e.Base()
	ed.setStatus("placed %s at %.0f,%.0f", e.Kind(), b.Pos.X, b.Pos.Y)
}

func (ed *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 30, 255})

	ed.canvas.Clear()
	if ed.play != nil {
		ed.playRender.Target = ed.canvas
		ed.play.Render(ed.playRender)
	} else {
		w := ed.world()
		if ed.shown != w {
			if ed.render != nil {
				ed.render.Close()
			}
			ed.render = assets.NewCachedRenderer(ed.sprites, w.Width, w.Height)
			ed.shown = w
		}
		ed.render.Target = ed.canvas
		w.Render(ed.render)
		ed.drawGrid()
		ed.drawPreview()
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelWidth, 0)
	screen.DrawImage(ed.canvas, op)

	if ed.play == nil {
		ed.ui.Draw(screen)
	}
	ed.drawStatus(screen)
	ed.prompt.Draw(screen)
}

func (ed *Editor) drawGrid() {
	w := ed.world()
	cam := w.Camera
	cw, ch := ed.canvas.Bounds().Dx(), ed.canvas.Bounds().Dy()
	grid := color.RGBA{255, 255, 255, 24}
	ts := float64(common.TileSize)

	for x := math.Floor(cam.X/ts) * ts; x <= cam.X+float64(cw) && x <= float64(w.Width); x += ts {
		sx := float32(x - cam.X)
		vector.StrokeLine(ed.canvas, sx, 0, sx, float32(min(ch, w.Height)), 1, grid, false)
	}
	for y := math.Floor(cam.Y/ts) * ts; y <= cam.Y+float64(ch) && y <= float64(w.Height); y += ts {
		sy := float32(y - cam.Y)
		vector.StrokeLine(ed.canvas, 0, sy, float32(min(cw, w.Width)), sy, 1, grid, false)
	}
}

// drawPreview shows the brush under the cursor, outlined red where it cannot
// be placed.
func (ed *Editor) drawPreview() {
	x, y, ok := ed.cursorWorld()
	if !ok {
		return
	}
	w := ed.world()
	if ed.tool == ToolErase {
		if e := w.EntityAt(x, y); e != nil {
			b := e.Base()
			vector.StrokeRect(ed.canvas, float32(b.Pos.X-w.Camera.X), float32(b.Pos.Y-w.Camera.Y), float32(b.W), float32(b.H), 2, color.RGBA{255, 80, 80, 255}, false)
		}
		return
	}

	e, err := obj.New(ed.brush.params(x, y))
	if err != nil {
		return
	}
	b := e.Base()
	sx, sy := b.Pos.X-w.Camera.X, b.Pos.Y-w.Camera.Y
	ed.sprites.Draw(ed.canvas, e.Sprite(), sx, sy)

	outline := color.RGBA{255, 255, 255, 200}
	if !w.IsPlacementAllowed(e) || (e.Category() == obj.CategoryTile && w.TileAt(x, y) != nil) {
		outline = color.RGBA{255, 60, 60, 255}
	}
	vector.StrokeRect(ed.canvas, float32(sx), float32(sy), float32(b.W), float32(b.H), 1, outline, false)
}

func (ed *Editor) drawStatus(screen *ebiten.Image) {
	sh := screen.Bounds().Dy()
	dirty := ""
	if ed.sess.dirty {
		dirty = "*"
	}
	line := fmt.Sprintf("%s%s | %s | %s | %s", ed.sess.path, dirty, ed.tool, ed.brush.label(), ed.status)
	ebitenutil.DebugPrintAt(screen, line, panelWidth+8, sh-20)
	if ed.play == nil {
		ebitenutil.DebugPrintAt(screen, "Tab kind  Q/E variant  R direction  X tool  P play  Ctrl+S save  Ctrl+Z undo  Ctrl+C/V copy/paste  Ctrl+O open  Ctrl+A save as",
			panelWidth+8, 4)
	}
}

func (ed *Editor) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidthEditor, baseHeightEditor
}

func (ed *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
