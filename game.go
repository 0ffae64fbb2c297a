package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

type Options struct {
	Level string
	Debug bool
	Watch bool
	Seed  int64
}

type Game struct {
	opts Options

	world     *obj.World
	levelPath string
	topScore  int64
	tuning    obj.Tuning

	sprites  *assets.Sprites
	cache    *assets.CachedRenderer
	direct   *assets.Renderer
	audio    *gameAudio
	store    *settingsStore
	settings Settings
	input    keyboard
	watcher  *prefabs.Watcher
	face     text.Face

	paused  bool
	pauseUI *ebitenui.UI

	ended     bool
	fade      *gween.Tween
	fadeAlpha float32
	err       error
	quit      bool
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{opts: opts, face: text.NewGoXFace(basicfont.Face7x13)}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Printf("using default tuning: %v", err)
	}
	g.tuning = tuning

	palette, err := prefabs.LoadPalette()
	if err != nil {
		return nil, err
	}
	g.sprites = assets.NewSprites(palette)

	g.store = openSettings()
	g.settings = g.store.Load()
	g.audio = newGameAudio(g.settings)

	if err := g.loadLevel(); err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) loadLevel() error {
	w, path, err := levels.Open(g.opts.Level, obj.Config{
		Tuning:  g.tuning,
		Audio:   g.audio,
		ScreenW: common.BaseWidth,
		ScreenH: common.BaseHeight,
		Seed:    g.opts.Seed,
	})
	if err != nil {
		return fmt.Errorf("load level %s: %w", g.opts.Level, err)
	}
	g.topScore = max(g.topScore, w.TopScore)
	w.TopScore = g.topScore

	g.world = w
	g.levelPath = path
	g.ended = false
	g.fade = nil
	g.fadeAlpha = 0
	g.err = nil

	if g.cache != nil {
		g.cache.Close()
	}
	g.cache = assets.NewCachedRenderer(g.sprites, w.Width, w.Height)
	g.direct = &assets.Renderer{Sprites: g.sprites}
	return nil
}

// Restart reloads the current level from its file.
func (g *Game) Restart() {
	g.paused = false
	if err := g.loadLevel(); err != nil {
		log.Printf("restart: %v", err)
		g.err = err
	}
}

func (g *Game) SetSettings(s Settings) {
	g.settings = s
	g.audio.Apply(s)
	g.store.Save(s)
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.cache != nil {
		g.cache.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !g.ended {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.ended {
		if g.fade != nil {
			alpha, done := g.fade.Update(1 / float32(ebiten.TPS()))
			g.fadeAlpha = alpha
			if done {
				g.fade = nil
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.Restart()
		}
		return nil
	}

	if err := g.world.Step(1/float64(ebiten.TPS()), g.input); err != nil {
		log.Printf("simulation stopped: %v", err)
		g.err = err
	}
	if g.world.GameOver {
		g.end()
	}
	return nil
}

// end finishes the session: the best score goes back to the level file and
// the screen fades out.
func (g *Game) end() {
	g.ended = true
	g.topScore = max(g.topScore, g.world.TopScore)
	if g.levelPath != "" {
		if err := levels.SaveTopScore(g.levelPath, g.world); err != nil {
			log.Printf("save top score: %v", err)
		}
	}
	g.fade = gween.New(0, 0.6, 1.2, ease.OutQuad)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefab watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	switch {
	case prefabs.IsTuning(name):
		t, err := prefabs.LoadTuning()
		if err != nil {
			log.Printf("reload tuning: %v", err)
			return
		}
		g.tuning = t
		g.world.SetTuning(t)
		log.Printf("reloaded %s", name)
	case prefabs.IsPalette(name):
		p, err := prefabs.LoadPalette()
		if err != nil {
			log.Printf("reload palette: %v", err)
			return
		}
		g.sprites.SetPalette(p)
		g.cache.Invalidate()
		log.Printf("reloaded %s", name)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	var r obj.Renderer = g.direct
	g.direct.Target = screen
	if g.settings.FastRender {
		g.cache.Target = screen
		r = g.cache
	}
	g.world.Render(r)
	g.drawHUD(screen)

	if g.ended {
		sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh), color.NRGBA{A: uint8(g.fadeAlpha * 255)}, false)
		msg := "GAME OVER"
		if g.world.Won {
			msg = "COURSE CLEAR!"
		}
		if g.err != nil {
			msg = "ERROR: " + g.err.Error()
		}
		g.drawText(screen, msg, float64(sw/2-len(msg)*7/2), float64(sh/2-20), color.White)
		g.drawText(screen, "press Enter to play again", float64(sw/2-88), float64(sh/2+4), color.White)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.opts.Debug {
		assets.DebugDraw(screen, g.world)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  camera: %.0f,%.0f  entities: %d",
			ebiten.ActualFPS(), g.world.Camera.X, g.world.Camera.Y, len(g.world.Entities())))
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	p := g.world.Player()
	score, coins, lives := 0, 0, 0
	if p != nil {
		score, coins, lives = p.Score(), p.Coins(), p.Lives()
	}
	top := max(g.topScore, int64(score))
	g.drawText(screen, fmt.Sprintf("SCORE %06d", score), 24, 20, color.White)
	g.drawText(screen, fmt.Sprintf("COINS x%02d", coins), 200, 20, color.White)
	g.drawText(screen, fmt.Sprintf("LIVES %d", lives), 360, 20, color.White)
	g.drawText(screen, fmt.Sprintf("TOP %06d", top), 500, 20, color.White)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
