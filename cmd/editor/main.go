package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
)

const (
	baseWidthEditor  = 1400
	baseHeightEditor = 700
	panelWidth       = 220
)

func main() {
	levelPath := flag.String("level", "levels/custom.json", "level file to edit (.json or .lvl)")
	width := flag.Int("width", 2400, "width of a new level in pixels")
	height := flag.Int("height", 600, "height of a new level in pixels")
	background := flag.String("background", "sky", "background of a new level")
	script := flag.String("script", "", "tengo script to run on the level (file path or bundled script name)")
	tmx := flag.String("tmx", "", "import a Tiled .tmx map instead of loading -level")
	seed := flag.Int64("seed", 0, "seed for mystery box drops during play-testing")
	flag.Parse()

	cfg := obj.Config{
		ScreenW: baseWidthEditor - panelWidth,
		ScreenH: baseHeightEditor,
		Seed:    *seed,
	}

	w, err := openWorld(*levelPath, *tmx, *width, *height, *background, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *script != "" {
		res, err := runScript(w, *script)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("script %s: placed %d, skipped %d", *script, res.Placed, res.Skipped)
	}

	ed, err := NewEditor(w, *levelPath, cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(baseWidthEditor, baseHeightEditor)
	ebiten.SetWindowTitle("platformer editor")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(ed); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}

func openWorld(path, tmx string, width, height int, background string, cfg obj.Config) (*obj.World, error) {
	if tmx != "" {
		f, err := levels.ImportTMX(os.DirFS(filepath.Dir(tmx)), filepath.Base(tmx))
		if err != nil {
			return nil, err
		}
		return levels.Build(f, cfg)
	}
	if _, err := os.Stat(path); err == nil {
		return levels.Load(path, cfg)
	}
	log.Printf("%s does not exist, starting a new %dx%d level", path, width, height)
	return obj.NewWorld(width, height, background, cfg), nil
}

func runScript(w *obj.World, script string) (levels.ScriptResult, error) {
	if src, err := os.ReadFile(script); err == nil {
		return levels.RunScript(w, src)
	}
	return levels.RunScriptFile(w, script)
}
