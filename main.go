package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
)

func main() {
	levelName := flag.String("level", "1-1", "level file path or bundled level name (.json optional)")
	debug := flag.Bool("debug", false, "show frame rate and camera")
	watch := flag.Bool("watch", false, "reload prefabs/ tuning and palette on change")
	seed := flag.Int64("seed", 0, "seed for mystery box drops (0 is fixed)")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("platformer")

	game, err := NewGame(Options{
		Level: *levelName,
		Debug: *debug,
		Watch: *watch,
		Seed:  *seed,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
