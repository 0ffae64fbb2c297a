package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/obj"
)

// keyboard drives the player while play-testing.
type keyboard struct{}

func (keyboard) Poll() obj.Intent {
	var in obj.Intent
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Move--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Move++
	}
	in.Jump = ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	in.Duck = ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	return in
}
