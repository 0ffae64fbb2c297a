package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/obj"
)

// keyboard maps arrows/WASD and space to player intents.
type keyboard struct{}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (keyboard) Poll() obj.Intent {
	var in obj.Intent
	if anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA) {
		in.Move--
	}
	if anyPressed(ebiten.KeyArrowRight, ebiten.KeyD) {
		in.Move++
	}
	in.Jump = anyPressed(ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW)
	in.Duck = anyPressed(ebiten.KeyArrowDown, ebiten.KeyS)
	return in
}
