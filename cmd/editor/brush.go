package main

import (
	"slices"
	"sort"

	"github.com/milk9111/platformer/obj"
)

// brush is the palette selection: what a click places.
type brush struct {
	kind    obj.Kind
	variant int
	dir     int
}

func newBrush(k obj.Kind) brush {
	b := brush{kind: k}
	switch k {
	case obj.KindGoomba, obj.KindKoopa, obj.KindMushroom:
		b.dir = -1
	}
	return b
}

// variants lists the sprite or colour choices of a kind.
func variants(k obj.Kind) []string {
	switch k {
	case obj.KindTile:
		return slices.Clone(obj.TileSprites)
	case obj.KindDecoration:
		names := make([]string, 0, len(obj.DecorationSprites))
		for name := range obj.DecorationSprites {
			names = append(names, name)
		}
		sort.Strings(names)
		return names
	}
	return obj.Colors(k)
}

func (b brush) variantName() string {
	vs := variants(b.kind)
	if len(vs) == 0 {
		return ""
	}
	return vs[((b.variant%len(vs))+len(vs))%len(vs)]
}

func (b brush) cycleVariant(step int) brush {
	if n := len(variants(b.kind)); n > 0 {
		b.variant = ((b.variant+step)%n + n) % n
	}
	return b
}

// turn advances the direction: quarter turns for pipes, left/still/right for
// walkers, left/right for mushrooms.
func (b brush) turn() brush {
	switch b.kind {
	case obj.KindPipe:
		b.dir = (b.dir + 1) % 4
	case obj.KindMushroom:
		b.dir = -b.dir
		if b.dir == 0 {
			b.dir = 1
		}
	case obj.KindGoomba, obj.KindKoopa, obj.KindTurtle:
		b.dir++
		if b.dir > 1 {
			b.dir = -1
		}
	}
	return b
}

// params builds reconstruction parameters for a placement at world (x, y).
func (b brush) params(x, y float64) obj.Params {
	p := obj.Params{Kind: b.kind, X: x, Y: y}
	switch b.kind {
	case obj.KindTile, obj.KindDecoration:
		p.Sprite = b.variantName()
	case obj.KindMysteryBox, obj.KindKoopa, obj.KindTurtle, obj.KindMushroom:
		p.Color = b.variantName()
	}
	switch b.kind {
	case obj.KindGoomba, obj.KindKoopa, obj.KindTurtle, obj.KindMushroom, obj.KindPipe:
		p.Dir = b.dir
	}
	return p
}

func (b brush) label() string {
	s := string(b.kind)
	if v := b.variantName(); v != "" {
		s += " [" + v + "]"
	}
	switch b.kind {
	case obj.KindGoomba, obj.KindKoopa, obj.KindTurtle, obj.KindMushroom:
		s += map[int]string{-1: " <", 0: " -", 1: " >"}[b.dir]
	case obj.KindPipe:
		s += map[int]string{0: " up", 1: " left", 2: " down", 3: " right"}[b.dir]
	}
	return s
}
