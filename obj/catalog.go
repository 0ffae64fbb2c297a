package obj

import (
	"fmt"
	"slices"
)

// New rebuilds an entity from its reconstruction parameters. Grid-bound
// kinds are snapped to the tile grid.
func New(p Params) (Entity, error) {
	return build(p, false)
}

// NewPreview builds an entity for display only, keeping its position
// unaligned. Previews must never be added to a world.
func NewPreview(p Params) (Entity, error) {
	return build(p, true)
}

func build(p Params, free bool) (Entity, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	switch p.Kind {
	case KindPlayer:
		return NewPlayer(p), nil
	case KindGoomba:
		return NewGoomba(p), nil
	case KindKoopa:
		return NewKoopaTroopa(p), nil
	case KindTurtle:
		return NewTurtle(p), nil
	case KindTile:
		return newNormalTile(p, free), nil
	case KindMysteryBox:
		return newMysteryBox(p, free), nil
	case KindCoin:
		return newCoin(p, free), nil
	case KindMushroom:
		return NewMushroom(p), nil
	case KindFlagpole:
		return NewFlagpole(p), nil
	case KindPipe:
		return newPipe(p, free), nil
	case KindDecoration:
		return NewDecoration(p), nil
	}
	return nil, fmt.Errorf("obj: kind %q: %w", p.Kind, ErrUnknownKind)
}

func validate(p Params) error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("obj: %s: %s: %w", p.Kind, fmt.Sprintf(format, args...), ErrInvalidParams)
	}
	if p.W < 0 || p.H < 0 {
		return bad("negative size %dx%d", p.W, p.H)
	}
	switch p.Kind {
	case KindGoomba, KindKoopa, KindTurtle, KindMushroom:
		if p.Dir < -1 || p.Dir > 1 {
			return bad("direction %d", p.Dir)
		}
	}

	switch p.Kind {
	case KindTile:
		if !slices.Contains(TileSprites, p.Sprite) {
			return bad("sprite %q", p.Sprite)
		}
	case KindMysteryBox:
		if p.Color != "" && !slices.Contains(mysteryColors, p.Color) {
			return bad("color %q", p.Color)
		}
	case KindKoopa, KindTurtle:
		if p.Color != "" && !slices.Contains(koopaColors, p.Color) {
			return bad("color %q", p.Color)
		}
	case KindMushroom:
		if p.Color != "" && !slices.Contains(mushroomColors, p.Color) {
			return bad("color %q", p.Color)
		}
	case KindDecoration:
		if _, ok := DecorationSprites[p.Sprite]; !ok && (p.W == 0 || p.H == 0) {
			return bad("sprite %q without size", p.Sprite)
		}
	}
	return nil
}

// Colors returns the colour choices of a kind, or nil if it has none.
func Colors(k Kind) []string {
	switch k {
	case KindMysteryBox:
		return slices.Clone(mysteryColors)
	case KindKoopa, KindTurtle:
		return slices.Clone(koopaColors)
	case KindMushroom:
		return slices.Clone(mushroomColors)
	}
	return nil
}
