package assets

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
)

type partKind int

const (
	partRect partKind = iota
	partRound
)

// part is one filled primitive of a placeholder sprite, in sprite pixels.
type part struct {
	kind       partKind
	x, y, w, h float32
	accent     bool
}

type spriteKey struct {
	name, variant string
	frame, w, h   int
}

// Sprites paints placeholder images for obj sprites from a palette and
// caches them per name, variant, frame and size.
type Sprites struct {
	palette *prefabs.Palette
	cache   map[spriteKey]*ebiten.Image
}

func NewSprites(p *prefabs.Palette) *Sprites {
	return &Sprites{palette: p, cache: make(map[spriteKey]*ebiten.Image)}
}

// SetPalette swaps the palette and drops every cached image.
func (s *Sprites) SetPalette(p *prefabs.Palette) {
	for _, img := range s.cache {
		img.Deallocate()
	}
	s.palette = p
	s.cache = make(map[spriteKey]*ebiten.Image)
}

func (s *Sprites) Background(name string) color.Color {
	return s.palette.Background(name)
}

// Image returns the unflipped, unrotated image for sp.
func (s *Sprites) Image(sp obj.Sprite) *ebiten.Image {
	if sp.W <= 0 || sp.H <= 0 {
		return nil
	}
	key := spriteKey{sp.Name, sp.Variant, sp.Frame, sp.W, sp.H}
	if img, ok := s.cache[key]; ok {
		return img
	}

	style := s.palette.Style(sp.Name, sp.Variant)
	img := ebiten.NewImage(sp.W, sp.H)
	for _, p := range layout(style.Shape, sp) {
		clr := style.Fill.Color
		if p.accent {
			clr = style.Accent.Color
		}
		switch p.kind {
		case partRound:
			r := min(p.w, p.h) / 2
			vector.DrawFilledCircle(img, p.x+r, p.y+r, r, clr, true)
			vector.DrawFilledCircle(img, p.x+p.w-r, p.y+p.h-r, r, clr, true)
			if p.w > p.h {
				vector.DrawFilledRect(img, p.x+r, p.y, p.w-2*r, p.h, clr, false)
			} else if p.h > p.w {
				vector.DrawFilledRect(img, p.x, p.y+r, p.w, p.h-2*r, clr, false)
			}
		default:
			vector.DrawFilledRect(img, p.x, p.y, p.w, p.h, clr, false)
		}
	}
	s.cache[key] = img
	return img
}

// Draw paints sp at screen position (x, y), applying flip and quarter turns
// about the sprite centre.
func (s *Sprites) Draw(dst *ebiten.Image, sp obj.Sprite, x, y float64) {
	src := sp
	if sp.Turns%2 != 0 {
		// painted upright, so odd turns need the transposed box
		src.W, src.H = sp.H, sp.W
	}
	img := s.Image(src)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(src.W)/2, -float64(src.H)/2)
	if sp.FlipX {
		op.GeoM.Scale(-1, 1)
	}
	if sp.Turns != 0 {
		op.GeoM.Rotate(float64(sp.Turns) * math.Pi / 2)
	}
	op.GeoM.Translate(x+float64(sp.W)/2, y+float64(sp.H)/2)
	dst.DrawImage(img, op)
}

// layout breaks a sprite into primitives. It never touches ebiten so it can
// be checked headless.
func layout(shape string, sp obj.Sprite) []part {
	w, h := float32(sp.W), float32(sp.H)
	if sp.Name == obj.SpriteDecoration {
		switch sp.Variant {
		case "castle":
			return []part{
				{kind: partRect, y: h * 0.2, w: w, h: h * 0.8},
				{kind: partRect, x: w * 0.4, y: h * 0.6, w: w * 0.2, h: h * 0.4, accent: true},
				{kind: partRect, w: w * 0.2, h: h * 0.2},
				{kind: partRect, x: w * 0.4, w: w * 0.2, h: h * 0.2},
				{kind: partRect, x: w * 0.8, w: w * 0.2, h: h * 0.2},
			}
		case "fence":
			return []part{
				{kind: partRect, y: h * 0.3, w: w, h: 2},
				{kind: partRect, x: 2, w: 3, h: h},
				{kind: partRect, x: w/2 - 1.5, w: 3, h: h},
				{kind: partRect, x: w - 5, w: 3, h: h},
			}
		}
		return []part{{kind: partRound, w: w, h: h}}
	}

	switch shape {
	case "brick":
		parts := []part{{kind: partRect, w: w, h: h}}
		if sp.Variant == "ground" || sp.Variant == "brick" {
			parts = append(parts,
				part{kind: partRect, y: h/2 - 0.5, w: w, h: 1, accent: true},
				part{kind: partRect, x: w/2 - 0.5, w: 1, h: h / 2, accent: true},
				part{kind: partRect, y: h - 1, w: w, h: 1, accent: true},
			)
		} else {
			parts = append(parts, border(w, h)...)
		}
		return parts
	case "box":
		parts := append([]part{{kind: partRect, w: w, h: h}}, border(w, h)...)
		return append(parts,
			part{kind: partRect, x: w/2 - 2, y: h * 0.25, w: 4, h: h * 0.3, accent: true},
			part{kind: partRect, x: w/2 - 1, y: h * 0.7, w: 2, h: 2, accent: true},
		)
	case "coin":
		widths := []float32{1, 0.6, 0.2, 0.6}
		cw := w * widths[((sp.Frame%len(widths))+len(widths))%len(widths)]
		return []part{
			{kind: partRound, x: (w - cw) / 2, w: cw, h: h},
			{kind: partRect, x: w/2 - 0.5, y: h * 0.25, w: 1, h: h / 2, accent: true},
		}
	case "round":
		eye := w / 2
		if sp.Name == obj.SpriteTurtle {
			stripe := float32(sp.Frame%4) * w / 4
			return []part{
				{kind: partRound, w: w, h: h},
				{kind: partRect, x: stripe, y: h / 2, w: w / 4, h: 1, accent: true},
			}
		}
		return []part{
			{kind: partRound, w: w, h: h},
			{kind: partRect, x: eye - 2, y: h * 0.3, w: 2, h: 3, accent: true},
			{kind: partRect, x: eye + 1, y: h * 0.3, w: 2, h: 3, accent: true},
		}
	case "figure":
		head := h * 0.35
		leg := float32(0)
		if sp.Frame%2 == 1 {
			leg = 2
		}
		return []part{
			{kind: partRound, x: w * 0.2, w: w * 0.6, h: head},
			{kind: partRect, x: w * 0.1, y: head, w: w * 0.8, h: h - head - 3},
			{kind: partRect, x: w*0.2 - leg, y: h - 3, w: w * 0.25, h: 3, accent: true},
			{kind: partRect, x: w*0.55 + leg, y: h - 3, w: w * 0.25, h: 3, accent: true},
			{kind: partRect, x: w * 0.55, y: head * 0.35, w: 2, h: 2, accent: true},
		}
	case "pole":
		px := w*4/7 - 1
		flagY := float32(4)
		if sp.Frame > 0 {
			flagY = h * 0.5
		}
		return []part{
			{kind: partRect, x: px, y: 4, w: 2, h: h - 4},
			{kind: partRound, x: px - 2, w: 6, h: 6},
			{kind: partRect, x: px - w*0.35, y: flagY, w: w * 0.35, h: 12, accent: true},
			{kind: partRect, x: px - 6, y: h - 12, w: 14, h: 12},
		}
	case "pipe":
		lip := min(h/4, 8)
		return []part{
			{kind: partRect, x: 2, y: lip, w: w - 4, h: h - lip},
			{kind: partRect, w: w, h: lip},
			{kind: partRect, x: 5, y: lip, w: 2, h: h - lip, accent: true},
			{kind: partRect, y: lip - 1, w: w, h: 1, accent: true},
		}
	}

	return append([]part{{kind: partRect, w: w, h: h}}, border(w, h)...)
}

func border(w, h float32) []part {
	return []part{
		{kind: partRect, w: w, h: 1, accent: true},
		{kind: partRect, y: h - 1, w: w, h: 1, accent: true},
		{kind: partRect, w: 1, h: h, accent: true},
		{kind: partRect, x: w - 1, w: 1, h: h, accent: true},
	}
}
