package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/platformer/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSounds(t *testing.T) {
	for _, s := range obj.Sounds {
		t.Run(string(s), func(t *testing.T) {
			pcm, err := LoadSound(s)
			require.NoError(t, err)
			assert.NotEmpty(t, pcm)
			// 16-bit stereo frames
			assert.Zero(t, len(pcm)%4)
		})
	}

	_, err := LoadSound("fanfare")
	assert.Error(t, err)
}

func TestLoadFilePrefersDisk(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sounds"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sounds", "coin.wav"), []byte("not a wav"), 0644))

	data, err := LoadFile("assets/sounds/coin.wav")
	require.NoError(t, err)
	assert.Equal(t, "not a wav", string(data))

	_, err = LoadSound(obj.SoundCoin)
	assert.Error(t, err)

	_, err = LoadSound(obj.SoundJump)
	assert.NoError(t, err)
}

func TestLayoutStaysInsideSprite(t *testing.T) {
	sprites := []struct {
		shape string
		sp    obj.Sprite
	}{
		{"brick", obj.Sprite{Name: obj.SpriteTile, Variant: "ground", W: 15, H: 15}},
		{"brick", obj.Sprite{Name: obj.SpriteTile, Variant: "stone", W: 15, H: 15}},
		{"box", obj.Sprite{Name: obj.SpriteMysteryBox, W: 15, H: 15}},
		{"coin", obj.Sprite{Name: obj.SpriteCoin, Frame: 2, W: 15, H: 15}},
		{"round", obj.Sprite{Name: obj.SpriteGoomba, W: 15, H: 15}},
		{"round", obj.Sprite{Name: obj.SpriteTurtle, Frame: 3, W: 15, H: 13}},
		{"figure", obj.Sprite{Name: obj.SpritePlayerRun, Frame: 1, W: 15, H: 20}},
		{"pipe", obj.Sprite{Name: obj.SpritePipe, W: 30, H: 45}},
		{"round", obj.Sprite{Name: obj.SpriteDecoration, Variant: "castle", W: 75, H: 75}},
		{"round", obj.Sprite{Name: obj.SpriteDecoration, Variant: "fence", W: 45, H: 12}},
		{"", obj.Sprite{Name: "unknown", W: 10, H: 10}},
	}
	for _, tt := range sprites {
		t.Run(tt.sp.Name+"/"+tt.sp.Variant, func(t *testing.T) {
			parts := layout(tt.shape, tt.sp)
			require.NotEmpty(t, parts)
			for _, p := range parts {
				assert.GreaterOrEqual(t, p.x, float32(-1))
				assert.GreaterOrEqual(t, p.y, float32(0))
				assert.LessOrEqual(t, p.x+p.w, float32(tt.sp.W)+1)
				assert.LessOrEqual(t, p.y+p.h, float32(tt.sp.H))
			}
		})
	}
}

func TestCoinSpins(t *testing.T) {
	widths := make([]float32, 4)
	for f := range widths {
		parts := layout("coin", obj.Sprite{Name: obj.SpriteCoin, Frame: f, W: 15, H: 15})
		widths[f] = parts[0].w
	}
	assert.Equal(t, []float32{15, 9, 3, 9}, widths)
}

func TestDecorationShapes(t *testing.T) {
	assert.Len(t, layout("round", obj.Sprite{Name: obj.SpriteDecoration, Variant: "castle", W: 75, H: 75}), 5)
	assert.Len(t, layout("round", obj.Sprite{Name: obj.SpriteDecoration, Variant: "cloud", W: 48, H: 24}), 1)
}
