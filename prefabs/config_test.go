package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/platformer/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTuningMatchesDefaults(t *testing.T) {
	tun, err := LoadTuning()
	require.NoError(t, err)
	assert.Equal(t, obj.DefaultTuning(), tun)
}

func TestParseTuningKeepsMissingKeys(t *testing.T) {
	tun, err := ParseTuning([]byte("gravity: 900\nmax_sub_step: 0.01\n"))
	require.NoError(t, err)

	want := obj.DefaultTuning()
	want.Gravity = 900
	want.MaxSubStep = 0.01
	assert.Equal(t, want, tun)

	_, err = ParseTuning([]byte("gravity: [1, 2"))
	assert.Error(t, err)
}

func TestPalette(t *testing.T) {
	p, err := LoadPalette()
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{R: 0x6b, G: 0x8c, B: 0xff, A: 0xff}, p.Background("sky"))
	assert.Equal(t, color.Black, p.Background("missing"))

	s := p.Style(obj.SpriteTile, "stone")
	assert.Equal(t, "brick", s.Shape)
	assert.Equal(t, color.NRGBA{R: 0x7c, G: 0x7c, B: 0x7c, A: 0xff}, s.Fill.Color)

	for _, name := range []string{
		obj.SpritePlayerStill, obj.SpriteGoomba, obj.SpriteKoopa, obj.SpriteTurtle,
		obj.SpriteMysteryBox, obj.SpriteCoin, obj.SpriteMushroom, obj.SpriteFlagpole,
		obj.SpritePipe, obj.SpriteDecoration,
	} {
		_, ok := p.Sprites[name]
		assert.True(t, ok, name)
	}
	for _, name := range obj.TileSprites {
		_, ok := p.Variants[name]
		assert.True(t, ok, name)
	}

	fallback := p.Style("nope", "")
	assert.Equal(t, "rect", fallback.Shape)
	assert.NotNil(t, fallback.Accent.Color)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		err  bool
	}{
		{in: "#ff0000", want: color.NRGBA{R: 255, A: 255}},
		{in: "00ff0080", want: color.NRGBA{G: 255, A: 0x80}},
		{in: "#fff", err: true},
		{in: "#gg0000", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	require.NoError(t, os.WriteFile(filepath.Join(dir, TuningFile), []byte("gravity: 1234\n"), 0644))
	tun, err := LoadTuning()
	require.NoError(t, err)
	assert.Equal(t, 1234.0, tun.Gravity)
	assert.Equal(t, obj.DefaultTuning().JumpSpeed, tun.JumpSpeed)
}

func TestScripts(t *testing.T) {
	assert.Equal(t, []string{"coins", "staircase"}, Scripts())

	for _, name := range []string{"staircase", "staircase.tengo", "scripts/staircase.tengo", "prefabs/scripts/staircase"} {
		src, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(src), "place(")
	}

	_, err := LoadScript("missing")
	assert.Error(t, err)
}

func TestWatcherReportsConfigEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, TuningFile), []byte("gravity: 1\n"), 0644))

	select {
	case name := <-w.Events:
		assert.True(t, IsTuning(name))
		assert.False(t, IsPalette(name))
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event")
	}
}
