package obj

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"
)

type recordingAudio struct {
	played []Sound
}

func (r *recordingAudio) Play(s Sound) { r.played = append(r.played, s) }

func (r *recordingAudio) count(s Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

// newTestWorld returns a 300x150 world with a ground row at y=135.
func newTestWorld(t *testing.T) (*World, *recordingAudio) {
	t.Helper()
	a := &recordingAudio{}
	w := NewWorld(300, 150, "sky", Config{Audio: a, ScreenW: 120, ScreenH: 60})
	for x := 0; x < 300; x += 15 {
		mustAdd(t, w, NewNormalTile(Params{X: float64(x), Y: 135, Sprite: "ground"}))
	}
	return w, a
}

func mustAdd(t *testing.T, w *World, e Entity) {
	t.Helper()
	require.NoError(t, w.Add(e))
}

type drawCall struct {
	name string
	at   cp.Vector
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawBackground(name string, camera cp.Vector) {
	r.calls = append(r.calls, drawCall{name: "bg:" + name, at: camera})
}

func (r *recordingRenderer) DrawSprite(s Sprite, at cp.Vector) {
	r.calls = append(r.calls, drawCall{name: s.Name, at: at})
}

func (r *recordingRenderer) names() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.name
	}
	return out
}

type cachingRenderer struct {
	recordingRenderer
	builtVersion uint64
	builds       int
}

func (c *cachingRenderer) DrawStatic(version uint64, camera cp.Vector, build func(Renderer)) {
	if c.builds == 0 || version != c.builtVersion {
		inner := &recordingRenderer{}
		build(inner)
		c.builtVersion = version
		c.builds++
	}
	c.calls = append(c.calls, drawCall{name: "static", at: camera})
}
