package obj

import (
	"errors"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRemove(t *testing.T) {
	t.Run("duplicate_player", func(t *testing.T) {
		w := NewWorld(300, 150, "sky", Config{})
		mustAdd(t, w, NewPlayer(Params{X: 10, Y: 10}))
		second := NewPlayer(Params{X: 50, Y: 10})
		assert.ErrorIs(t, w.Add(second), ErrDuplicatePlayer)
		assert.Nil(t, second.World())
	})

	t.Run("remove_not_owned", func(t *testing.T) {
		w := NewWorld(300, 150, "sky", Config{})
		other := NewWorld(300, 150, "sky", Config{})
		g := NewGoomba(Params{X: 10, Y: 10})
		assert.ErrorIs(t, w.Remove(g), ErrNotOwned)
		mustAdd(t, other, g)
		assert.ErrorIs(t, w.Remove(g), ErrNotOwned)
		assert.ErrorIs(t, w.Add(g), ErrAlreadyOwned)
	})

	t.Run("tile_grid", func(t *testing.T) {
		w := NewWorld(300, 150, "sky", Config{})
		v := w.StaticVersion()
		tile := NewNormalTile(Params{X: 47, Y: 31, Sprite: "brick"})
		mustAdd(t, w, tile)
		assert.Equal(t, cp.Vector{X: 45, Y: 30}, tile.Pos)
		assert.Same(t, tile, w.TileAt(50, 40))
		assert.Greater(t, w.StaticVersion(), v)

		assert.ErrorIs(t, w.Add(NewNormalTile(Params{X: 46, Y: 32, Sprite: "ground"})), ErrCellOccupied)
		assert.ErrorIs(t, w.Add(NewNormalTile(Params{X: 900, Y: 30, Sprite: "ground"})), ErrOutOfBounds)
		assert.ErrorIs(t, w.Add(NewNormalTile(Params{X: -15, Y: 30, Sprite: "ground"})), ErrOutOfBounds)

		v = w.StaticVersion()
		require.NoError(t, w.Remove(tile))
		assert.Nil(t, w.TileAt(50, 40))
		assert.Empty(t, w.Tiles())
		assert.Greater(t, w.StaticVersion(), v)
		assert.Nil(t, tile.World())
	})

	t.Run("categories", func(t *testing.T) {
		w := NewWorld(300, 150, "sky", Config{})
		p := NewPlayer(Params{X: 10, Y: 10})
		g := NewGoomba(Params{X: 40, Y: 10})
		d := NewDecoration(Params{X: 0, Y: 100, Sprite: "bush"})
		tile := NewNormalTile(Params{X: 0, Y: 135, Sprite: "ground"})
		for _, e := range []Entity{tile, d, g, p} {
			mustAdd(t, w, e)
		}
		assert.Same(t, p, w.Player())
		assert.Equal(t, []Entity{g}, w.Active())
		assert.Equal(t, []Entity{d}, w.Backgrounds())
		assert.Equal(t, []Entity{p, g, d, tile}, w.Entities())
	})
}

func TestIsPlacementAllowed(t *testing.T) {
	w, _ := newTestWorld(t)
	mustAdd(t, w, NewPlayer(Params{X: 30, Y: 115}))

	cases := []struct {
		name string
		e    Entity
		want bool
	}{
		{"tile_over_player", NewNormalTile(Params{X: 30, Y: 115, Sprite: "brick"}), true},
		{"coin_over_player", NewCoin(Params{X: 30, Y: 120}), true},
		{"goomba_over_player", NewGoomba(Params{X: 35, Y: 118}), false},
		{"goomba_clear", NewGoomba(Params{X: 100, Y: 120}), true},
		{"goomba_touching", NewGoomba(Params{X: 45, Y: 120}), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, w.IsPlacementAllowed(c.e))
		})
	}
}

func TestPlace(t *testing.T) {
	t.Run("settles_and_recaptures_params", func(t *testing.T) {
		w, _ := newTestWorld(t)
		g := NewGoomba(Params{X: 30, Y: 125, Dir: -1})
		require.NoError(t, w.Place(g))
		assert.Equal(t, 120.0, g.Pos.Y)
		assert.Equal(t, Params{Kind: KindGoomba, X: 30, Y: 120, Dir: -1}, g.Params())
	})

	t.Run("blocked", func(t *testing.T) {
		w, _ := newTestWorld(t)
		mustAdd(t, w, NewGoomba(Params{X: 30, Y: 120}))
		err := w.Place(NewKoopaTroopa(Params{X: 35, Y: 110}))
		assert.ErrorIs(t, err, ErrPlacementBlocked)
		assert.Len(t, w.Active(), 1)
	})

	t.Run("rolls_back_invariant_violation", func(t *testing.T) {
		w := NewWorld(300, 150, "sky", Config{})
		mustAdd(t, w, NewPipe(Params{X: 90, Y: 105, W: 2, H: 2}))
		tile := NewNormalTile(Params{X: 95, Y: 110, Sprite: "brick"})

		err := w.Place(tile)
		var inv *InvariantError
		require.True(t, errors.As(err, &inv))
		assert.Nil(t, w.TileAt(95, 110))
		assert.Empty(t, w.Tiles())
		assert.Nil(t, tile.World())
	})
}

func TestEntityAt(t *testing.T) {
	w, _ := newTestWorld(t)
	p := NewPlayer(Params{X: 30, Y: 115})
	c := NewCoin(Params{X: 90, Y: 120})
	d := NewDecoration(Params{X: 150, Y: 100, Sprite: "hill"})
	for _, e := range []Entity{p, c, d} {
		mustAdd(t, w, e)
	}

	assert.Same(t, p, w.EntityAt(35, 120))
	assert.Same(t, c, w.EntityAt(91, 121))
	assert.Equal(t, KindTile, w.EntityAt(5, 140).Kind())
	assert.Same(t, d, w.EntityAt(160, 110))
	assert.Nil(t, w.EntityAt(5, 5))
}

func TestSetLivesRunsDeathOnce(t *testing.T) {
	w, audio := newTestWorld(t)
	p := NewPlayer(Params{X: 30, Y: 115})
	mustAdd(t, w, p)

	SetLives(p, 0)
	SetLives(p, 0)
	SetLives(p, -1)

	assert.False(t, p.Alive())
	assert.False(t, p.Movable(Vertical))
	assert.False(t, p.Movable(Horizontal))
	assert.True(t, w.GameOver)
	assert.Equal(t, 1, audio.count(SoundDie))
}

type pollCounter struct{ n int }

func (c *pollCounter) Poll() Intent {
	c.n++
	return Intent{}
}

func TestStepSubSteps(t *testing.T) {
	cases := []struct {
		name  string
		dt    float64
		polls int
	}{
		{"smaller_than_cap", 0.01, 1},
		{"exact_cap", 0.02, 1},
		{"slow_frame", 0.35, 18},
		{"zero", 0, 0},
		{"negative", -0.5, 0},
		{"nan", math.NaN(), 0},
		{"infinite", math.Inf(1), 0},
		{"negative_infinite", math.Inf(-1), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			p := NewPlayer(Params{X: 30, Y: 100})
			mustAdd(t, w, p)
			ctl := &pollCounter{}

			require.NoError(t, w.Step(c.dt, ctl))
			assert.Equal(t, c.polls, ctl.n)
			assert.False(t, w.GameOver)
		})
	}
}

type positionRecorder struct {
	m  *Mushroom
	xs []float64
}

func (p *positionRecorder) Poll() Intent {
	p.xs = append(p.xs, p.m.Pos.X)
	return Intent{}
}

func TestStepBoundsDisplacementPerSubStep(t *testing.T) {
	w := NewWorld(3000, 150, "sky", Config{})
	tn := DefaultTuning()
	tn.Gravity = 0
	w.SetTuning(tn)
	mustAdd(t, w, NewPlayer(Params{X: 2900, Y: 10}))
	m := NewMushroom(Params{X: 10, Y: 10, Dir: 1})
	mustAdd(t, w, m)
	pr := &positionRecorder{m: m}

	require.NoError(t, w.Step(0.35, pr))
	pr.xs = append(pr.xs, m.Pos.X)

	require.Greater(t, len(pr.xs), 2)
	for i := 1; i < len(pr.xs); i++ {
		assert.LessOrEqual(t, pr.xs[i]-pr.xs[i-1], tn.MushroomSpeed*tn.MaxSubStep+1e-9)
	}
	assert.InDelta(t, 10+tn.MushroomSpeed*0.35, m.Pos.X, 1e-6)
}

func TestWorldBounds(t *testing.T) {
	t.Run("falling_below_kills", func(t *testing.T) {
		w, _ := newTestWorld(t)
		g := NewGoomba(Params{X: 30, Y: 151})
		mustAdd(t, w, g)
		require.NoError(t, w.Step(0.02, nil))
		assert.False(t, g.Alive())
	})

	t.Run("right_edge_clamps", func(t *testing.T) {
		w, _ := newTestWorld(t)
		g := NewGoomba(Params{X: 284, Y: 120, Dir: 1})
		mustAdd(t, w, g)
		require.NoError(t, w.Step(0.05, nil))
		assert.True(t, g.Alive())
		assert.LessOrEqual(t, g.Pos.X, 285.0)
		assert.Equal(t, -1, g.Dir(), "enemies turn at the world edge")
	})

	t.Run("top_clamps", func(t *testing.T) {
		w, _ := newTestWorld(t)
		m := NewMushroom(Params{X: 30, Y: 2})
		mustAdd(t, w, m)
		m.Vel.Y = -500
		require.NoError(t, w.Step(0.02, nil))
		assert.Zero(t, m.Pos.Y)
		assert.True(t, m.Alive())
	})
}

func TestCamera(t *testing.T) {
	cases := []struct {
		name  string
		width int
		pos   cp.Vector
		want  cp.Vector
	}{
		{"follows_player", 300, cp.Vector{X: 150, Y: 100}, cp.Vector{X: 57, Y: 0}},
		{"clamped_left", 300, cp.Vector{X: 10, Y: 100}, cp.Vector{}},
		{"clamped_right", 300, cp.Vector{X: 280, Y: 100}, cp.Vector{X: 180}},
		{"world_narrower_than_screen", 100, cp.Vector{X: 80, Y: 100}, cp.Vector{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld(c.width, 150, "sky", Config{ScreenW: 120, ScreenH: 60})
			p := NewPlayer(Params{X: c.pos.X, Y: c.pos.Y})
			mustAdd(t, w, p)
			w.updateCamera()
			assert.Equal(t, c.want, w.Camera)
		})
	}
}

func TestRender(t *testing.T) {
	build := func(t *testing.T) *World {
		w := NewWorld(300, 150, "sky", Config{ScreenW: 120, ScreenH: 60})
		mustAdd(t, w, NewNormalTile(Params{X: 0, Y: 45, Sprite: "ground"}))
		mustAdd(t, w, NewDecoration(Params{X: 15, Y: 30, Sprite: "bush"}))
		mustAdd(t, w, NewGoomba(Params{X: 30, Y: 30}))
		mustAdd(t, w, NewCoin(Params{X: 270, Y: 30}))
		mustAdd(t, w, NewPlayer(Params{X: 60, Y: 25}))
		return w
	}

	t.Run("direct", func(t *testing.T) {
		w := build(t)
		r := &recordingRenderer{}
		w.Render(r)
		assert.Equal(t, []string{"bg:sky", SpriteTile, SpriteDecoration, SpriteGoomba, SpritePlayerStill}, r.names())
	})

	t.Run("cached_static_layers", func(t *testing.T) {
		w := build(t)
		r := &cachingRenderer{}
		w.Render(r)
		w.Render(r)
		assert.Equal(t, 1, r.builds)
		assert.Equal(t, []string{"static", SpriteGoomba, SpritePlayerStill, "static", SpriteGoomba, SpritePlayerStill}, r.names())

		mustAdd(t, w, NewNormalTile(Params{X: 15, Y: 45, Sprite: "ground"}))
		w.Render(r)
		assert.Equal(t, 2, r.builds)
	})
}
