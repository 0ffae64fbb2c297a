package obj

import (
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
)

// Config carries the collaborators and constants a World is built with.
type Config struct {
	Tuning Tuning
	// Audio receives sound effects; nil means silent.
	Audio Audio
	// Screen size used for camera clamping and culling; zero means the
	// common base resolution.
	ScreenW int
	ScreenH int
	// Seed drives mystery box drops. Zero picks a fixed default so runs are
	// repeatable.
	Seed int64
}

// World owns every entity of one level: the player singleton, the active
// list, background decorations and the tile grid.
type World struct {
	Width      int
	Height     int
	Background string
	TopScore   int64
	GameOver   bool
	Won        bool
	Camera     cp.Vector

	tuning  Tuning
	audio   Audio
	rng     *rand.Rand
	screenW int
	screenH int

	player     *Player
	active     []Entity
	background []Entity
	tiles      []Entity
	// grid[col][row]
	grid [][]Entity

	staticVersion uint64
	// first error raised inside a reaction during the current step
	err error
}

func NewWorld(width, height int, background string, cfg Config) *World {
	if cfg.Audio == nil {
		cfg.Audio = NopAudio{}
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = common.BaseWidth, common.BaseHeight
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}

	cols := int(math.Ceil(float64(width)/common.TileSize)) + 1
	rows := int(math.Ceil(float64(height)/common.TileSize)) + 1
	grid := make([][]Entity, cols)
	for i := range grid {
		grid[i] = make([]Entity, rows)
	}

	return &World{
		Width:      width,
		Height:     height,
		Background: background,
		tuning:     cfg.Tuning.withDefaults(),
		audio:      cfg.Audio,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		screenW:    cfg.ScreenW,
		screenH:    cfg.ScreenH,
		grid:       grid,
	}
}

func (w *World) Tuning() Tuning { return w.tuning }

// SetTuning swaps the gameplay constants, e.g. after a config reload.
func (w *World) SetTuning(t Tuning) { w.tuning = t.withDefaults() }

// SetAudio replaces the sound sink; nil silences the world.
func (w *World) SetAudio(a Audio) {
	if a == nil {
		a = NopAudio{}
	}
	w.audio = a
}

func (w *World) Player() *Player { return w.player }

// Active returns the active entities in update order. The slice must not be
// modified.
func (w *World) Active() []Entity { return w.active }

func (w *World) Tiles() []Entity { return w.tiles }

func (w *World) Backgrounds() []Entity { return w.background }

// Entities returns every entity in save order: player, active, background,
// tiles.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, 1+len(w.active)+len(w.background)+len(w.tiles))
	if w.player != nil {
		out = append(out, w.player)
	}
	out = append(out, w.active...)
	out = append(out, w.background...)
	return append(out, w.tiles...)
}

// StaticVersion changes whenever the pre-composited layers are stale.
func (w *World) StaticVersion() uint64 { return w.staticVersion }

// TileAt returns the tile covering world point (x, y), if any.
func (w *World) TileAt(x, y float64) Entity {
	return w.tileAt(int(math.Floor(x/common.TileSize)), int(math.Floor(y/common.TileSize)))
}

func (w *World) tileAt(col, row int) Entity {
	if col < 0 || col >= len(w.grid) || row < 0 || row >= len(w.grid[col]) {
		return nil
	}
	return w.grid[col][row]
}

func (w *World) cellOf(b *Body) (int, int) {
	return int(math.Floor(b.Pos.X / common.TileSize)), int(math.Floor(b.Pos.Y / common.TileSize))
}

// Add attaches e to the list matching its category.
func (w *World) Add(e Entity) error {
	if e == nil {
		return fmt.Errorf("obj: add nil entity: %w", ErrInvalidParams)
	}
	b := e.Base()
	if b.world != nil {
		return fmt.Errorf("obj: add %s: %w", e.Kind(), ErrAlreadyOwned)
	}

	switch e.Category() {
	case CategoryPlayer:
		if w.player != nil {
			return ErrDuplicatePlayer
		}
		w.player = e.(*Player)
	case CategoryTile:
		col, row := w.cellOf(b)
		if col < 0 || col >= len(w.grid) || row < 0 || row >= len(w.grid[col]) {
			return fmt.Errorf("obj: add %s at (%.0f, %.0f): %w", e.Kind(), b.Pos.X, b.Pos.Y, ErrOutOfBounds)
		}
		if w.grid[col][row] != nil {
			return fmt.Errorf("obj: add %s at (%.0f, %.0f): %w", e.Kind(), b.Pos.X, b.Pos.Y, ErrCellOccupied)
		}
		w.grid[col][row] = e
		w.tiles = append(w.tiles, e)
		w.staticVersion++
	case CategoryBackground:
		w.background = append(w.background, e)
		w.staticVersion++
	default:
		w.active = append(w.active, e)
	}

	b.world = w
	return nil
}

// Remove detaches e and clears its grid slot.
func (w *World) Remove(e Entity) error {
	if e == nil || e.Base().world != w {
		return ErrNotOwned
	}
	b := e.Base()

	switch e.Category() {
	case CategoryPlayer:
		w.player = nil
	case CategoryTile:
		col, row := w.cellOf(b)
		if w.tileAt(col, row) == e {
			w.grid[col][row] = nil
		}
		w.tiles = without(w.tiles, e)
		w.staticVersion++
	case CategoryBackground:
		w.background = without(w.background, e)
		w.staticVersion++
	default:
		w.active = without(w.active, e)
	}

	b.world = nil
	return nil
}

func without(list []Entity, e Entity) []Entity {
	if i := slices.Index(list, e); i >= 0 {
		return slices.Delete(list, i, i+1)
	}
	return list
}

// IsPlacementAllowed reports whether e may be dropped into the world: tiles
// and passable entities always may, everything else must not overlap the
// player or an active entity.
func (w *World) IsPlacementAllowed(e Entity) bool {
	b := e.Base()
	if e.Category() == CategoryTile || b.passable {
		return true
	}
	if w.player != nil && Entity(w.player) != e && b.Overlaps(&w.player.Body) {
		return false
	}
	for _, o := range w.active {
		if o != e && b.Overlaps(o.Base()) {
			return false
		}
	}
	return true
}

// Place is the editor's add: it checks placement, adds e, pushes it clear of
// its neighbours and re-captures its reconstruction parameters at the final
// position. On failure the world is left unchanged.
func (w *World) Place(e Entity) error {
	if !w.IsPlacementAllowed(e) {
		return fmt.Errorf("obj: place %s: %w", e.Kind(), ErrPlacementBlocked)
	}
	if err := w.Add(e); err != nil {
		return err
	}
	b := e.Base()
	start := b.Pos
	if err := w.settle(e); err != nil {
		_ = w.Remove(e)
		b.Pos = start
		return fmt.Errorf("obj: place %s: %w", e.Kind(), err)
	}
	b.params.X, b.params.Y = b.Pos.X, b.Pos.Y
	return nil
}

// EntityAt returns the topmost entity covering world point (x, y) in draw
// order: player, active (newest first), tiles, background.
func (w *World) EntityAt(x, y float64) Entity {
	if w.player != nil && w.player.Contains(x, y) {
		return w.player
	}
	for i := len(w.active) - 1; i >= 0; i-- {
		if w.active[i].Base().Contains(x, y) {
			return w.active[i]
		}
	}
	if t := w.TileAt(x, y); t != nil {
		return t
	}
	for i := len(w.background) - 1; i >= 0; i-- {
		if w.background[i].Base().Contains(x, y) {
			return w.background[i]
		}
	}
	return nil
}

// Step advances the simulation by dt seconds in sub-steps no longer than
// the tuning's MaxSubStep, then derives the camera. The first invariant
// violation aborts the step and is returned.
func (w *World) Step(dt float64, ctl Controller) error {
	if w == nil || math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return nil
	}
	limit := w.tuning.MaxSubStep
	for passed := 0.0; passed < dt; {
		sub := math.Min(limit, dt-passed)
		if err := w.subStep(sub, ctl); err != nil {
			w.GameOver = true
			return err
		}
		passed += sub
	}

	w.updateCamera()
	if w.GameOver && w.player != nil && int64(w.player.score) > w.TopScore {
		w.TopScore = int64(w.player.score)
	}
	return nil
}

func (w *World) subStep(dt float64, ctl Controller) error {
	w.err = nil
	if w.player != nil {
		if ctl != nil {
			w.player.applyInput(ctl.Poll())
		}
		if err := w.player.update(dt); err != nil {
			return err
		}
	}

	// reactions may add or remove entities; iterate a snapshot and skip
	// anything that left the world meanwhile
	for _, e := range slices.Clone(w.active) {
		if e.Base().world != w {
			continue
		}
		if err := e.update(dt); err != nil {
			return err
		}
	}
	return w.err
}

// fail records an error raised where no error can be returned, such as a
// death transition spawning its replacement.
func (w *World) fail(err error) {
	if w != nil && w.err == nil && err != nil {
		w.err = err
	}
}

func (w *World) play(s Sound) {
	if w != nil && w.audio != nil {
		w.audio.Play(s)
	}
}

// swap replaces old with its successor, used by death and transformation
// reactions.
func (w *World) swap(old Entity, add ...Entity) {
	if w == nil {
		return
	}
	if err := w.Remove(old); err != nil {
		w.fail(err)
		return
	}
	for _, e := range add {
		if err := w.Add(e); err != nil {
			w.fail(fmt.Errorf("obj: spawn %s: %w", e.Kind(), err))
		}
	}
}
