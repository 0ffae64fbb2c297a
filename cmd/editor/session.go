package main

import (
	"errors"
	"fmt"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
)

const maxUndo = 64

var errNothingToUndo = errors.New("nothing to undo")

// session is the level being edited plus its undo history. It knows nothing
// about input or drawing.
type session struct {
	world *obj.World
	cfg   obj.Config
	path  string
	undo  []*levels.File
	dirty bool
}

func newSession(w *obj.World, path string, cfg obj.Config) *session {
	return &session{world: w, path: path, cfg: cfg}
}

func (s *session) pushUndo() {
	s.undo = append(s.undo, levels.Snapshot(s.world))
	if len(s.undo) > maxUndo {
		s.undo = s.undo[len(s.undo)-maxUndo:]
	}
}

func (s *session) popUndo() {
	if len(s.undo) > 0 {
		s.undo = s.undo[:len(s.undo)-1]
	}
}

// place drops a new entity from b at world point (x, y).
func (s *session) place(b brush, x, y float64) (obj.Entity, error) {
	e, err := obj.New(b.params(x, y))
	if err != nil {
		return nil, err
	}
	s.pushUndo()
	if err := s.world.Place(e); err != nil {
		s.popUndo()
		return nil, err
	}
	s.dirty = true
	return e, nil
}

// erase removes the topmost entity under world point (x, y).
func (s *session) erase(x, y float64) (obj.Entity, bool) {
	e := s.world.EntityAt(x, y)
	if e == nil {
		return nil, false
	}
	s.pushUndo()
	if err := s.world.Remove(e); err != nil {
		s.popUndo()
		return nil, false
	}
	s.dirty = true
	return e, true
}

func (s *session) undoLast() error {
	if len(s.undo) == 0 {
		return errNothingToUndo
	}
	f := s.undo[len(s.undo)-1]
	w, err := levels.Build(f, s.cfg)
	if err != nil {
		return err
	}
	s.undo = s.undo[:len(s.undo)-1]
	w.Camera = s.world.Camera
	s.world = w
	s.dirty = true
	return nil
}

func (s *session) save() error {
	if s.path == "" {
		return fmt.Errorf("no file name")
	}
	if err := levels.Save(s.path, s.world); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

func (s *session) load(path string) error {
	w, err := levels.Load(path, s.cfg)
	if err != nil {
		return err
	}
	s.world = w
	s.path = path
	s.undo = nil
	s.dirty = false
	return nil
}

// export encodes the level as JSON for the clipboard.
func (s *session) export() ([]byte, error) {
	return levels.Encode(levels.Snapshot(s.world), levels.FormatJSON)
}

// importLevel replaces the level with encoded data (either format).
func (s *session) importLevel(data []byte) error {
	f, err := levels.Decode(data)
	if err != nil {
		return err
	}
	w, err := levels.Build(f, s.cfg)
	if err != nil {
		return err
	}
	s.pushUndo()
	s.world = w
	s.dirty = true
	return nil
}

// playtest builds an independent copy of the level by encoding and decoding
// it, so nothing that happens in play reaches the edited layout.
func (s *session) playtest(audio obj.Audio) (*obj.World, error) {
	data, err := levels.Encode(levels.Snapshot(s.world), levels.FormatMsgpack)
	if err != nil {
		return nil, err
	}
	f, err := levels.Decode(data)
	if err != nil {
		return nil, err
	}
	cfg := s.cfg
	cfg.Audio = audio
	w, err := levels.Build(f, cfg)
	if err != nil {
		return nil, err
	}
	if w.Player() == nil {
		return nil, fmt.Errorf("level has no player")
	}
	return w, nil
}
