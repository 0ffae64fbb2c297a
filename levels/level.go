package levels

import (
	"errors"
	"fmt"

	"github.com/milk9111/platformer/obj"
)

// Version is the current level file layout.
const Version = 1

// ErrCorrupt wraps every failure to read a level file.
var ErrCorrupt = errors.New("levels: corrupt level data")

// File is the serialized form of a world: its size, background, best score
// and the reconstruction parameters of every entity in save order.
type File struct {
	Version    int          `json:"version" msgpack:"version"`
	Width      int          `json:"width" msgpack:"width"`
	Height     int          `json:"height" msgpack:"height"`
	Background string       `json:"background" msgpack:"background"`
	TopScore   int64        `json:"top_score" msgpack:"top_score"`
	Entities   []obj.Params `json:"entities" msgpack:"entities"`
}

// EntityError reports an entity record that could not be rebuilt.
type EntityError struct {
	Index int
	Kind  obj.Kind
	Err   error
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("levels: entity %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *EntityError) Unwrap() error { return e.Err }

// Is makes every bad entity record count as corrupt data.
func (e *EntityError) Is(target error) bool { return target == ErrCorrupt }

// Snapshot captures w as a level file.
func Snapshot(w *obj.World) *File {
	ents := w.Entities()
	f := &File{
		Version:    Version,
		Width:      w.Width,
		Height:     w.Height,
		Background: w.Background,
		TopScore:   w.TopScore,
		Entities:   make([]obj.Params, 0, len(ents)),
	}
	for _, e := range ents {
		f.Entities = append(f.Entities, e.Params())
	}
	return f
}

// Build reconstructs a world from f, re-adding every entity so ownership and
// grid placement are re-established.
func Build(f *File, cfg obj.Config) (*obj.World, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	w := obj.NewWorld(f.Width, f.Height, f.Background, cfg)
	w.TopScore = f.TopScore
	for i, p := range f.Entities {
		e, err := obj.New(p)
		if err != nil {
			return nil, &EntityError{Index: i, Kind: p.Kind, Err: err}
		}
		if err := w.Add(e); err != nil {
			return nil, &EntityError{Index: i, Kind: p.Kind, Err: err}
		}
	}
	return w, nil
}

func (f *File) validate() error {
	if f == nil {
		return fmt.Errorf("levels: empty file: %w", ErrCorrupt)
	}
	if f.Version < 1 || f.Version > Version {
		return fmt.Errorf("levels: unsupported version %d: %w", f.Version, ErrCorrupt)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("levels: invalid size %dx%d: %w", f.Width, f.Height, ErrCorrupt)
	}
	return nil
}
