package levels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/platformer/obj"
	"github.com/vmihailenco/msgpack/v5"
)

// Format selects the on-disk encoding.
type Format int

const (
	// FormatJSON is the readable format used for bundled levels.
	FormatJSON Format = iota
	// FormatMsgpack is the compact binary format used for .lvl files.
	FormatMsgpack
)

// FormatFor picks the encoding from a file name: .json is JSON, anything
// else is MessagePack.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatMsgpack
}

func Encode(f *File, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("levels: encode json: %w", err)
		}
		return data, nil
	case FormatMsgpack:
		data, err := msgpack.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("levels: encode msgpack: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("levels: unknown format %d", format)
}

// Decode reads either encoding; JSON is recognised by its leading brace.
func Decode(data []byte) (*File, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("levels: empty input: %w", ErrCorrupt)
	}

	var f File
	if trimmed[0] == '{' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("levels: decode json: %w: %w", ErrCorrupt, err)
		}
	} else if err := msgpack.Unmarshal(trimmed, &f); err != nil {
		return nil, fmt.Errorf("levels: decode msgpack: %w: %w", ErrCorrupt, err)
	}

	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Save writes w to path in the format its extension asks for.
func Save(path string, w *obj.World) error {
	return WriteFile(path, Snapshot(w))
}

func WriteFile(path string, f *File) error {
	data, err := Encode(f, FormatFor(path))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Load reads and builds the level stored at path.
func Load(path string, cfg obj.Config) (*obj.World, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	w, err := Build(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// SaveTopScore stores w's top score in the level file at path, keeping the
// saved starting layout untouched.
func SaveTopScore(path string, w *obj.World) error {
	f, err := ReadFile(path)
	if err != nil {
		return err
	}
	if w.TopScore <= f.TopScore {
		return nil
	}
	f.TopScore = w.TopScore
	return WriteFile(path, f)
}
