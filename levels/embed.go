package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/milk9111/platformer/obj"
)

//go:embed *.json
var LevelsFS embed.FS

// List returns the names of the bundled levels without extension.
func List() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, strings.TrimSuffix(e.Name(), ".json"))
		}
	}
	sort.Strings(names)
	return names
}

// LoadLevelFromFS reads a bundled level by name; the .json suffix is optional.
func LoadLevelFromFS(name string) (*File, error) {
	clean := path.Base(name)
	if !strings.HasSuffix(clean, ".json") {
		clean += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	f, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", clean, err)
	}
	return f, nil
}

// Open resolves name as a file on disk first and falls back to the bundled
// levels. It returns the built world and the disk path, which is empty for
// bundled levels.
func Open(name string, cfg obj.Config) (*obj.World, string, error) {
	if _, err := os.Stat(name); err == nil {
		w, err := Load(name, cfg)
		return w, name, err
	}
	f, err := LoadLevelFromFS(name)
	if err != nil {
		return nil, "", err
	}
	w, err := Build(f, cfg)
	return w, "", err
}
