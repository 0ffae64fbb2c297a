package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/platformer/obj"
	"gopkg.in/yaml.v3"
)

const (
	TuningFile  = "tuning.yaml"
	PaletteFile = "palette.yaml"
)

func LoadYAML[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var v T
	if err := yaml.Unmarshal(data, &v); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return v, nil
}

// LoadTuning reads tuning.yaml over the built-in defaults, so a file only
// needs the keys it changes.
func LoadTuning() (obj.Tuning, error) {
	data, err := Load(TuningFile)
	if err != nil {
		return obj.DefaultTuning(), fmt.Errorf("prefabs: load %s: %w", TuningFile, err)
	}
	return ParseTuning(data)
}

func ParseTuning(data []byte) (obj.Tuning, error) {
	t := obj.DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return obj.DefaultTuning(), fmt.Errorf("prefabs: unmarshal %s: %w", TuningFile, err)
	}
	return t, nil
}

// SpriteStyle describes how a placeholder sprite is painted.
type SpriteStyle struct {
	Fill   YAMLColor `yaml:"fill"`
	Accent YAMLColor `yaml:"accent"`
	// Shape is one of rect, round, brick, pole, pipe, box, coin, figure.
	Shape string `yaml:"shape"`
}

// Palette maps sprite and variant names to colours for the procedural
// renderer.
type Palette struct {
	Backgrounds map[string]YAMLColor   `yaml:"backgrounds"`
	Sprites     map[string]SpriteStyle `yaml:"sprites"`
	// Variants override the fill of a sprite variant (tile names, colours,
	// decoration names).
	Variants map[string]YAMLColor `yaml:"variants"`
}

func LoadPalette() (*Palette, error) {
	p, err := LoadYAML[Palette](PaletteFile)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Style resolves the style of sprite name with an optional variant.
func (p *Palette) Style(name, variant string) SpriteStyle {
	s, ok := p.Sprites[name]
	if !ok {
		s = SpriteStyle{Fill: YAMLColor{color.NRGBA{R: 255, B: 255, A: 255}}, Shape: "rect"}
	}
	if c, ok := p.Variants[variant]; ok && variant != "" {
		s.Fill = c
	}
	if s.Accent.Color == nil {
		s.Accent = YAMLColor{color.Black}
	}
	return s
}

// Background returns the clear colour of a named background.
func (p *Palette) Background(name string) color.Color {
	if c, ok := p.Backgrounds[name]; ok && c.Color != nil {
		return c.Color
	}
	return color.Black
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// ParseHexColor reads #rrggbb or #rrggbbaa.
func ParseHexColor(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	var out [4]uint8
	out[3] = 255
	for i := 0; i < len(s)/2; i++ {
		b, err := parse(i * 2)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
		}
		out[i] = b
	}
	return color.NRGBA{R: out[0], G: out[1], B: out[2], A: out[3]}, nil
}
