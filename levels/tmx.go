package levels

import (
	"fmt"
	"io/fs"
	"math"

	"github.com/lafriks/go-tiled"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/obj"
)

// DefaultBackground is used for imported maps, which carry no background.
const DefaultBackground = "sky"

// ImportTMX converts a Tiled map into a level file. Every tile layer cell
// becomes a tile (tileset tile properties "kind", "sprite" and "color" pick
// the variant, default a ground tile) and every object in an object group
// becomes the entity named by its "kind" property or, failing that, its name.
// Coordinates are rescaled from the map's tile size to the game grid.
func ImportTMX(fsys fs.FS, path string) (*File, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("levels: load TMX %s: %w", path, err)
	}
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return nil, fmt.Errorf("levels: TMX %s: zero tile size: %w", path, ErrCorrupt)
	}

	sx := float64(common.TileSize) / float64(m.TileWidth)
	sy := float64(common.TileSize) / float64(m.TileHeight)

	f := &File{
		Version:    Version,
		Width:      m.Width * common.TileSize,
		Height:     m.Height * common.TileSize,
		Background: DefaultBackground,
	}

	for _, layer := range m.Layers {
		for i, tile := range layer.Tiles {
			if tile == nil || tile.IsNil() {
				continue
			}
			p := obj.Params{
				Kind:   obj.KindTile,
				X:      float64((i % m.Width) * common.TileSize),
				Y:      float64((i / m.Width) * common.TileSize),
				Sprite: obj.TileSprites[0],
			}
			if tile.Tileset != nil {
				if tt, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					applyTileProps(&p, tt.Properties)
				}
			}
			f.Entities = append(f.Entities, p)
		}
	}

	for _, og := range m.ObjectGroups {
		for _, o := range og.Objects {
			kind := o.Properties.GetString("kind")
			if kind == "" {
				kind = o.Name
			}
			p := obj.Params{
				Kind:   obj.Kind(kind),
				X:      math.Round(o.X * sx),
				Y:      math.Round(o.Y * sy),
				Dir:    o.Properties.GetInt("dir"),
				Color:  o.Properties.GetString("color"),
				Sprite: o.Properties.GetString("sprite"),
				W:      o.Properties.GetInt("w"),
				H:      o.Properties.GetInt("h"),
			}
			if _, err := obj.NewPreview(p); err != nil {
				return nil, fmt.Errorf("levels: TMX %s: object %q: %w", path, o.Name, err)
			}
			f.Entities = append(f.Entities, p)
		}
	}

	return f, nil
}

type stringProps interface {
	GetString(name string) string
}

func applyTileProps(p *obj.Params, props stringProps) {
	if k := props.GetString("kind"); k == string(obj.KindMysteryBox) {
		p.Kind = obj.KindMysteryBox
		p.Sprite = ""
		p.Color = props.GetString("color")
		return
	}
	if s := props.GetString("sprite"); s != "" {
		p.Sprite = s
	}
}
