package obj

// Axis selects one of the two independently resolved motion axes.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Category decides which world list owns an entity and how it takes part in
// collision queries.
type Category int

const (
	CategoryTile Category = iota
	CategoryPlayer
	CategoryActive
	CategoryBackground
)

func (c Category) String() string {
	switch c {
	case CategoryTile:
		return "tile"
	case CategoryPlayer:
		return "player"
	case CategoryActive:
		return "active"
	case CategoryBackground:
		return "background"
	}
	return "unknown"
}

// Kind is the variant tag stored in level files.
type Kind string

const (
	KindPlayer     Kind = "player"
	KindGoomba     Kind = "goomba"
	KindKoopa      Kind = "koopa"
	KindTurtle     Kind = "turtle"
	KindTile       Kind = "tile"
	KindMysteryBox Kind = "mystery_box"
	KindCoin       Kind = "coin"
	KindMushroom   Kind = "mushroom"
	KindFlagpole   Kind = "flagpole"
	KindPipe       Kind = "pipe"
	KindDecoration Kind = "decoration"
)

// Kinds lists every variant in palette order.
var Kinds = []Kind{
	KindPlayer,
	KindTile,
	KindMysteryBox,
	KindCoin,
	KindGoomba,
	KindKoopa,
	KindTurtle,
	KindMushroom,
	KindPipe,
	KindFlagpole,
	KindDecoration,
}

// IsEnemy reports whether k takes part in stomping and damage.
func (k Kind) IsEnemy() bool {
	return k == KindGoomba || k == KindKoopa || k == KindTurtle
}

// Params are the reconstruction parameters of an entity: everything New
// needs to rebuild it. Unused fields stay zero for a given kind.
//
//	tile:        X, Y, Sprite
//	mystery_box: X, Y, Color
//	coin:        X, Y
//	player:      X, Y, W, H (optional initial box)
//	goomba:      X, Y, Dir
//	koopa:       X, Y, Dir, Color
//	turtle:      X, Y, Dir, Color
//	mushroom:    X, Y, W, H, Color, Dir
//	flagpole:    X, Y, W, H
//	pipe:        X, Y, W, H (in tiles), Dir (quarter turns)
//	decoration:  X, Y, Sprite, W, H (optional)
type Params struct {
	Kind   Kind    `json:"kind" msgpack:"kind"`
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Dir    int     `json:"dir,omitempty" msgpack:"dir,omitempty"`
	Color  string  `json:"color,omitempty" msgpack:"color,omitempty"`
	Sprite string  `json:"sprite,omitempty" msgpack:"sprite,omitempty"`
	W      int     `json:"w,omitempty" msgpack:"w,omitempty"`
	H      int     `json:"h,omitempty" msgpack:"h,omitempty"`
}
