package obj

import "github.com/milk9111/platformer/common"

// Sprite names understood by renderers. Frame selects the animation frame of
// multi-frame sprites.
const (
	SpritePlayerStill    = "player_still"
	SpritePlayerRun      = "player_run"
	SpritePlayerDuck     = "player_duck"
	SpritePlayerFlagpole = "player_flagpole"
	SpriteGoomba         = "goomba"
	SpriteGoombaDeath    = "goomba_death"
	SpriteKoopa          = "koopa"
	SpriteTurtle         = "turtle"
	SpriteTile           = "tile"
	SpriteMysteryBox     = "mystery_box"
	SpriteCoin           = "coin"
	SpriteMushroom       = "mushroom"
	SpriteFlagpole       = "flagpole"
	SpritePipe           = "pipe"
	SpriteDecoration     = "decoration"
)

const (
	playerRunFrames      = 3
	playerFlagpoleFrames = 2
	goombaFrames         = 2
	koopaFrames          = 2
	turtleFrames         = 4
	coinFrames           = 4
)

type size struct{ w, h int }

// unscaled sprite sizes; the player is scaled down by its power-up state.
var spriteSizes = map[string]size{
	SpritePlayerStill:    {20, 26},
	SpritePlayerRun:      {20, 26},
	SpritePlayerDuck:     {20, 18},
	SpritePlayerFlagpole: {18, 26},
	SpriteGoomba:         {common.TileSize, common.TileSize},
	SpriteGoombaDeath:    {common.TileSize, 8},
	SpriteKoopa:          {common.TileSize, 22},
	SpriteTurtle:         {common.TileSize, 13},
	SpriteMushroom:       {common.TileSize, common.TileSize},
	SpriteFlagpole:       {60, 150},
}

// TileSprites are the names a plain tile may use. The "* solid" entries are
// what a mystery box turns into.
var TileSprites = []string{
	"ground",
	"brick",
	"block",
	"stone",
	"brown solid",
	"blue solid",
	"red solid",
}

// DecorationSprites maps background sprite names to their default size.
var DecorationSprites = map[string]struct{ W, H int }{
	"bush":   {45, 15},
	"cloud":  {48, 24},
	"hill":   {75, 35},
	"fence":  {45, 12},
	"castle": {75, 75},
}

var (
	mysteryColors  = []string{"yellow", "blue", "red"}
	koopaColors    = []string{"blue", "green", "red"}
	mushroomColors = []string{"red", "blue"}
)
