package common

// Logical screen size shared by the game and the editor.
const (
	BaseWidth  = 1200
	BaseHeight = 600
)

// TileSize is the edge length of one grid cell in world pixels. Changing it
// changes how saved levels are interpreted.
const TileSize = 15
