package levels

import (
	"testing"
	"testing/fstest"

	"github.com/milk9111/platformer/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="30" tileheight="30" infinite="0" nextlayerid="3" nextobjectid="3">
 <tileset firstgid="1" name="blocks" tilewidth="30" tileheight="30" tilecount="3" columns="3">
  <tile id="1">
   <properties>
    <property name="sprite" value="brick"/>
   </properties>
  </tile>
  <tile id="2">
   <properties>
    <property name="kind" value="mystery_box"/>
    <property name="color" value="blue"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="ground" width="4" height="3">
  <data encoding="csv">
0,0,3,0,
0,0,0,0,
1,2,1,1
</data>
 </layer>
 <objectgroup id="2" name="entities">
  <object id="1" name="player" x="30" y="30" width="30" height="30"/>
  <object id="2" name="enemy" x="90" y="30" width="30" height="30">
   <properties>
    <property name="kind" value="goomba"/>
    <property name="dir" type="int" value="-1"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestImportTMX(t *testing.T) {
	fsys := fstest.MapFS{"maps/level.tmx": {Data: []byte(testTMX)}}

	f, err := ImportTMX(fsys, "maps/level.tmx")
	require.NoError(t, err)

	assert.Equal(t, 60, f.Width)
	assert.Equal(t, 45, f.Height)
	assert.Equal(t, DefaultBackground, f.Background)

	assert.Equal(t, []obj.Params{
		{Kind: obj.KindMysteryBox, X: 30, Y: 0, Color: "blue"},
		{Kind: obj.KindTile, X: 0, Y: 30, Sprite: "ground"},
		{Kind: obj.KindTile, X: 15, Y: 30, Sprite: "brick"},
		{Kind: obj.KindTile, X: 30, Y: 30, Sprite: "ground"},
		{Kind: obj.KindTile, X: 45, Y: 30, Sprite: "ground"},
		{Kind: obj.KindPlayer, X: 15, Y: 15},
		{Kind: obj.KindGoomba, X: 45, Y: 15, Dir: -1},
	}, f.Entities)

	w, err := Build(f, obj.Config{})
	require.NoError(t, err)
	require.NotNil(t, w.Player())
	assert.Len(t, w.Tiles(), 5)
}

func TestImportTMXErrors(t *testing.T) {
	bad := fstest.MapFS{
		"bad.tmx": {Data: []byte(`<map version="1.10" width="1" height="1" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="entities">
  <object id="1" name="dragon" x="0" y="0"/>
 </objectgroup>
</map>`)},
	}

	_, err := ImportTMX(bad, "bad.tmx")
	assert.ErrorIs(t, err, obj.ErrUnknownKind)

	_, err = ImportTMX(bad, "missing.tmx")
	assert.Error(t, err)
}
