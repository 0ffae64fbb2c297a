package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/platformer/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFile() *File {
	f := &File{
		Version:    Version,
		Width:      300,
		Height:     150,
		Background: "night",
		TopScore:   1200,
		Entities: []obj.Params{
			{Kind: obj.KindPlayer, X: 15, Y: 100},
			{Kind: obj.KindDecoration, X: 200, Y: 30, Sprite: "cloud"},
			{Kind: obj.KindMysteryBox, X: 60, Y: 75, Color: "red"},
			{Kind: obj.KindCoin, X: 90, Y: 90},
			{Kind: obj.KindGoomba, X: 120, Y: 120, Dir: -1},
			{Kind: obj.KindKoopa, X: 150, Y: 113, Dir: -1, Color: "green"},
			{Kind: obj.KindTurtle, X: 180, Y: 122, Color: "red"},
			{Kind: obj.KindPipe, X: 210, Y: 105, W: 2, H: 2, Dir: 1},
			{Kind: obj.KindFlagpole, X: 240, Y: 0, W: 60, H: 135},
		},
	}
	for x := 0; x < f.Width; x += 15 {
		f.Entities = append(f.Entities, obj.Params{Kind: obj.KindTile, X: float64(x), Y: 135, Sprite: "ground"})
	}
	return f
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatMsgpack} {
		t.Run(map[Format]string{FormatJSON: "json", FormatMsgpack: "msgpack"}[format], func(t *testing.T) {
			w, err := Build(sampleFile(), obj.Config{})
			require.NoError(t, err)

			data, err := Encode(Snapshot(w), format)
			require.NoError(t, err)
			decoded, err := Decode(data)
			require.NoError(t, err)

			w2, err := Build(decoded, obj.Config{})
			require.NoError(t, err)

			assert.Equal(t, w.Width, w2.Width)
			assert.Equal(t, w.Height, w2.Height)
			assert.Equal(t, "night", w2.Background)
			assert.Equal(t, int64(1200), w2.TopScore)
			assert.Equal(t, Snapshot(w), Snapshot(w2))

			require.NotNil(t, w2.Player())
			assert.Len(t, w2.Tiles(), 21)
			assert.Len(t, w2.Active(), 6)
			assert.Len(t, w2.Backgrounds(), 1)
			box, ok := w2.TileAt(61, 76).(*obj.MysteryBox)
			require.True(t, ok)
			assert.Equal(t, "red", box.Color())
		})
	}
}

func TestSnapshotOrder(t *testing.T) {
	w, err := Build(sampleFile(), obj.Config{})
	require.NoError(t, err)

	f := Snapshot(w)
	require.Len(t, f.Entities, len(sampleFile().Entities))
	assert.Equal(t, obj.KindPlayer, f.Entities[0].Kind)
	assert.Equal(t, Version, f.Version)
}

func TestDecodeCorrupt(t *testing.T) {
	good, err := Encode(sampleFile(), FormatJSON)
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "whitespace", data: []byte("  \n")},
		{name: "truncated json", data: good[:len(good)/2]},
		{name: "unknown field", data: []byte(`{"version":1,"width":10,"height":10,"lives":3}`)},
		{name: "garbage", data: []byte{0xc1, 0x00, 0xff}},
		{name: "bad version", data: []byte(`{"version":99,"width":10,"height":10}`)},
		{name: "zero size", data: []byte(`{"version":1,"width":0,"height":10}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

func TestBuildBadEntity(t *testing.T) {
	tests := []struct {
		name   string
		params obj.Params
		want   error
	}{
		{name: "unknown kind", params: obj.Params{Kind: "plumber"}, want: obj.ErrUnknownKind},
		{name: "bad color", params: obj.Params{Kind: obj.KindKoopa, Color: "purple"}, want: obj.ErrInvalidParams},
		{name: "second player", params: obj.Params{Kind: obj.KindPlayer, X: 90}, want: obj.ErrDuplicatePlayer},
		{name: "tile outside", params: obj.Params{Kind: obj.KindTile, X: 900, Sprite: "ground"}, want: obj.ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := sampleFile()
			f.Entities = append(f.Entities, tt.params)

			_, err := Build(f, obj.Config{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrCorrupt)

			var ee *EntityError
			require.True(t, errors.As(err, &ee))
			assert.Equal(t, len(f.Entities)-1, ee.Index)
			assert.Equal(t, tt.params.Kind, ee.Kind)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	w, err := Build(sampleFile(), obj.Config{})
	require.NoError(t, err)

	for _, name := range []string{"a.json", "b.lvl", "nested/c.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, w), name)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		if FormatFor(path) == FormatJSON {
			assert.Equal(t, byte('{'), data[0])
		} else {
			assert.NotEqual(t, byte('{'), data[0])
		}

		loaded, err := Load(path, obj.Config{})
		require.NoError(t, err)
		assert.Equal(t, Snapshot(w), Snapshot(loaded))
	}

	_, err = Load(filepath.Join(dir, "missing.lvl"), obj.Config{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveTopScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.lvl")
	require.NoError(t, WriteFile(path, sampleFile()))

	w, err := Load(path, obj.Config{})
	require.NoError(t, err)
	// play a little so the live state differs from the saved layout
	require.NoError(t, w.Step(0.5, nil))
	w.TopScore = 5000
	require.NoError(t, SaveTopScore(path, w))

	f, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), f.TopScore)
	assert.Equal(t, sampleFile().Entities, f.Entities)

	w.TopScore = 10
	require.NoError(t, SaveTopScore(path, w))
	f, err = ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), f.TopScore)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFor("x/level.json"))
	assert.Equal(t, FormatJSON, FormatFor("LEVEL.JSON"))
	assert.Equal(t, FormatMsgpack, FormatFor("level.lvl"))
	assert.Equal(t, FormatMsgpack, FormatFor("level"))
}

func TestBundledLevels(t *testing.T) {
	names := List()
	require.Contains(t, names, "1-1")

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			w, path, err := Open(name, obj.Config{})
			require.NoError(t, err)
			assert.Empty(t, path)
			require.NotNil(t, w.Player())

			for i := 0; i < 60; i++ {
				require.NoError(t, w.Step(1.0/60, nil))
			}
			assert.False(t, w.GameOver)
			assert.True(t, w.Player().Alive())
		})
	}

	_, _, err := Open("no-such-level", obj.Config{})
	assert.Error(t, err)
}

func TestOpenPrefersDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	require.NoError(t, WriteFile(path, sampleFile()))

	w, got, err := Open(path, obj.Config{})
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, 300, w.Width)
}
