package assets

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArena_Embedded(t *testing.T) {
	arena, err := LoadArena(assetFS, ArenaPath)
	require.NoError(t, err)

	assert.Equal(t, 800.0, arena.Width)
	assert.Equal(t, 448.0, arena.Height)
	assert.Equal(t, 400.0, arena.GroundY)
	assert.Equal(t, 30.0, arena.MinX())
	assert.Equal(t, 740.0, arena.MaxX())

	assert.Equal(t, 200.0, arena.PlayerSpawn.X)
	assert.Equal(t, 400.0, arena.PlayerSpawn.Y)
	assert.Equal(t, 1.0, arena.PlayerSpawn.Facing)
	assert.Equal(t, 600.0, arena.EnemySpawn.X)
	assert.Equal(t, -1.0, arena.EnemySpawn.Facing)
}

func TestLoadArena_MissingGround(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/empty.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="20" y="100"><point/></object>
 </objectgroup>
</map>`)},
	}

	_, err := LoadArena(fsys, "levels/empty.tmx")
	assert.ErrorIs(t, err, errNoGround)
}

func TestLoadArena_MissingFile(t *testing.T) {
	_, err := LoadArena(fstest.MapFS{}, "levels/nope.tmx")
	assert.Error(t, err)
}

func TestMustLoadDefaultArena(t *testing.T) {
	arena := MustLoadDefaultArena()
	assert.Equal(t, ArenaPath, arena.Name)
	assert.Less(t, arena.MinX(), arena.MaxX())
}

func TestDefaultArena(t *testing.T) {
	arena := DefaultArena()
	assert.Equal(t, 740.0, arena.MaxX())
	assert.Equal(t, arena.GroundY, arena.EnemySpawn.Y)
}
