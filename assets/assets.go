package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/automoto/duel/config"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// ArenaPath is the embedded map the duel scene loads.
const ArenaPath = "levels/arena.tmx"

// Spawn is a fighter start point on the ground line.
type Spawn struct {
	X      float64
	Y      float64
	Facing float64
}

// Arena is the playfield a match takes place on.
type Arena struct {
	Name        string
	Width       float64
	Height      float64
	GroundY     float64
	MarginLeft  float64
	MarginRight float64
	PlayerSpawn Spawn
	EnemySpawn  Spawn
}

// MinX is the leftmost X a fighter may stand on.
func (a Arena) MinX() float64 {
	return a.MarginLeft
}

// MaxX is the rightmost X a fighter may stand on.
func (a Arena) MaxX() float64 {
	return a.Width - a.MarginRight
}

var errNoGround = errors.New("arena has no Ground object")

// DefaultArena builds an Arena from config.Arena.
func DefaultArena() Arena {
	return Arena{
		Name:        "default",
		Width:       config.Arena.Width,
		Height:      config.Arena.Height,
		GroundY:     config.Arena.GroundY,
		MarginLeft:  config.Arena.MarginLeft,
		MarginRight: config.Arena.MarginRight,
		PlayerSpawn: Spawn{X: config.Arena.PlayerSpawnX, Y: config.Arena.GroundY, Facing: config.DirectionRight},
		EnemySpawn:  Spawn{X: config.Arena.EnemySpawnX, Y: config.Arena.GroundY, Facing: config.DirectionLeft},
	}
}

// LoadArena reads a Tiled map from fsys. The map must carry a "Ground" object group;
// spawn groups fall back to the config defaults when missing.
func LoadArena(fsys fs.FS, path string) (Arena, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return Arena{}, fmt.Errorf("load arena %s: %w", path, err)
	}

	arena := DefaultArena()
	arena.Name = path
	arena.Width = float64(levelMap.Width * levelMap.TileWidth)
	arena.Height = float64(levelMap.Height * levelMap.TileHeight)

	foundGround := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			for _, o := range og.Objects {
				foundGround = true
				arena.GroundY = o.Y
				if v := o.Properties.GetFloat("marginLeft"); v > 0 {
					arena.MarginLeft = v
				}
				if v := o.Properties.GetFloat("marginRight"); v > 0 {
					arena.MarginRight = v
				}
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				arena.PlayerSpawn = spawnFromObject(o, config.DirectionRight)
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				arena.EnemySpawn = spawnFromObject(o, config.DirectionLeft)
			}
		}
	}

	if !foundGround {
		return Arena{}, fmt.Errorf("load arena %s: %w", path, errNoGround)
	}
	if arena.MaxX() <= arena.MinX() {
		return Arena{}, fmt.Errorf("load arena %s: margins leave no room (min %.0f, max %.0f)", path, arena.MinX(), arena.MaxX())
	}
	return arena, nil
}

// MustLoadDefaultArena loads the embedded arena and falls back to config defaults.
func MustLoadDefaultArena() Arena {
	arena, err := LoadArena(assetFS, ArenaPath)
	if err != nil {
		log.Printf("Warning: Could not load arena, using defaults: %v", err)
		return DefaultArena()
	}
	return arena
}

func spawnFromObject(o *tiled.Object, fallbackFacing float64) Spawn {
	facing := fallbackFacing
	switch o.Properties.GetInt("facing") {
	case 1:
		facing = config.DirectionRight
	case -1:
		facing = config.DirectionLeft
	}
	return Spawn{X: o.X, Y: o.Y, Facing: facing}
}
