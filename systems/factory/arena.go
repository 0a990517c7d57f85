package factory

import (
	"github.com/automoto/duel/archetypes"
	"github.com/automoto/duel/assets"
	"github.com/automoto/duel/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena stores the playfield as a singleton.
func CreateArena(ecs *ecs.ECS, arena assets.Arena) *donburi.Entry {
	entry := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(entry, components.ArenaData{Arena: arena})
	return entry
}
