package factory

import (
	"github.com/automoto/duel/archetypes"
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch creates the running match singleton, carrying over the saved record.
func CreateMatch(ecs *ecs.ECS, record components.RecordData) *donburi.Entry {
	entry := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(entry, components.MatchData{
		State:     cfg.MatchStateRunning,
		Winner:    cfg.WinnerNone,
		Record:    record,
		ShowDebug: cfg.Debug.ShowHitboxes,
	})
	return entry
}

// CreateInput creates the input singleton. The zero value has nothing pressed.
func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}
