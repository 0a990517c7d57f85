package archetypes

import (
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Position,
		components.Physics,
		components.State,
		components.Health,
		components.HealthBar,
		components.Object,
	)
	Player = Fighter.with(
		tags.Player,
		components.Player,
	)
	Enemy = Fighter.with(
		tags.Enemy,
		components.Enemy,
	)
	Space = newArchetype(
		components.Space,
	)
	Match = newArchetype(
		components.Match,
	)
	Input = newArchetype(
		components.Input,
	)
	Arena = newArchetype(
		components.Arena,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) with(cs ...donburi.IComponentType) *archetype {
	merged := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	merged = append(merged, a.components...)
	merged = append(merged, cs...)
	return &archetype{components: merged}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		all...,
	))
	return e
}
