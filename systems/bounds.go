package systems

import (
	"github.com/automoto/duel/components"
	"github.com/automoto/duel/gamemath"
	"github.com/automoto/duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBounds keeps fighters inside the arena margins and above the ground, then
// moves each body object in the collision space to match.
func UpdateBounds(ecs *ecs.ECS) {
	arena := getArena(ecs)
	if arena == nil {
		return
	}

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		pos.X = gamemath.Clamp(pos.X, arena.MinX(), arena.MaxX())
		if pos.Y > arena.GroundY {
			pos.Y = arena.GroundY
		}
	})

	UpdateObjects(ecs)
}

// UpdateObjects syncs every body object with its fighter's position.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			continue
		}
		body := components.Fighter.Get(e).BodyRect(*components.Position.Get(e))
		obj.X = body.Left()
		obj.Y = body.Top()
		obj.Update()
	}
}
