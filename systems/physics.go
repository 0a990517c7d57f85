package systems

import (
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies damped gravity, integrates both axes and lands fighters on the
// ground baseline. Horizontal speed is owned by the controllers; no friction here.
func UpdatePhysics(ecs *ecs.ECS) {
	arena := getArena(ecs)
	if arena == nil {
		return
	}

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		pos := components.Position.Get(e)

		physics.SpeedY += physics.Gravity * physics.Damping

		pos.X += physics.SpeedX
		pos.Y += physics.SpeedY

		if pos.Y > arena.GroundY {
			pos.Y = arena.GroundY
			physics.SpeedY = 0

			state := components.State.Get(e)
			if state.CurrentState == cfg.Jump {
				EnterState(state, cfg.Idle)
			}
		}
	})
}
