package systems

import (
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/gamemath"
	"github.com/automoto/duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every fighter's frame timer by one tick.
func UpdateAnimations(ecs *ecs.ECS) {
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		StepAnimation(components.State.Get(e))
	})
}

// StepAnimation advances a single state machine by one tick using cfg.Animations.
// Once FrameTime exceeds the state's threshold the frame moves on and the timer
// restarts; past the last frame the state either wraps or exits.
func StepAnimation(state *components.StateData) {
	def, ok := cfg.Animations[state.CurrentState]
	if !ok {
		EnterState(state, cfg.Idle)
		return
	}

	if def.Pinned {
		state.FrameIndex = def.First
		state.FrameTime++
		return
	}

	state.FrameIndex = gamemath.ClampInt(state.FrameIndex, def.First, def.Last)
	state.FrameTime++
	if state.FrameTime <= def.Threshold {
		return
	}

	state.FrameTime = 0
	state.FrameIndex++
	if state.FrameIndex <= def.Last {
		return
	}

	switch {
	case def.Loops:
		state.FrameIndex = def.First
	case def.OnDone != cfg.StateNone:
		EnterState(state, def.OnDone)
	default:
		state.FrameIndex = def.Last
	}
}
