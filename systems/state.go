package systems

import (
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
)

// EnterState is the only way a fighter changes state. It records the previous state,
// moves to the entry frame of the new one and restarts the frame timer.
func EnterState(state *components.StateData, next cfg.StateID) {
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.FrameIndex = cfg.Animations[next].First
	state.FrameTime = 0
}

// isBusy reports whether the fighter is locked into a swing or a hit reaction.
func isBusy(state *components.StateData) bool {
	return state.CurrentState == cfg.Attack || state.CurrentState == cfg.Hurt
}

// isGrounded reports whether the fighter stands on the ground baseline.
func isGrounded(pos *components.PositionData, physics *components.PhysicsData, arena *components.ArenaData) bool {
	return physics.SpeedY == 0 && pos.Y >= arena.GroundY
}

// startSwing puts the fighter into its attack state and arms the cooldown.
func startSwing(fighter *components.FighterData, state *components.StateData, cooldown int) {
	EnterState(state, cfg.Attack)
	fighter.CanAttack = false
	fighter.AttackCooldown = cooldown
	fighter.SwingLanded = false
}

// tickAttackCooldown counts down a spent attack. When it runs out attacking is
// allowed again and a swing that is somehow still running is cut short.
func tickAttackCooldown(fighter *components.FighterData, state *components.StateData) {
	if fighter.CanAttack {
		return
	}
	if fighter.AttackCooldown > 0 {
		fighter.AttackCooldown--
	}
	if fighter.AttackCooldown <= 0 {
		fighter.AttackCooldown = 0
		fighter.CanAttack = true
		if state.CurrentState == cfg.Attack {
			EnterState(state, cfg.Idle)
		}
	}
}
