package systems

import (
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns the sampled input into the player's intent for this tick:
// horizontal speed, facing, jumps and swings.
func UpdatePlayer(ecs *ecs.ECS) {
	arena := getArena(ecs)
	if arena == nil {
		return
	}
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		fighter := components.Fighter.Get(e)
		physics := components.Physics.Get(e)
		state := components.State.Get(e)
		pos := components.Position.Get(e)

		tickAttackCooldown(fighter, state)

		if state.CurrentState == cfg.Hurt {
			physics.SpeedX = 0
			return
		}

		physics.SpeedX = 0
		if input.Action(cfg.ActionMoveLeft).Pressed {
			physics.SpeedX -= fighter.MoveSpeed
			fighter.Facing = cfg.DirectionLeft
		}
		if input.Action(cfg.ActionMoveRight).Pressed {
			physics.SpeedX += fighter.MoveSpeed
			fighter.Facing = cfg.DirectionRight
		}

		grounded := isGrounded(pos, physics, arena)

		if input.Action(cfg.ActionAttack).Pressed && fighter.CanAttack && state.CurrentState != cfg.Attack {
			startSwing(fighter, state, player.AttackCooldown)
			return
		}

		if state.CurrentState == cfg.Attack {
			return
		}

		if input.Action(cfg.ActionJump).Pressed && grounded {
			physics.SpeedY = -fighter.JumpSpeed
			EnterState(state, cfg.Jump)
			return
		}

		if grounded {
			setLocomotion(state, physics.SpeedX)
		}
	})
}

// setLocomotion picks walk or idle from horizontal speed. Only idle and walk are
// switched between; other states leave through their own exits.
func setLocomotion(state *components.StateData, speedX float64) {
	if state.CurrentState != cfg.Idle && state.CurrentState != cfg.Walk {
		return
	}
	next := cfg.Idle
	if speedX != 0 {
		next = cfg.Walk
	}
	if state.CurrentState != next {
		EnterState(state, next)
	}
}
