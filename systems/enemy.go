package systems

import (
	"math"

	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/gamemath"
	"github.com/automoto/duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemy runs the scripted opponent: chase the player until within pursuit range,
// then stand and roll for a swing every tick the cooldown allows.
func UpdateEnemy(ecs *ecs.ECS) {
	arena := getArena(ecs)
	if arena == nil {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerPos := components.Position.Get(playerEntry)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		fighter := components.Fighter.Get(e)
		physics := components.Physics.Get(e)
		state := components.State.Get(e)
		pos := components.Position.Get(e)

		tickAttackCooldown(fighter, state)

		dx := playerPos.X - pos.X
		if dx != 0 {
			fighter.Facing = gamemath.Sign(dx)
		}

		if isBusy(state) {
			physics.SpeedX = 0
			return
		}

		grounded := isGrounded(pos, physics, arena)

		if math.Abs(dx) > enemy.PursuitRange {
			physics.SpeedX = fighter.Facing * enemy.ChaseSpeed
			if physics.SpeedY == 0 && state.CurrentState != cfg.Walk {
				EnterState(state, cfg.Walk)
			}
			return
		}

		physics.SpeedX = 0
		if fighter.CanAttack && enemy.Rand != nil && enemy.Rand.Float64() < enemy.AttackChance {
			startSwing(fighter, state, enemyCooldown(enemy))
			return
		}
		if grounded && state.CurrentState != cfg.Idle {
			EnterState(state, cfg.Idle)
		}
	})
}

func enemyCooldown(enemy *components.EnemyData) int {
	if enemy.CooldownSpread <= 0 {
		return enemy.CooldownMin
	}
	return enemy.CooldownMin + enemy.Rand.Intn(enemy.CooldownSpread)
}
