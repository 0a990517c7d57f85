package factory

import (
	"github.com/automoto/duel/archetypes"
	"github.com/automoto/duel/assets"
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, spawn assets.Spawn) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	setupFighter(ecs, player, cfg.Player.Name, spawn, tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		AttackCooldown: cfg.Player.AttackCooldown,
	})

	return player
}

// CreateEnemy spawns the scripted opponent. rng drives its attack rolls and cooldowns.
func CreateEnemy(ecs *ecs.ECS, spawn assets.Spawn, rng components.RandomSource) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	setupFighter(ecs, enemy, cfg.Enemy.Name, spawn, tags.ResolvEnemy)

	components.Enemy.SetValue(enemy, components.EnemyData{
		PursuitRange:   cfg.Enemy.PursuitRange,
		ChaseSpeed:     cfg.Enemy.ChaseSpeed,
		AttackChance:   cfg.Enemy.AttackChance,
		CooldownMin:    cfg.Enemy.CooldownMin,
		CooldownSpread: cfg.Enemy.CooldownSpread,
		Rand:           rng,
	})

	return enemy
}

func setupFighter(ecs *ecs.ECS, e *donburi.Entry, name string, spawn assets.Spawn, side string) {
	pos := components.PositionData{X: spawn.X, Y: spawn.Y}
	components.Position.SetValue(e, pos)

	fighter := components.FighterData{
		Name:      name,
		Facing:    spawn.Facing,
		Width:     cfg.Fighter.Width,
		Height:    cfg.Fighter.Height,
		MoveSpeed: cfg.Fighter.MoveSpeed,
		JumpSpeed: cfg.Fighter.JumpSpeed,
		CanAttack: true,
	}
	components.Fighter.SetValue(e, fighter)

	components.Physics.SetValue(e, components.PhysicsData{
		Gravity: cfg.Physics.Gravity,
		Damping: cfg.Physics.Damping,
	})
	components.State.SetValue(e, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		FrameIndex:    cfg.Animations[cfg.Idle].First,
	})
	components.Health.SetValue(e, components.HealthData{
		Current: cfg.Fighter.Health,
		Max:     cfg.Fighter.Health,
	})
	components.HealthBar.SetValue(e, components.HealthBarData{
		Displayed: float64(cfg.Fighter.Health),
		Target:    cfg.Fighter.Health,
	})

	body := fighter.BodyRect(pos)
	obj := resolv.NewObject(body.Left(), body.Top(), body.Width(), body.Height())
	obj.SetShape(resolv.NewRectangle(0, 0, body.Width(), body.Height()))
	obj.AddTags(tags.ResolvBody, side)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
