package systems

import (
	"log"

	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewMatchSystem returns the terminal check. Once either fighter is down the match
// ends, both fighters are frozen and the record is saved to records (which may be nil).
func NewMatchSystem(records RecordStore) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		UpdateMatch(ecs, records)
	}
}

// UpdateMatch counts running ticks and ends the match when a fighter is defeated.
func UpdateMatch(ecs *ecs.ECS, records RecordStore) {
	match := GetMatch(ecs)
	if match == nil {
		return
	}

	if match.State == cfg.MatchStateEnded {
		freezeFighters(ecs)
		return
	}
	match.Tick++

	winner := decideWinner(ecs)
	if winner == cfg.WinnerNone {
		return
	}

	match.State = cfg.MatchStateEnded
	match.Winner = winner
	match.EndedAt = match.Tick
	match.Record.Add(winner)
	freezeFighters(ecs)

	if records != nil {
		if err := records.SaveRecord(match.Record); err != nil {
			log.Printf("Warning: Could not save match record: %v", err)
		}
	}
}

func decideWinner(ecs *ecs.ECS) cfg.Winner {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return cfg.WinnerNone
	}
	enemyEntry, ok := tags.Enemy.First(ecs.World)
	if !ok {
		return cfg.WinnerNone
	}

	playerDown := components.Health.Get(playerEntry).Defeated()
	enemyDown := components.Health.Get(enemyEntry).Defeated()
	switch {
	case playerDown && enemyDown:
		return cfg.WinnerDraw
	case enemyDown:
		return cfg.WinnerPlayer
	case playerDown:
		return cfg.WinnerEnemy
	}
	return cfg.WinnerNone
}

func freezeFighters(ecs *ecs.ECS) {
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		physics.SpeedX = 0
		physics.SpeedY = 0

		fighter := components.Fighter.Get(e)
		fighter.CanAttack = false
		fighter.AttackCooldown = 0
	})
}

// IsMatchEnded reports whether the presentation layer should show the game-over overlay.
func IsMatchEnded(ecs *ecs.ECS) bool {
	match := GetMatch(ecs)
	return match != nil && match.State == cfg.MatchStateEnded
}

// WithRunningMatch wraps a gameplay system so it only runs while the match is running.
func WithRunningMatch(system func(*ecs.ECS)) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		if IsMatchEnded(ecs) {
			return
		}
		system(ecs)
	}
}

// UpdateDebugToggle flips the hitbox overlay on the toggle action's rising edge.
func UpdateDebugToggle(ecs *ecs.ECS) {
	match := GetMatch(ecs)
	if match == nil {
		return
	}
	if getOrCreateInput(ecs).Action(cfg.ActionToggleDebug).JustPressed {
		match.ShowDebug = !match.ShowDebug
	}
}

// RestartRequested reports whether the restart action was pressed this tick after the
// match ended.
func RestartRequested(ecs *ecs.ECS) bool {
	if !IsMatchEnded(ecs) {
		return false
	}
	return getOrCreateInput(ecs).Action(cfg.ActionRestart).JustPressed
}
