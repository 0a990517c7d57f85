package systems

import (
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/gamemath"
	"github.com/automoto/duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type strike struct {
	attacker *donburi.Entry
	defender *donburi.Entry
}

// UpdateCombat resolves strikes between the two fighters. Both strikes are found
// before any damage is applied so a trade on the same tick hits both ways.
func UpdateCombat(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	enemyEntry, ok := tags.Enemy.First(ecs.World)
	if !ok {
		return
	}
	if components.Health.Get(playerEntry).Defeated() || components.Health.Get(enemyEntry).Defeated() {
		return
	}

	var strikes []strike
	for _, s := range []strike{
		{attacker: playerEntry, defender: enemyEntry},
		{attacker: enemyEntry, defender: playerEntry},
	} {
		if strikeLands(ecs, s.attacker, s.defender) {
			strikes = append(strikes, s)
		}
	}

	for _, s := range strikes {
		components.Fighter.Get(s.attacker).SwingLanded = true
		ApplyDamage(s.defender, cfg.Combat.Damage)
	}
}

// strikeLands reports whether attacker's swing connects with defender this tick.
// A swing may only connect on the tick a strike frame is entered, and only once.
func strikeLands(ecs *ecs.ECS, attacker, defender *donburi.Entry) bool {
	fighter := components.Fighter.Get(attacker)
	state := components.State.Get(attacker)
	if fighter.SwingLanded || state.FrameTime != 1 {
		return false
	}

	boxes := HitboxesOf(attacker)
	if !boxes.HasAttack {
		return false
	}

	near := false
	for _, e := range bodiesNear(getSpace(ecs), boxes.Attack) {
		if e.Entity() == defender.Entity() {
			near = true
			break
		}
	}
	if !near {
		return false
	}

	return boxes.Attack.Overlaps(HitboxesOf(defender).Body)
}

// ApplyDamage removes amount from the defender's health, clamped to [0, Max], and
// interrupts whatever it was doing with a hit reaction.
func ApplyDamage(defender *donburi.Entry, amount int) {
	health := components.Health.Get(defender)
	health.Current = gamemath.ClampInt(health.Current-amount, 0, health.Max)

	state := components.State.Get(defender)
	EnterState(state, cfg.Hurt)

	fighter := components.Fighter.Get(defender)
	fighter.SwingLanded = true
	components.Physics.Get(defender).SpeedX = 0
}
