package components

import (
	"github.com/yohamta/donburi"
)

// RandomSource is the subset of *rand.Rand the AI needs. Tests inject a seeded one.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

type EnemyData struct {
	PursuitRange   float64 // walk toward the player beyond this distance
	ChaseSpeed     float64
	AttackChance   float64 // per-tick roll while in range
	CooldownMin    int
	CooldownSpread int
	Rand           RandomSource
}

var Enemy = donburi.NewComponentType[EnemyData]()
