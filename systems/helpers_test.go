package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/duel/assets"
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type scriptedInput map[cfg.ActionID]bool

func (s scriptedInput) Pressed(action cfg.ActionID) bool {
	return s[action]
}

func (s scriptedInput) set(actions ...cfg.ActionID) {
	for k := range s {
		delete(s, k)
	}
	for _, a := range actions {
		s[a] = true
	}
}

// fixedRand always rolls the same values.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return r.n % n }

type duelHarness struct {
	ecs     *ecs.ECS
	input   scriptedInput
	records *MemoryRecords
	player  *donburi.Entry
	enemy   *donburi.Entry
}

func newHarness(t *testing.T, rng components.RandomSource) *duelHarness {
	t.Helper()
	if rng == nil {
		rng = rand.New(rand.NewSource(12345))
	}

	h := &duelHarness{
		input:   scriptedInput{},
		records: &MemoryRecords{},
	}

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(NewInputSystem(h.input))
	e.AddSystem(UpdateDebugToggle)
	e.AddSystem(WithRunningMatch(UpdatePlayer))
	e.AddSystem(WithRunningMatch(UpdatePhysics))
	e.AddSystem(WithRunningMatch(UpdateEnemy))
	e.AddSystem(WithRunningMatch(UpdateAnimations))
	e.AddSystem(WithRunningMatch(UpdateBounds))
	e.AddSystem(WithRunningMatch(UpdateCombat))
	e.AddSystem(UpdateHealthBars)
	e.AddSystem(NewMatchSystem(h.records))

	h.player, h.enemy = factory.CreateDuel(e, assets.DefaultArena(), rng, components.RecordData{})
	h.ecs = e
	return h
}

func (h *duelHarness) tick(n int) {
	for i := 0; i < n; i++ {
		h.ecs.Update()
	}
}

// passive stops the enemy from ever starting a swing.
func (h *duelHarness) passive() {
	components.Enemy.Get(h.enemy).AttackChance = 0
}

func (h *duelHarness) place(e *donburi.Entry, x float64) {
	components.Position.Get(e).X = x
	UpdateObjects(h.ecs)
}

func (h *duelHarness) distance() float64 {
	return components.Position.Get(h.enemy).X - components.Position.Get(h.player).X
}
