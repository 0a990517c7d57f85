package systems

import (
	"errors"
	"testing"

	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestMatch_EndsAndFreezes(t *testing.T) {
	h := newHarness(t, fixedRand{f: 0})
	components.Health.Get(h.enemy).Current = 0
	components.Health.Get(h.player).Current = 50

	h.tick(1)

	require.True(t, IsMatchEnded(h.ecs))
	match := GetMatch(h.ecs)
	assert.Equal(t, cfg.WinnerPlayer, match.Winner)
	assert.Equal(t, 1, match.EndedAt)
	assert.Equal(t, 1, match.Record.Wins)
	assert.Equal(t, 1, h.records.Saves)
	assert.Equal(t, 1, h.records.Record.Wins)

	fighters := map[string]*donburi.Entry{"player": h.player, "enemy": h.enemy}
	startX := map[string]float64{}
	for name, e := range fighters {
		startX[name] = components.Position.Get(e).X
	}

	h.input.set(cfg.ActionMoveRight, cfg.ActionAttack, cfg.ActionJump)
	for i := 0; i < 60; i++ {
		h.tick(1)
		for name, e := range fighters {
			physics := components.Physics.Get(e)
			assert.Equal(t, 0.0, physics.SpeedX, name)
			assert.Equal(t, 0.0, physics.SpeedY, name)
			assert.False(t, components.Fighter.Get(e).CanAttack, name)
			assert.Equal(t, startX[name], components.Position.Get(e).X, name)
		}
	}

	assert.Equal(t, 1, match.Tick, "ended matches stop counting ticks")
	assert.Equal(t, 1, h.records.Saves, "the result is recorded once")
	assert.Equal(t, 50, components.Health.Get(h.player).Current)
}

func TestMatch_Outcomes(t *testing.T) {
	tests := []struct {
		name          string
		player, enemy int
		want          cfg.Winner
	}{
		{"player wins", 40, 0, cfg.WinnerPlayer},
		{"enemy wins", 0, 12, cfg.WinnerEnemy},
		{"double knockout", 0, 0, cfg.WinnerDraw},
		{"still fighting", 1, 1, cfg.WinnerNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil)
			components.Health.Get(h.player).Current = tt.player
			components.Health.Get(h.enemy).Current = tt.enemy

			UpdateMatch(h.ecs, h.records)

			match := GetMatch(h.ecs)
			assert.Equal(t, tt.want, match.Winner)
			assert.Equal(t, tt.want != cfg.WinnerNone, IsMatchEnded(h.ecs))
		})
	}
}

func TestMatch_NilRecordStore(t *testing.T) {
	h := newHarness(t, nil)
	components.Health.Get(h.player).Current = 0

	assert.NotPanics(t, func() { UpdateMatch(h.ecs, nil) })
	assert.Equal(t, 1, GetMatch(h.ecs).Record.Losses)
}

type failingRecords struct{ saves int }

func (f *failingRecords) LoadRecord() (components.RecordData, error) {
	return components.RecordData{}, errors.New("disk unavailable")
}

func (f *failingRecords) SaveRecord(components.RecordData) error {
	f.saves++
	return errors.New("disk unavailable")
}

func TestMatch_SaveFailureStillEndsMatch(t *testing.T) {
	h := newHarness(t, nil)
	store := &failingRecords{}
	components.Health.Get(h.enemy).Current = 0

	assert.NotPanics(t, func() { UpdateMatch(h.ecs, store) })
	assert.True(t, IsMatchEnded(h.ecs))
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, 1, GetMatch(h.ecs).Record.Wins)

	UpdateMatch(h.ecs, store)
	assert.Equal(t, 1, store.saves, "a failed save is not retried every tick")
}

func TestRestartRequested_OnlyAfterEnd(t *testing.T) {
	h := newHarness(t, nil)
	h.passive()

	h.input.set(cfg.ActionRestart)
	h.tick(1)
	assert.False(t, RestartRequested(h.ecs))

	components.Health.Get(h.player).Current = 0
	h.input.set()
	h.tick(1)
	require.True(t, IsMatchEnded(h.ecs))
	assert.False(t, RestartRequested(h.ecs))

	h.input.set(cfg.ActionRestart)
	h.tick(1)
	assert.True(t, RestartRequested(h.ecs))

	h.tick(1)
	assert.False(t, RestartRequested(h.ecs), "holding restart fires once")
}

func TestDebugToggle(t *testing.T) {
	h := newHarness(t, nil)
	match := GetMatch(h.ecs)
	require.False(t, match.ShowDebug)

	h.input.set(cfg.ActionToggleDebug)
	h.tick(3)
	assert.True(t, match.ShowDebug)

	h.input.set()
	h.tick(1)
	h.input.set(cfg.ActionToggleDebug)
	h.tick(1)
	assert.False(t, match.ShowDebug)
}

func TestSnapshot(t *testing.T) {
	h := newHarness(t, nil)
	h.passive()
	h.input.set(cfg.ActionAttack)
	h.tick(1)

	snap := Snapshot(h.ecs)
	assert.Equal(t, cfg.MatchStateRunning, snap.State)
	assert.Equal(t, 1, snap.Tick)
	assert.Equal(t, cfg.Player.Name, snap.Player.Name)
	assert.Equal(t, cfg.Attack, snap.Player.State)
	assert.Equal(t, 6, snap.Player.FrameIndex)
	assert.Equal(t, cfg.DirectionRight, snap.Player.Facing)
	assert.Equal(t, 100, snap.Enemy.Health)
	assert.Equal(t, 100, snap.Enemy.MaxHealth)
	assert.Equal(t, cfg.DirectionLeft, snap.Enemy.Facing)
	assert.Equal(t, 600.0, snap.Enemy.X)
}

func TestRecordAdd(t *testing.T) {
	var r components.RecordData
	r.Add(cfg.WinnerPlayer)
	r.Add(cfg.WinnerPlayer)
	r.Add(cfg.WinnerEnemy)
	r.Add(cfg.WinnerDraw)
	r.Add(cfg.WinnerNone)

	assert.Equal(t, components.RecordData{Wins: 2, Losses: 1, Draws: 1}, r)
}

func TestMemoryRecords(t *testing.T) {
	store := &MemoryRecords{}
	require.NoError(t, store.SaveRecord(components.RecordData{Wins: 3}))

	got, err := store.LoadRecord()
	require.NoError(t, err)
	assert.Equal(t, 3, got.Wins)
	assert.Equal(t, 1, store.Saves)
}
