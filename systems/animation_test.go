package systems

import (
	"testing"

	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/stretchr/testify/assert"
)

func newState(s cfg.StateID) *components.StateData {
	state := &components.StateData{CurrentState: cfg.StateNone}
	EnterState(state, s)
	return state
}

func stepN(state *components.StateData, n int) {
	for i := 0; i < n; i++ {
		StepAnimation(state)
	}
}

func TestStepAnimation_IdleToggles(t *testing.T) {
	state := newState(cfg.Idle)

	stepN(state, 14)
	assert.Equal(t, 0, state.FrameIndex)
	assert.Equal(t, 14, state.FrameTime)

	stepN(state, 1)
	assert.Equal(t, 1, state.FrameIndex)
	assert.Equal(t, 0, state.FrameTime)

	stepN(state, 15)
	assert.Equal(t, 0, state.FrameIndex, "idle wraps back to its first frame")
}

func TestStepAnimation_WalkWraps(t *testing.T) {
	state := newState(cfg.Walk)
	assert.Equal(t, 2, state.FrameIndex)

	var seen []int
	for i := 0; i < 5; i++ {
		stepN(state, 10)
		seen = append(seen, state.FrameIndex)
	}
	assert.Equal(t, []int{3, 4, 5, 2, 3}, seen)
}

func TestStepAnimation_AttackExitsToIdle(t *testing.T) {
	state := newState(cfg.Attack)
	assert.Equal(t, 6, state.FrameIndex)

	stepN(state, 9)
	assert.Equal(t, 7, state.FrameIndex)
	assert.Equal(t, cfg.Attack, state.CurrentState)

	stepN(state, 9)
	assert.Equal(t, cfg.Idle, state.CurrentState)
	assert.Equal(t, 0, state.FrameIndex)
	assert.Equal(t, 0, state.FrameTime)
	assert.Equal(t, cfg.Attack, state.PreviousState)
}

func TestStepAnimation_HurtExitsAfterTwelveTicks(t *testing.T) {
	state := newState(cfg.Hurt)

	stepN(state, 12)
	assert.Equal(t, cfg.Hurt, state.CurrentState)
	assert.Equal(t, 8, state.FrameIndex)

	stepN(state, 1)
	assert.Equal(t, cfg.Idle, state.CurrentState)
	assert.Equal(t, 0, state.FrameIndex)
}

func TestStepAnimation_JumpIsPinned(t *testing.T) {
	state := newState(cfg.Jump)

	stepN(state, 200)
	assert.Equal(t, cfg.Jump, state.CurrentState)
	assert.Equal(t, 4, state.FrameIndex)
}

func TestStepAnimation_OutOfRangeFrameIsCorrected(t *testing.T) {
	state := newState(cfg.Walk)
	state.FrameIndex = 8

	StepAnimation(state)
	assert.Equal(t, 5, state.FrameIndex)
}

func TestEnterState_ResetsTimer(t *testing.T) {
	state := newState(cfg.Walk)
	stepN(state, 5)

	EnterState(state, cfg.Hurt)
	assert.Equal(t, cfg.Walk, state.PreviousState)
	assert.Equal(t, 8, state.FrameIndex)
	assert.Equal(t, 0, state.FrameTime)
}
