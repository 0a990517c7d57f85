package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTuning_OverlaysOnlyGivenFields(t *testing.T) {
	t.Cleanup(Reset)

	doc := `
enemy:
  pursuitRange: 150
  attackChance: 0.1
combat:
  damage: 10
`
	require.NoError(t, LoadTuning(strings.NewReader(doc)))

	assert.Equal(t, 150.0, Enemy.PursuitRange)
	assert.Equal(t, 0.1, Enemy.AttackChance)
	assert.Equal(t, 10, Combat.Damage)

	// untouched values keep their defaults
	assert.Equal(t, 2.5, Enemy.ChaseSpeed)
	assert.Equal(t, 100, Fighter.Health)
	assert.Equal(t, 70.0, Combat.Reach)
}

func TestLoadTuning_EmptyDocument(t *testing.T) {
	t.Cleanup(Reset)

	require.NoError(t, LoadTuning(strings.NewReader("")))
	assert.Equal(t, 8, Combat.Damage)
}

func TestLoadTuning_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"health above cap", "fighter:\n  health: 150\n"},
		{"zero health", "fighter:\n  health: 0\n"},
		{"chance above one", "enemy:\n  attackChance: 1.5\n"},
		{"zero spread", "enemy:\n  cooldownSpread: 0\n"},
		{"zero steps", "loop:\n  maxStepsPerFrame: 0\n"},
		{"cooldown shorter than a swing", "player:\n  attackCooldown: 17\n"},
		{"width inside body inset", "fighter:\n  width: 20\n"},
		{"unknown field", "fighter:\n  mass: 3\n"},
		{"malformed", "fighter: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(Reset)
			err := LoadTuning(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadTuning_RejectedDocumentLeavesConfigUntouched(t *testing.T) {
	t.Cleanup(Reset)

	err := LoadTuning(strings.NewReader("fighter:\n  moveSpeed: 9\n  health: 500\n"))
	require.Error(t, err)
	assert.Equal(t, 4.0, Fighter.MoveSpeed)
}

func TestLoadTuning_CooldownCoveringOneSwing(t *testing.T) {
	t.Cleanup(Reset)

	require.Equal(t, 18, SwingTicks())
	require.NoError(t, LoadTuning(strings.NewReader("player:\n  attackCooldown: 18\nfighter:\n  width: 21\n")))
	assert.Equal(t, 18, Player.AttackCooldown)
	assert.Equal(t, 21.0, Fighter.Width)
}

func TestFrameRange(t *testing.T) {
	tests := []struct {
		state       StateID
		first, last int
	}{
		{Idle, 0, 1},
		{Walk, 2, 5},
		{Attack, 6, 7},
		{Hurt, 8, 8},
		{Jump, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			first, last := FrameRange(tt.state)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestStateIDString(t *testing.T) {
	assert.Equal(t, "attack", Attack.String())
	assert.Equal(t, "unknown", StateNone.String())
	assert.Equal(t, "ended", MatchStateEnded.String())
	assert.Equal(t, "draw", WinnerDraw.String())
}
