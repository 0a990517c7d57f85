package components

import (
	"testing"

	cfg "github.com/automoto/duel/config"
	"github.com/stretchr/testify/assert"
)

func TestBodyRect(t *testing.T) {
	f := FighterData{Width: 80, Height: 120, Facing: 1}
	body := f.BodyRect(PositionData{X: 200, Y: 400})

	assert.Equal(t, 200.0, body.CX)
	assert.Equal(t, 200.0-40+cfg.Combat.BodyInsetX, body.Left())
	assert.Equal(t, 200.0+40-cfg.Combat.BodyInsetX, body.Right())
	assert.Equal(t, 400.0-120+cfg.Combat.BodyInsetTop, body.Top())
	assert.Equal(t, 400.0, body.Bottom())
}

func TestAttackRect(t *testing.T) {
	f := FighterData{Width: 80, Height: 120, Facing: -1}
	pos := PositionData{X: 300, Y: 400}

	_, ok := f.AttackRect(pos, StateData{CurrentState: cfg.Idle, FrameIndex: 0})
	assert.False(t, ok)

	_, ok = f.AttackRect(pos, StateData{CurrentState: cfg.Attack, FrameIndex: 5})
	assert.False(t, ok)

	for _, frame := range []int{6, 7} {
		r, ok := f.AttackRect(pos, StateData{CurrentState: cfg.Attack, FrameIndex: frame})
		assert.True(t, ok)
		assert.Equal(t, f.BodyRect(pos).Left(), r.Right(), "extends left from the body box")
		assert.Equal(t, cfg.Combat.Reach, r.Width())
		assert.Equal(t, cfg.Combat.AttackHeight, r.Height())
	}
}

func TestHealthDefeated(t *testing.T) {
	assert.False(t, (&HealthData{Current: 1, Max: 100}).Defeated())
	assert.True(t, (&HealthData{Current: 0, Max: 100}).Defeated())
}
