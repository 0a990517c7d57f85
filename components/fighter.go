package components

import (
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/gamemath"
	"github.com/yohamta/donburi"
)

// FighterData holds what every combatant shares regardless of who controls it.
type FighterData struct {
	Name           string
	Facing         float64 // +1 right, -1 left
	Width, Height  float64
	MoveSpeed      float64
	JumpSpeed      float64
	CanAttack      bool
	AttackCooldown int  // ticks until CanAttack is restored
	SwingLanded    bool // set once the current swing has dealt its damage
}

// BodyRect is the fighter's vulnerable area: the sprite box inset on both sides and
// from the top of the head.
func (f *FighterData) BodyRect(p PositionData) gamemath.Rect {
	hw := f.Width/2 - cfg.Combat.BodyInsetX
	top := p.Y - f.Height + cfg.Combat.BodyInsetTop
	return gamemath.Rect{
		CX: p.X,
		CY: (top + p.Y) / 2,
		HW: hw,
		HH: (p.Y - top) / 2,
	}
}

// AttackRect is the strike area in front of the body box. It only exists while the
// fighter is attacking and showing one of the strike frames.
func (f *FighterData) AttackRect(p PositionData, s StateData) (gamemath.Rect, bool) {
	if s.CurrentState != cfg.Attack || s.FrameIndex < cfg.StrikeFirst || s.FrameIndex > cfg.StrikeLast {
		return gamemath.Rect{}, false
	}
	body := f.BodyRect(p)
	half := cfg.Combat.Reach / 2
	return gamemath.Rect{
		CX: body.CX + f.Facing*(body.HW+half),
		CY: p.Y - cfg.Combat.AttackOffset,
		HW: half,
		HH: cfg.Combat.AttackHeight / 2,
	}, true
}

var Fighter = donburi.NewComponentType[FighterData]()
