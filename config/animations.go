package config

// AnimationDef describes how a state walks through its frames.
type AnimationDef struct {
	First     int
	Last      int
	Threshold int     // FrameTime must exceed this before the frame advances
	Pinned    bool    // frame stays on First and no timer runs
	Loops     bool    // wrap back to First after Last
	OnDone    StateID // state entered after Last when not looping (StateNone = stay)
}

// Animations is the transition table for fighter states.
var Animations = map[StateID]AnimationDef{
	Idle:   {First: 0, Last: 1, Threshold: 14, Loops: true, OnDone: StateNone},
	Walk:   {First: 2, Last: 5, Threshold: 9, Loops: true, OnDone: StateNone},
	Attack: {First: 6, Last: 7, Threshold: 8, OnDone: Idle},
	Hurt:   {First: 8, Last: 8, Threshold: 12, OnDone: Idle},
	Jump:   {First: 4, Last: 4, Pinned: true, OnDone: StateNone},
}

// StrikeFirst and StrikeLast bound the attack frames that can deal damage.
const (
	StrikeFirst = 6
	StrikeLast  = 7
)

// SwingTicks is how many ticks an uninterrupted attack lasts.
func SwingTicks() int {
	def := Animations[Attack]
	return (def.Last - def.First + 1) * (def.Threshold + 1)
}

// FrameRange returns the valid frame indices for a state.
func FrameRange(state StateID) (first, last int) {
	def, ok := Animations[state]
	if !ok {
		return 0, 0
	}
	return def.First, def.Last
}
