package components

import (
	"github.com/automoto/duel/config"
	"github.com/yohamta/donburi"
)

// StateData drives both the animation frame and the combat hit windows.
// FrameTime counts ticks since the last FrameIndex change and is reset on every
// state transition.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	FrameIndex    int
	FrameTime     int
}

var State = donburi.NewComponentType[StateData]()
