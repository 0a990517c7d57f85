package systems

import (
	cfg "github.com/automoto/duel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource reports whether a logical action is held this tick.
type InputSource interface {
	Pressed(action cfg.ActionID) bool
}

// KeyboardSource reads the key bindings in cfg.Input.
type KeyboardSource struct{}

func (KeyboardSource) Pressed(action cfg.ActionID) bool {
	binding, ok := cfg.Input.Bindings[action]
	if !ok {
		return false
	}
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// SampleInput copies the state of every action from src into the Input singleton.
func SampleInput(ecs *ecs.ECS, src InputSource) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for action := cfg.ActionNone + 1; action < cfg.ActionCount; action++ {
		input.Current[action] = src.Pressed(action)
	}
}

// NewInputSystem returns a system that samples src every tick.
func NewInputSystem(src InputSource) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		SampleInput(ecs, src)
	}
}
