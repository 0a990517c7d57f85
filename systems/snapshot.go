package systems

import (
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FighterSnapshot is what a renderer needs to draw one fighter.
type FighterSnapshot struct {
	Name            string
	X, Y            float64
	Width, Height   float64
	Facing          float64
	State           cfg.StateID
	FrameIndex      int
	Health          int
	MaxHealth       int
	DisplayedHealth float64
}

// MatchSnapshot is a read-only copy of the match for the presentation layer.
type MatchSnapshot struct {
	Player FighterSnapshot
	Enemy  FighterSnapshot
	State  cfg.MatchStateID
	Winner cfg.Winner
	Tick   int
	Record components.RecordData
}

// Snapshot copies the current match state.
func Snapshot(ecs *ecs.ECS) MatchSnapshot {
	var snap MatchSnapshot
	if match := GetMatch(ecs); match != nil {
		snap.State = match.State
		snap.Winner = match.Winner
		snap.Tick = match.Tick
		snap.Record = match.Record
	}
	if e, ok := tags.Player.First(ecs.World); ok {
		snap.Player = snapshotFighter(e)
	}
	if e, ok := tags.Enemy.First(ecs.World); ok {
		snap.Enemy = snapshotFighter(e)
	}
	return snap
}

func snapshotFighter(e *donburi.Entry) FighterSnapshot {
	fighter := components.Fighter.Get(e)
	pos := components.Position.Get(e)
	state := components.State.Get(e)
	health := components.Health.Get(e)
	bar := components.HealthBar.Get(e)

	return FighterSnapshot{
		Name:            fighter.Name,
		X:               pos.X,
		Y:               pos.Y,
		Width:           fighter.Width,
		Height:          fighter.Height,
		Facing:          fighter.Facing,
		State:           state.CurrentState,
		FrameIndex:      state.FrameIndex,
		Health:          health.Current,
		MaxHealth:       health.Max,
		DisplayedHealth: bar.Displayed,
	}
}
