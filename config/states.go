package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render layer used by the duel scene.
const Default ecs.LayerID = 0

// StateID identifies a fighter state for animation and logic.
type StateID int

const (
	StateNone StateID = iota - 1

	Idle
	Walk
	Jump
	Attack
	Hurt
)

// StateToName maps StateID to a readable name.
var StateToName = map[StateID]string{
	Idle:   "idle",
	Walk:   "walk",
	Jump:   "jump",
	Attack: "attack",
	Hurt:   "hurt",
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "unknown"
}

// MatchStateID represents the current state of a match.
type MatchStateID int

const (
	MatchStateRunning MatchStateID = iota // Fighters are simulated every tick
	MatchStateEnded                       // One fighter is down, waiting for restart
)

func (m MatchStateID) String() string {
	switch m {
	case MatchStateRunning:
		return "running"
	case MatchStateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Winner identifies the outcome of a finished match.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayer
	WinnerEnemy
	WinnerDraw
)

func (w Winner) String() string {
	switch w {
	case WinnerPlayer:
		return "player"
	case WinnerEnemy:
		return "enemy"
	case WinnerDraw:
		return "draw"
	default:
		return "none"
	}
}
