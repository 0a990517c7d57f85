package components

import (
	cfg "github.com/automoto/duel/config"
	"github.com/yohamta/donburi"
)

// RecordData is the running tally of finished matches.
type RecordData struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

// Add counts one finished match.
func (r *RecordData) Add(w cfg.Winner) {
	switch w {
	case cfg.WinnerPlayer:
		r.Wins++
	case cfg.WinnerEnemy:
		r.Losses++
	case cfg.WinnerDraw:
		r.Draws++
	}
}

// MatchData stores the current match state.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State     cfg.MatchStateID
	Winner    cfg.Winner
	Tick      int // ticks simulated while running
	EndedAt   int // tick on which the match ended
	Record    RecordData
	ShowDebug bool
}

var Match = donburi.NewComponentType[MatchData]()
