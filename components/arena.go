package components

import (
	"github.com/automoto/duel/assets"
	"github.com/yohamta/donburi"
)

// ArenaData is the singleton playfield every fighter is confined to.
type ArenaData struct {
	assets.Arena
}

var Arena = donburi.NewComponentType[ArenaData]()
