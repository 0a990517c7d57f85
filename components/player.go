package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	AttackCooldown int // cooldown applied each time the player swings
}

var Player = donburi.NewComponentType[PlayerData]()
