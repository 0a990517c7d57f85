package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Player  = donburi.NewTag().SetName("Player")
	Enemy   = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for hitbox collision
const (
	ResolvBody   = "body"
	ResolvAttack = "attack"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
)
