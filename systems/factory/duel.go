package factory

import (
	"github.com/automoto/duel/assets"
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDuel builds everything a match needs: arena, collision space, singletons and
// both fighters.
func CreateDuel(ecs *ecs.ECS, arena assets.Arena, rng components.RandomSource, record components.RecordData) (player, enemy *donburi.Entry) {
	CreateArena(ecs, arena)
	CreateSpace(ecs, int(arena.Width), int(arena.Height), cfg.Arena.SpaceCell, cfg.Arena.SpaceCell)
	CreateMatch(ecs, record)
	CreateInput(ecs)

	player = CreatePlayer(ecs, arena.PlayerSpawn)
	enemy = CreateEnemy(ecs, arena.EnemySpawn, rng)
	return player, enemy
}
