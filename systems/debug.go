package systems

import (
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/gamemath"
	"github.com/automoto/duel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHitboxes outlines every collision object plus the live attack boxes.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	match := GetMatch(ecs)
	if match == nil || !match.ShowDebug {
		return
	}

	if space := getSpace(ecs); space != nil {
		for _, obj := range space.Objects() {
			strokeRect(screen, gamemath.RectFromBounds(obj.X, obj.Y, obj.W, obj.H), cfg.UI.HitboxBodyColor)
		}
	}

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		if boxes := HitboxesOf(e); boxes.HasAttack {
			strokeRect(screen, boxes.Attack, cfg.UI.HitboxAttackColor)
		}
	})
}
