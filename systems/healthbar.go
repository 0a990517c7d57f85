package systems

import (
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHealthBars eases each displayed health value toward the real one. A new
// tween starts whenever health changes; it runs in simulation ticks, not wall time.
func UpdateHealthBars(ecs *ecs.ECS) {
	dt := float32(1) / float32(cfg.Loop.TicksPerSecond)

	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		health := components.Health.Get(e)

		if bar.Target != health.Current {
			bar.Target = health.Current
			bar.Tween = gween.New(float32(bar.Displayed), float32(health.Current), cfg.UI.HealthBarSeconds, ease.OutCubic)
		}
		if bar.Tween == nil {
			return
		}

		current, finished := bar.Tween.Update(dt)
		bar.Displayed = float64(current)
		if finished {
			bar.Displayed = float64(bar.Target)
			bar.Tween = nil
		}
	})
}
