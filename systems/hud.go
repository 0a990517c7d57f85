package systems

import (
	"fmt"

	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/fonts"
	"github.com/automoto/duel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHealthBars renders both health bars along the top edge. The lag segment shows
// the eased display value catching up with real health.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	margin := cfg.UI.HealthBarMargin

	if e, ok := tags.Player.First(ecs.World); ok {
		drawHealthBar(screen, e, margin, margin, false)
	}
	if e, ok := tags.Enemy.First(ecs.World); ok {
		drawHealthBar(screen, e, width-margin-cfg.UI.HealthBarWidth, margin, true)
	}
}

func drawHealthBar(screen *ebiten.Image, e *donburi.Entry, x, y float64, rightAligned bool) {
	health := components.Health.Get(e)
	bar := components.HealthBar.Get(e)
	if health.Max <= 0 {
		return
	}

	w := cfg.UI.HealthBarWidth
	h := cfg.UI.HealthBarHeight

	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.UI.HealthBarBgColor, false)

	// Display value is clamped here; the simulation clamps real health on its own.
	displayed := bar.Displayed
	if displayed < 0 {
		displayed = 0
	}
	if displayed > float64(health.Max) {
		displayed = float64(health.Max)
	}
	lagW := w * displayed / float64(health.Max)
	realW := w * float64(health.Current) / float64(health.Max)

	lagX, realX := x, x
	if rightAligned {
		lagX = x + w - lagW
		realX = x + w - realW
	}
	vector.FillRect(screen, float32(lagX), float32(y), float32(lagW), float32(h), cfg.UI.HealthBarLagColor, false)
	vector.FillRect(screen, float32(realX), float32(y), float32(realW), float32(h), cfg.UI.HealthBarFgColor, false)
}

// DrawHUD renders fighter names, the running record and the debug hint.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.HUD) || !fonts.Loaded(fonts.HUDSmall) {
		return
	}
	width := screen.Bounds().Dx()
	margin := int(cfg.UI.HealthBarMargin)
	labelY := margin + int(cfg.UI.HealthBarHeight) + 18
	face := fonts.HUD.Get()
	small := fonts.HUDSmall.Get()

	if e, ok := tags.Player.First(ecs.World); ok {
		fighter := components.Fighter.Get(e)
		health := components.Health.Get(e)
		text.Draw(screen, fmt.Sprintf("%s %d", fighter.Name, health.Current), face, margin, labelY, cfg.UI.TextColor)
	}
	if e, ok := tags.Enemy.First(ecs.World); ok {
		fighter := components.Fighter.Get(e)
		health := components.Health.Get(e)
		label := fmt.Sprintf("%d %s", health.Current, fighter.Name)
		labelW := text.BoundString(face, label).Dx()
		text.Draw(screen, label, face, width-margin-labelW, labelY, cfg.UI.TextColor)
	}

	match := GetMatch(ecs)
	if match == nil {
		return
	}
	record := fmt.Sprintf("W %d  L %d  D %d", match.Record.Wins, match.Record.Losses, match.Record.Draws)
	recordW := text.BoundString(small, record).Dx()
	text.Draw(screen, record, small, (width-recordW)/2, margin+12, cfg.UI.TextColor)

	if match.ShowDebug {
		text.Draw(screen, fmt.Sprintf("tick %d  F1 hide hitboxes", match.Tick), small, margin, screen.Bounds().Dy()-margin, cfg.UI.TextColor)
	}
}
