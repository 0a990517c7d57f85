package systems

import (
	"image/color"

	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/gamemath"
	"github.com/automoto/duel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena paints the sky and the ground below the baseline.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.SkyColor)

	arena := getArena(ecs)
	if arena == nil {
		return
	}
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, float32(arena.GroundY), width, height-float32(arena.GroundY), cfg.UI.GroundColor, false)
}

// DrawFighters draws each fighter as a flat block. The shade follows the animation
// frame so state changes stay visible without sprite sheets.
func DrawFighters(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		fighter := components.Fighter.Get(e)
		pos := components.Position.Get(e)
		state := components.State.Get(e)

		base := cfg.Enemy.Color
		if e.HasComponent(components.Player) {
			base = cfg.Player.Color
		}
		body := frameShade(base, state)

		sprite := gamemath.Rect{
			CX: pos.X,
			CY: pos.Y - fighter.Height/2,
			HW: fighter.Width / 2,
			HH: fighter.Height / 2,
		}
		fillRect(screen, fighter.BodyRect(*pos), body)

		// Head on the facing side so the direction reads at a glance.
		headSize := fighter.Width / 4
		headX := pos.X + fighter.Facing*fighter.Width/8 - headSize/2
		vector.FillRect(screen, float32(headX), float32(sprite.Top()), float32(headSize), float32(headSize), body, false)

		if boxes := HitboxesOf(e); boxes.HasAttack {
			fist := boxes.Attack
			fist.HW /= 2
			fist.CX += fighter.Facing * fist.HW
			fillRect(screen, fist, cfg.White)
		}
	})
}

func frameShade(base color.RGBA, state *components.StateData) color.RGBA {
	if state.CurrentState == cfg.Hurt {
		return cfg.White
	}
	// Odd frames are drawn a little darker.
	if state.FrameIndex%2 == 1 {
		return color.RGBA{R: base.R / 5 * 4, G: base.G / 5 * 4, B: base.B / 5 * 4, A: base.A}
	}
	return base
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.Left()), float32(r.Top()), float32(r.Width()), float32(r.Height()), c, false)
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	x, y := float32(r.Left()), float32(r.Top())
	w, h := float32(r.Width()), float32(r.Height())
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
