package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/duel/assets"
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/systems"
	"github.com/automoto/duel/systems/factory"
	"github.com/automoto/duel/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DuelOptions are the collaborators a duel needs from outside the simulation.
type DuelOptions struct {
	Arena   assets.Arena
	Rand    components.RandomSource
	Records systems.RecordStore
	Input   systems.InputSource
}

// DuelScene owns one match at a time. Restart throws the whole world away and
// builds a new one.
type DuelScene struct {
	ecs          *ecs.ECS
	opts         DuelOptions
	record       components.RecordData
	clock        *systems.Clock
	overlay      *ui.GameOverUI
	overlayReady bool
	once         sync.Once
}

func NewDuelScene(opts DuelOptions) *DuelScene {
	if opts.Input == nil {
		opts.Input = systems.KeyboardSource{}
	}
	if opts.Records == nil {
		opts.Records = &systems.MemoryRecords{}
	}
	return &DuelScene{
		opts:  opts,
		clock: systems.NewClock(cfg.Loop.TicksPerSecond, cfg.Loop.MaxStepsPerFrame),
	}
}

func (ds *DuelScene) Update() {
	ds.once.Do(ds.configure)

	steps := ds.clock.Steps(time.Now())
	for i := 0; i < steps; i++ {
		if ds.step() {
			return
		}
	}

	if systems.IsMatchEnded(ds.ecs) {
		ds.updateOverlay()
	}
}

// step simulates one tick. It reports true when the tick restarted the match.
func (ds *DuelScene) step() bool {
	ds.ecs.Update()
	if systems.RestartRequested(ds.ecs) {
		ds.restart()
		return true
	}
	return false
}

func (ds *DuelScene) updateOverlay() {
	if ds.overlay == nil {
		ds.overlay = ui.NewGameOverUI(ds.restart)
	}
	if !ds.overlayReady {
		snap := systems.Snapshot(ds.ecs)
		ds.overlay.SetResult(snap.Winner, snap.Record)
		ds.overlayReady = true
	}
	ds.overlay.Update()
}

func (ds *DuelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)

	if ds.overlay != nil && ds.overlayReady && systems.IsMatchEnded(ds.ecs) {
		ds.overlay.Draw(screen)
	}
}

func (ds *DuelScene) configure() {
	record, err := ds.opts.Records.LoadRecord()
	if err != nil {
		log.Printf("Warning: Starting with an empty record: %v", err)
	}
	ds.record = record
	ds.ecs = newDuelECS(ds.opts, ds.record)
}

func (ds *DuelScene) restart() {
	if match := systems.GetMatch(ds.ecs); match != nil {
		ds.record = match.Record
	}
	ds.ecs = newDuelECS(ds.opts, ds.record)
	ds.overlayReady = false
	ds.clock.Reset()
}

// newDuelECS builds a fresh world with the systems registered in tick order.
func newDuelECS(opts DuelOptions, record components.RecordData) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.NewInputSystem(opts.Input))
	e.AddSystem(systems.UpdateDebugToggle)

	// Gameplay systems stop mutating fighters once the match has ended
	e.AddSystem(systems.WithRunningMatch(systems.UpdatePlayer))
	e.AddSystem(systems.WithRunningMatch(systems.UpdatePhysics))
	e.AddSystem(systems.WithRunningMatch(systems.UpdateEnemy))
	e.AddSystem(systems.WithRunningMatch(systems.UpdateAnimations))
	e.AddSystem(systems.WithRunningMatch(systems.UpdateBounds))
	e.AddSystem(systems.WithRunningMatch(systems.UpdateCombat))

	e.AddSystem(systems.UpdateHealthBars)
	e.AddSystem(systems.NewMatchSystem(opts.Records))

	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawFighters)
	e.AddRenderer(cfg.Default, systems.DrawHitboxes)
	e.AddRenderer(cfg.Default, systems.DrawHealthBars)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	factory.CreateDuel(e, opts.Arena, opts.Rand, record)
	return e
}
