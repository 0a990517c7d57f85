package main

import (
	"flag"
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/automoto/duel/assets"
	"github.com/automoto/duel/config"
	"github.com/automoto/duel/fonts"
	"github.com/automoto/duel/scenes"
	"github.com/automoto/duel/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(records systems.RecordStore) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load HUD fonts: %v", err)
	}

	seed := config.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Seed: %d", seed)

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewDuelScene(scenes.DuelOptions{
		Arena:   assets.MustLoadDefaultArena(),
		Rand:    rand.New(rand.NewSource(seed)),
		Records: records,
	})
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding fighter, AI and combat tuning")
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "seed for the enemy AI (0 = random)")
	flag.BoolVar(&config.Debug.ShowHitboxes, "debug", false, "start with hitboxes visible")
	flag.Parse()

	if *tuningPath != "" {
		if err := config.LoadTuningFile(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.Loop.TicksPerSecond)

	// Initialize persistence; fall back to an in-memory record
	var records systems.RecordStore = &systems.MemoryRecords{}
	if store, err := systems.OpenRecords("duel"); err == nil {
		records = store
	}

	if err := ebiten.RunGame(NewGame(records)); err != nil {
		log.Fatal(err)
	}
}
