package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"chosenoffset.com/sightline/internal/config"
	"chosenoffset.com/sightline/internal/game"
	ebitenrender "chosenoffset.com/sightline/internal/render/ebiten"
	"chosenoffset.com/sightline/internal/scene"
)

func main() {
	// Command-line flags
	configPath := flag.String("config", "sightline.json", "Config file (defaults apply if missing)")
	layoutPath := flag.String("layout", "", "Wall layout JSON; empty scatters random walls")
	seed := flag.Int64("seed", 0, "Seed for walls and drift; overrides the config, 0 uses the clock")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	wallSeed := cfg.Walls.Seed
	driftSeed := cfg.Drift.Seed
	if *seed != 0 {
		wallSeed, driftSeed = *seed, *seed+1
	}
	if wallSeed == 0 {
		wallSeed = time.Now().UnixNano()
	}
	if driftSeed == 0 {
		driftSeed = time.Now().UnixNano() + 1
	}
	drift := scene.NewDrift(driftSeed, cfg.Drift.Speed)

	// Build the playfield from a layout file or scatter random walls
	var scn *scene.Scene
	if *layoutPath != "" {
		layout, err := scene.LoadLayout(*layoutPath)
		if err != nil {
			log.Fatalf("Failed to load layout: %v", err)
		}
		log.Printf("Loaded layout: %s (%d walls, %gx%g)",
			layout.Name, len(layout.Walls), layout.Width, layout.Height)

		scn, err = scene.NewFromLayout(layout, cfg.Fan.StepDegrees, drift)
		if err != nil {
			log.Fatalf("Failed to build scene: %v", err)
		}
	} else {
		rng := rand.New(rand.NewSource(wallSeed))
		scn, err = scene.New(float64(cfg.Window.Width), float64(cfg.Window.Height),
			cfg.Walls.Count, cfg.Fan.StepDegrees, rng, drift)
		if err != nil {
			log.Fatalf("Failed to build scene: %v", err)
		}
	}

	log.Printf("Casting %d rays against %d walls", len(scn.Field().Rays()), len(scn.Walls()))

	g := game.New(scn, renderer, inputMgr, cfg.View)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	log.Printf("Starting %s...", cfg.Window.Title)
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
