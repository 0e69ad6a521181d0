package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
)

func main() {
	flags := simulation.BindFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Config()
	if err != nil {
		log.Fatal(err)
	}
	logger := cfg.NewLogger(os.Stderr)

	ctx := context.Background()
	system, err := actor.NewActorSystem("FlockWorld",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		logger.Fatalf("failed to create actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		logger.Fatalf("failed to start actor system: %v", err)
	}
	defer system.Stop(ctx)

	var recorder *simulation.Recorder
	if cfg.RecordPath != "" {
		// closed by the world actor when the system stops
		if recorder, err = simulation.CreateRecorder(cfg.RecordPath); err != nil {
			logger.Fatal(err)
		}
		logger.Infof("recording snapshots to %s", cfg.RecordPath)
	}

	game, err := simulation.NewGame(ctx, cfg, system, recorder)
	if err != nil {
		logger.Fatal(err)
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Flock")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error(err)
	}
}
