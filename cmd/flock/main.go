package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-flock-groups/pkg/render"
	"github.com/lao-tseu-is-alive/go-flock-groups/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

var (
	// configFile is an optional JSON config; built-in defaults apply when empty
	configFile = flag.String("config", "", "path to a JSON config file")
	// schemaFile overrides the embedded JSON schema used to validate configFile
	schemaFile = flag.String("schema", "", "path to a JSON schema (embedded schema when empty)")
	numBoids   = flag.Int("boids", 0, "number of boids, overrides the config")
	seed       = flag.Uint64("seed", 0, "random seed, overrides the config (0 = time based)")
	subPixel   = flag.Bool("subpixel", false, "integrate positions without truncating velocity")
	logLevel   = flag.String("log-level", "", "debug, info, warn or error, overrides the config")
)

func loadConfig() (*simulation.Config, error) {
	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		loaded, err := simulation.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Only flags given on the command line override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "boids":
			cfg.NumBoids = *numBoids
		case "seed":
			cfg.Seed = *seed
		case "subpixel":
			cfg.SubPixel = *subPixel
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("💥 cannot load configuration: %v", err)
	}
	level, err := cfg.Level()
	if err != nil {
		log.Fatalf("💥 %v", err)
	}
	logger := golog.New(level, os.Stdout)

	ctx := context.Background()
	system, err := actor.NewActorSystem("FlockSystem", actor.WithLogger(logger))
	if err != nil {
		logger.Fatalf("failed to create actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		logger.Fatalf("failed to start actor system: %v", err)
	}

	game, err := render.NewGame(ctx, cfg, system)
	if err != nil {
		_ = system.Stop(ctx)
		logger.Fatalf("failed to create game: %v", err)
	}
	defer func() {
		if err := game.Close(); err != nil {
			logger.Errorf("failed to stop actor system: %v", err)
		}
	}()

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("Boids with Groups (%d boids)", cfg.NumBoids))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(game); err != nil {
		logger.Errorf("game stopped with error: %v", err)
	}
}
