//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"beeclust/internal/app"
	"beeclust/internal/core"
	"beeclust/internal/sims/beeclust"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var sim core.Sim
	if cfg.ConfigPath != "" {
		worldCfg, err := beeclust.LoadConfig(cfg.ConfigPath)
		if err != nil {
			log.Fatalf("loading %s: %v", cfg.ConfigPath, err)
		}
		world, err := beeclust.NewWithConfig(worldCfg)
		if err != nil {
			log.Fatal(err)
		}
		sim = world
	} else {
		factory, ok := core.Sims()[cfg.Sim]
		if !ok {
			log.Fatalf("unknown sim %q", cfg.Sim)
		}
		sim = factory(nil)
		if sim == nil {
			log.Fatalf("sim %q failed to initialize", cfg.Sim)
		}
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("beeclust — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
