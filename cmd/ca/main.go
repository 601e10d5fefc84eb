//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"grid-ca/internal/app"
	"grid-ca/internal/core"
	_ "grid-ca/internal/sims/caves"
	_ "grid-ca/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(app.ParseOpts(cfg.Opts))
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	b := sim.Bounds()

	ebiten.SetWindowTitle("grid-ca: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(b.W*cfg.Scale, b.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
