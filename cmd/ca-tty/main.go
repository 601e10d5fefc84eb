// Command ca-tty runs a simulation in the terminal, one cell per
// character, so the sandbox works over ssh or without a display.
package main

import (
	"flag"
	"log"
	"time"

	"grid-ca/internal/app"
	"grid-ca/internal/core"
	_ "grid-ca/internal/sims/caves"
	_ "grid-ca/internal/sims/life"

	"github.com/gdamore/tcell/v2"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := core.NewFixedStep(cfg.TPS)
	paused := false
	draw(screen, sim)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return
				case ev.Rune() == ' ':
					paused = !paused
				case ev.Rune() == 'n':
					sim.Step()
					draw(screen, sim)
				case ev.Rune() == 'r':
					sim.Reset(cfg.Seed)
					draw(screen, sim)
				case ev.Rune() == 's':
					sim.Reset(time.Now().UnixNano())
					draw(screen, sim)
				}
			case *tcell.EventResize:
				screen.Sync()
				draw(screen, sim)
			}
		default:
		}

		if ticker.ShouldStep() {
			if !paused {
				sim.Step()
			}
			draw(screen, sim)
		} else {
			time.Sleep(time.Millisecond)
		}
	}
}

// draw renders the display grid with the sim's origin pinned to the
// top-left corner of the terminal.
func draw(screen tcell.Screen, sim core.Sim) {
	b := sim.Bounds()
	w, h := screen.Size()
	style := tcell.StyleDefault
	for p, v := range sim.Display().All() {
		x, y := p.X-b.X, p.Y-b.Y
		if x >= w || y >= h {
			continue
		}
		ch := ' '
		if v != 0 {
			ch = '█'
		}
		screen.SetContent(x, y, ch, nil, style)
	}
	screen.Show()
}
