// Command cavegen generates a cave map headlessly and prints it to
// stdout, with an optional crop window for inspecting a detail.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"grid-ca/internal/sims/caves"
	"grid-ca/pkg/grid"
)

func main() {
	var (
		width  = flag.Int("w", 96, "map width in cells")
		height = flag.Int("h", 48, "map height in cells")
		seed   = flag.Int64("seed", 42, "generation seed")
		walls  = flag.Float64("walls", 0.45, "initial wall probability")
		steps  = flag.Int("steps", 5, "smoothing steps")
		birth  = flag.Int("birth", 5, "wall-neighbor count that turns a cell to wall")
		window = flag.String("window", "", "crop window as x,y,w,h")
		stats  = flag.Bool("stats", false, "print open/wall cell counts")
	)
	flag.Parse()

	cfg := caves.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.WallChance = *walls
	cfg.Steps = *steps
	cfg.Birth = *birth

	world := caves.NewWithConfig(cfg)
	world.Reset(*seed)
	world.Generate()

	var out grid.Grid[uint8] = world.Display()
	if *window != "" {
		r, err := parseRect(*window)
		if err != nil {
			log.Fatalf("bad -window: %v", err)
		}
		out = grid.NewView[uint8](world.Display(), r)
	}

	fmt.Println(grid.Sprint(out, func(_ grid.Point, v uint8) rune {
		if v == caves.CellWall {
			return '#'
		}
		return '.'
	}))

	if *stats {
		open := grid.Not(world.Walls()).Count()
		total := world.Bounds().Area()
		fmt.Printf("open %d / %d cells (%.1f%%)\n", open, total, 100*float64(open)/float64(total))
	}
}

// parseRect reads the x,y,w,h crop syntax.
func parseRect(s string) (grid.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return grid.Rect{}, fmt.Errorf("want 4 comma-separated ints, got %q", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return grid.Rect{}, err
		}
		vals[i] = v
	}
	r := grid.R(vals[0], vals[1], vals[2], vals[3])
	if !r.Valid() {
		return grid.Rect{}, fmt.Errorf("window %q is empty", s)
	}
	return r, nil
}
