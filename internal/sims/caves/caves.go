package caves

import (
	"grid-ca/internal/core"
	"grid-ca/pkg/grid"
)

// Display cell values.
const (
	CellOpen uint8 = iota
	CellWall
)

// Caves carves cavern systems out of noise: scatter walls, smooth
// them with automaton steps, then keep only the largest connected
// open region. Watched through a viewer, each Step shows one stage of
// the generation.
type Caves struct {
	cfg    Config
	bounds grid.Rect

	walls   *grid.Bits
	display *grid.Dense[uint8]

	stepsDone int
}

// New returns a cave generator with the provided dimensions using
// default parameters.
func New(w, h int) *Caves {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a cave generator configured from cfg.
func NewWithConfig(cfg Config) *Caves {
	r := grid.R(0, 0, cfg.Width, cfg.Height)
	return &Caves{
		cfg:     cfg,
		bounds:  r,
		walls:   grid.NewBitsRect(r),
		display: grid.NewDenseRect[uint8](r),
	}
}

// Name returns the simulation identifier.
func (c *Caves) Name() string { return "caves" }

// Bounds returns the map region.
func (c *Caves) Bounds() grid.Rect { return c.bounds }

// Display exposes the map as a cell grid for rendering.
func (c *Caves) Display() grid.Grid[uint8] { return c.display }

// Walls exposes the wall mask of the current stage.
func (c *Caves) Walls() *grid.Bits { return c.walls }

// Done reports whether generation has run to completion.
func (c *Caves) Done() bool { return c.stepsDone > c.cfg.Steps }

// Reset seeds the map with random wall noise.
func (c *Caves) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	c.walls.Fill(false)
	grid.Scatter[bool](c.walls, true, c.cfg.WallChance, rng)
	c.stepsDone = 0
	c.refresh()
}

// Step advances generation one stage: a smoothing pass while any
// remain, then a single cavern-extraction pass. Further calls are
// no-ops, so viewers settle on the finished map.
func (c *Caves) Step() {
	switch {
	case c.stepsDone < c.cfg.Steps:
		grid.AutomataStep(c.walls, c.cfg.Birth, false)
	case c.stepsDone == c.cfg.Steps:
		c.keepMainCavern()
	default:
		return
	}
	c.stepsDone++
	c.refresh()
}

// Generate runs every remaining stage at once.
func (c *Caves) Generate() {
	for !c.Done() {
		c.Step()
	}
}

// keepMainCavern floods every open region, keeps the largest one, and
// turns the rest to wall.
func (c *Caves) keepMainCavern() {
	visited := grid.NewBitsRect(c.bounds)
	var best *grid.Bits
	bestSize := 0
	for p, wall := range c.walls.All() {
		if wall {
			continue
		}
		if v, _ := visited.At(p.X, p.Y); v {
			continue
		}
		region := grid.NewBitsRect(c.bounds)
		grid.FloodFill[bool](p, c.walls, region, false)
		visited = grid.Or(visited, region)
		if n := region.Count(); n > bestSize {
			best, bestSize = region, n
		}
	}
	if best == nil {
		return
	}
	c.walls.Fill(true)
	grid.FillMasked[bool](c.walls, false, best)
}

func (c *Caves) refresh() {
	for p, wall := range c.walls.All() {
		cell := CellOpen
		if wall {
			cell = CellWall
		}
		c.display.Set(p.X, p.Y, cell)
	}
}

func init() {
	core.Register("caves", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
