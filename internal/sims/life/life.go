package life

import (
	"grid-ca/internal/core"
	"grid-ca/pkg/grid"
)

// Life implements Conway's Game of Life with toroidal wrapping on top
// of two packed bit grids.
type Life struct {
	bounds  grid.Rect
	cur     *grid.Bits
	nxt     *grid.Bits
	display *grid.Dense[uint8]
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	r := grid.R(0, 0, w, h)
	return &Life{
		bounds:  r,
		cur:     grid.NewBitsRect(r),
		nxt:     grid.NewBitsRect(r),
		display: grid.NewDenseRect[uint8](r),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Bounds returns the board region.
func (l *Life) Bounds() grid.Rect { return l.bounds }

// Display exposes the board as a cell grid for rendering.
func (l *Life) Display() grid.Grid[uint8] { return l.display }

// Alive reports whether the cell at (x, y) is alive.
func (l *Life) Alive(x, y int) bool {
	v, _ := l.cur.At(x, y)
	return v
}

// SetAlive writes a cell state directly, for tests and editors.
func (l *Life) SetAlive(x, y int, alive bool) {
	l.cur.Set(x, y, alive)
	l.refresh()
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.cur.Fill(false)
	l.refresh()
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed)
	l.cur.FillWith(rng.Bool)
	l.refresh()
}

// Step advances the simulation by one generation. All neighbor counts
// come from the pre-step board.
func (l *Life) Step() {
	for p, alive := range l.cur.All() {
		neighbors := 0
		for _, d := range grid.Neighborhood8 {
			q := l.bounds.Wrap(p.Add(d))
			if v, _ := l.cur.At(q.X, q.Y); v {
				neighbors++
			}
		}
		l.nxt.Set(p.X, p.Y, neighbors == 3 || (alive && neighbors == 2))
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.refresh()
}

func (l *Life) refresh() {
	for p, v := range l.cur.All() {
		var c uint8
		if v {
			c = 1
		}
		l.display.Set(p.X, p.Y, c)
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
