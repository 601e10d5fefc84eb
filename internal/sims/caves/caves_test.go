package caves

import (
	"testing"

	"grid-ca/pkg/grid"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 36
	return cfg
}

func TestGenerateDeterministic(t *testing.T) {
	a := NewWithConfig(testConfig())
	b := NewWithConfig(testConfig())
	a.Reset(7)
	b.Reset(7)
	a.Generate()
	b.Generate()
	if !grid.Equal[uint8](a.Display(), b.Display()) {
		t.Fatal("same seed must generate the same map")
	}
}

func TestGenerateStagesAndCompletion(t *testing.T) {
	c := NewWithConfig(testConfig())
	c.Reset(3)
	if c.Done() {
		t.Fatal("freshly reset generator cannot be done")
	}
	for i := 0; i <= c.cfg.Steps; i++ {
		c.Step()
	}
	if !c.Done() {
		t.Fatalf("generation must finish after %d stages", c.cfg.Steps+1)
	}
	before := grid.Copy[uint8](c.Display())
	c.Step()
	if !grid.Equal[uint8](before, c.Display()) {
		t.Fatal("stepping a finished map must change nothing")
	}
}

func TestFinalMapIsOneCavern(t *testing.T) {
	c := NewWithConfig(testConfig())
	c.Reset(11)
	c.Generate()

	walls := c.Walls()
	var start grid.Point
	found := false
	for p, wall := range walls.All() {
		if !wall {
			start, found = p, true
			break
		}
	}
	if !found {
		t.Skip("seed produced a fully walled map")
	}

	reached := grid.NewBitsRect(walls.Bounds())
	if err := grid.FloodFill[bool](start, walls, reached, false); err != nil {
		t.Fatalf("flood: %v", err)
	}
	openCells := grid.Not(walls).Count()
	if reached.Count() != openCells {
		t.Fatalf("map has %d open cells but only %d are connected", openCells, reached.Count())
	}
}

func TestWindowedInspection(t *testing.T) {
	c := NewWithConfig(testConfig())
	c.Reset(5)
	c.Generate()

	window := grid.NewView[uint8](c.Display(), grid.R(8, 8, 16, 12))
	if window.Bounds() != grid.R(8, 8, 16, 12) {
		t.Fatalf("window bounds = %+v", window.Bounds())
	}
	for p, v := range window.All() {
		full, _ := c.Display().At(p.X, p.Y)
		if v != full {
			t.Fatalf("window cell %+v = %d, map has %d", p, v, full)
		}
	}
}
