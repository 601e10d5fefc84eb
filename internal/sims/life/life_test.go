package life

import (
	"testing"

	"grid-ca/pkg/grid"
)

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5)
	life.Clear()
	life.SetAlive(2, 1, true)
	life.SetAlive(2, 2, true)
	life.SetAlive(2, 3, true)

	life.Step()

	expects := map[grid.Point]bool{
		{X: 1, Y: 2}: true,
		{X: 2, Y: 2}: true,
		{X: 3, Y: 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := life.Alive(x, y)
			if alive != expects[grid.Point{X: x, Y: y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, expects[grid.Point{X: x, Y: y}])
			}
		}
	}

	life.Step()

	expects = map[grid.Point]bool{
		{X: 2, Y: 1}: true,
		{X: 2, Y: 2}: true,
		{X: 2, Y: 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := life.Alive(x, y)
			if alive != expects[grid.Point{X: x, Y: y}] {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, expects[grid.Point{X: x, Y: y}])
			}
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	a := New(32, 32)
	b := New(32, 32)
	a.Reset(99)
	b.Reset(99)
	if !grid.Equal[uint8](a.Display(), b.Display()) {
		t.Fatal("same seed must produce the same board")
	}
	b.Reset(100)
	if grid.Equal[uint8](a.Display(), b.Display()) {
		t.Fatal("different seeds should produce different boards")
	}
}

func TestDisplayTracksBoard(t *testing.T) {
	life := New(4, 4)
	life.Clear()
	life.SetAlive(1, 2, true)
	if v, _ := life.Display().At(1, 2); v != 1 {
		t.Fatal("display must mirror the live board")
	}
	if v, _ := life.Display().At(0, 0); v != 0 {
		t.Fatal("dead cells must render as zero")
	}
}
