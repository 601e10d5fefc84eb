package core

import "grid-ca/pkg/grid"

// Sim is the contract a simulation exposes to the viewers. Viewers
// only touch the display grid through the grid interface; the state
// representation behind it is the sim's business.
type Sim interface {
	Name() string
	Bounds() grid.Rect
	Reset(seed int64)
	Step()
	Display() grid.Grid[uint8]
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
