package caves

import "strconv"

// Config holds the cave generation parameters.
type Config struct {
	Width  int
	Height int

	// WallChance is the probability a cell starts as wall.
	WallChance float64
	// Steps is how many smoothing generations to run.
	Steps int
	// Birth is the neighbor count at which a cell turns to wall
	// during smoothing.
	Birth int
}

// DefaultConfig returns parameters that carve reasonably open caves.
func DefaultConfig() Config {
	return Config{Width: 192, Height: 128, WallChance: 0.45, Steps: 5, Birth: 5}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["walls"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.WallChance = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Steps = parsed
		}
	}
	if v, ok := cfg["birth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 8 {
			c.Birth = parsed
		}
	}
	return c
}
