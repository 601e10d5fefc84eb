package app

import (
	"flag"
	"strings"
)

// Config represents the command-line parameters shared by the
// viewers.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	Opts  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Opts, "opts", c.Opts, "simulation options as key=value pairs, comma separated")
}

// ParseOpts turns the -opts value into the map a sim factory expects.
// Malformed pairs are skipped.
func ParseOpts(opts string) map[string]string {
	if opts == "" {
		return nil
	}
	m := make(map[string]string)
	for _, pair := range strings.Split(opts, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || k == "" {
			continue
		}
		m[k] = v
	}
	return m
}
