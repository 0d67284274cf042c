package config

import (
	"fmt"
	"sort"
)

// Presets are named overrides applied over DefaultConfig.
var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"circular": func(c *Config) {
		c.EccentricityScale = 0
	},
	"dense": func(c *Config) {
		c.Asteroids = 1200
		c.Stars = 400
	},
	"sparse": func(c *Config) {
		c.Asteroids = 40
		c.Stars = 15
	},
	"fast": func(c *Config) {
		c.SpeedScale = 4
		c.AsteroidStep = 4 * DefaultAsteroidStep
	},
}

var presetDescriptions = map[string]string{
	"classic":  "the original layout: 200 asteroids, eccentricities x2.5",
	"circular": "circular orbits",
	"dense":    "crowded belt and starfield",
	"sparse":   "thin belt, few stars",
	"fast":     "everything four times faster",
}

// GetPreset returns a fresh config with the named preset applied.
func GetPreset(name string) (*Config, error) {
	apply, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Describe(name string) string {
	return presetDescriptions[name]
}
