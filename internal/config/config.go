package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/scene"
)

const (
	DefaultWidth        = 960.0
	DefaultHeight       = 1080.0
	DefaultSeed         = 1
	DefaultAsteroids    = 200
	DefaultStars        = 60
	DefaultFPS          = 60.0
	DefaultFrames       = 3600
	DefaultAsteroidStep = 0.0013
	DefaultTooltipDelay = 5 * time.Second
	DefaultTheme        = "deep"
)

var (
	ErrInvalidScreen = errors.New("config: width and height must be positive")
	ErrInvalidCount  = errors.New("config: asteroid and star counts must be >= 0")
	ErrInvalidRate   = errors.New("config: fps and frames must be positive")
	ErrInvalidScale  = errors.New("config: speed scale must be positive and eccentricity scale non-negative")
	ErrUnknownPreset = errors.New("config: unknown preset")
	ErrUnknownParam  = errors.New("config: unknown parameter")
)

type Config struct {
	Width             float64       `yaml:"width"`
	Height            float64       `yaml:"height"`
	Seed              int64         `yaml:"seed"`
	Asteroids         int           `yaml:"asteroids"`
	Stars             int           `yaml:"stars"`
	FPS               float64       `yaml:"fps"`
	Frames            int           `yaml:"frames"`
	SpeedScale        float64       `yaml:"speed_scale"`
	EccentricityScale float64       `yaml:"eccentricity_scale"`
	AsteroidStep      float64       `yaml:"asteroid_step"`
	TooltipDelay      time.Duration `yaml:"tooltip_delay"`
	Theme             string        `yaml:"theme"`
}

func DefaultConfig() *Config {
	p := body.DefaultParams()
	return &Config{
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		Seed:              DefaultSeed,
		Asteroids:         DefaultAsteroids,
		Stars:             DefaultStars,
		FPS:               DefaultFPS,
		Frames:            DefaultFrames,
		SpeedScale:        p.SpeedScale,
		EccentricityScale: p.EccentricityScale,
		AsteroidStep:      DefaultAsteroidStep,
		TooltipDelay:      DefaultTooltipDelay,
		Theme:             DefaultTheme,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidScreen, c.Width, c.Height)
	}
	if c.Asteroids < 0 || c.Stars < 0 {
		return fmt.Errorf("%w: asteroids=%d stars=%d", ErrInvalidCount, c.Asteroids, c.Stars)
	}
	if c.FPS <= 0 || c.Frames <= 0 {
		return fmt.Errorf("%w: fps=%g frames=%d", ErrInvalidRate, c.FPS, c.Frames)
	}
	if c.SpeedScale <= 0 || c.EccentricityScale < 0 || math.IsNaN(c.EccentricityScale) {
		return fmt.Errorf("%w: speed=%g eccentricity=%g", ErrInvalidScale, c.SpeedScale, c.EccentricityScale)
	}
	return nil
}

// Scene converts the file-level settings into a scene configuration.
func (c *Config) Scene() scene.Config {
	sc := scene.DefaultConfig()
	sc.Screen = scene.Screen{Width: c.Width, Height: c.Height}
	sc.Seed = c.Seed
	sc.Asteroids = c.Asteroids
	sc.Stars = c.Stars
	sc.AsteroidStep = c.AsteroidStep
	sc.Bodies = body.Params{SpeedScale: c.SpeedScale, EccentricityScale: c.EccentricityScale}
	sc.TooltipDelay = c.TooltipDelay
	return sc
}

// FrameInterval is the wall time between ticks.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.FPS)
}

// Set assigns a numeric field by its yaml name. Counts are truncated.
func (c *Config) Set(name string, v float64) error {
	switch name {
	case "width":
		c.Width = v
	case "height":
		c.Height = v
	case "seed":
		c.Seed = int64(v)
	case "asteroids":
		c.Asteroids = int(v)
	case "stars":
		c.Stars = int(v)
	case "fps":
		c.FPS = v
	case "frames":
		c.Frames = int(v)
	case "speed_scale":
		c.SpeedScale = v
	case "eccentricity_scale":
		c.EccentricityScale = v
	case "asteroid_step":
		c.AsteroidStep = v
	default:
		return fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	return nil
}
