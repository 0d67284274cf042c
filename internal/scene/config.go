package scene

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/orbit"
)

var (
	ErrScreen = errors.New("scene: screen dimensions must be positive")
	ErrCounts = errors.New("scene: asteroid and star counts must be >= 0")
)

// Screen is the immutable drawing area. All positions are in its units.
type Screen struct {
	Width, Height float64
}

func (s Screen) Center() orbit.Point {
	return orbit.Point{X: s.Width / 2, Y: s.Height / 2}
}

func (s Screen) MinSide() float64 {
	return math.Min(s.Width, s.Height)
}

type Config struct {
	Screen    Screen
	Seed      int64
	Asteroids int
	Stars     int

	// AsteroidStep is the belt's rotation per frame, in radians.
	AsteroidStep float64

	// BandInner and BandOuter bound the belt as fractions of Screen.MinSide.
	BandInner, BandOuter float64

	Bodies       body.Params
	TooltipDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		Screen:       Screen{Width: 960, Height: 1080},
		Seed:         1,
		Asteroids:    200,
		Stars:        60,
		AsteroidStep: 0.0013,
		BandInner:    0.40,
		BandOuter:    0.47,
		Bodies:       body.DefaultParams(),
		TooltipDelay: 5 * time.Second,
	}
}

// Band returns the asteroid belt annulus in screen units.
func (c Config) Band() orbit.Band {
	side := c.Screen.MinSide()
	return orbit.Band{Min: c.BandInner * side, Max: c.BandOuter * side}
}

func (c Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrScreen, c.Screen.Width, c.Screen.Height)
	}
	if c.Asteroids < 0 || c.Stars < 0 {
		return fmt.Errorf("%w: asteroids=%d stars=%d", ErrCounts, c.Asteroids, c.Stars)
	}
	if err := c.Band().Validate(); err != nil {
		return fmt.Errorf("asteroid belt: %w", err)
	}
	return nil
}
