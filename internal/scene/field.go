package scene

import (
	"math"
	"math/rand"

	"github.com/san-kum/orrery/internal/orbit"
)

// Star is a fixed background point.
type Star struct {
	Pos  orbit.Point
	Size float64
}

func makeStars(rng *rand.Rand, n int, screen Screen) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			Pos:  orbit.Point{X: rng.Float64() * screen.Width, Y: rng.Float64() * screen.Height},
			Size: rng.Float64()*2 + 1,
		}
	}
	return stars
}

// makeBelt scatters n asteroids uniformly over the band's radius range and a
// full turn of angle.
func makeBelt(rng *rand.Rand, n int, center orbit.Point, band orbit.Band) []orbit.Point {
	belt := make([]orbit.Point, n)
	for i := range belt {
		r := band.Min + rng.Float64()*(band.Max-band.Min)
		phi := orbit.Radians(rng.Float64() * 360)
		belt[i] = orbit.Point{
			X: center.X + r*math.Cos(phi),
			Y: center.Y + r*math.Sin(phi),
		}
	}
	return belt
}
