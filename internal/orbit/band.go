package orbit

import "math"

// Band is an annulus around a center point.
type Band struct {
	Min, Max float64
}

// Clamp forces r into [Min, Max].
func (b Band) Clamp(r float64) float64 {
	if r < b.Min {
		return b.Min
	}
	if r > b.Max {
		return b.Max
	}
	return r
}

// Contains reports whether r lies inside the band, edges included.
func (b Band) Contains(r float64) bool {
	return r >= b.Min && r <= b.Max
}

// AdvanceAsteroid converts pos to polar form around center, clamps the radius
// into band, rotates by step radians and converts back. Anything outside the
// band lands on its edge in a single call.
func AdvanceAsteroid(pos, center Point, band Band, step float64) Point {
	x, y := pos.X-center.X, pos.Y-center.Y
	r := band.Clamp(math.Sqrt(x*x + y*y))
	phi := math.Atan2(y, x) + step
	return Point{
		X: center.X + r*math.Cos(phi),
		Y: center.Y + r*math.Sin(phi),
	}
}
