package orbit

import "math"

// FullTurn is the angle, in degrees, past which an orbit restarts at zero.
const FullTurn = 360.0

type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Orbit is an ellipse centred on its primary plus the current position angle.
type Orbit struct {
	SemiMajor    float64
	Eccentricity float64
	Angle        float64 // degrees
}

// New returns an orbit starting at angle 0.
func New(semiMajor, eccentricity float64) Orbit {
	return Orbit{SemiMajor: semiMajor, Eccentricity: eccentricity}
}

// Advance moves theta forward by speed degrees. A result above FullTurn is
// reset to 0 and the overshoot is discarded.
func Advance(theta, speed float64) float64 {
	theta += speed
	if theta > FullTurn {
		return 0
	}
	return theta
}

// Advance steps the orbit in place and reports whether the angle wrapped.
func (o *Orbit) Advance(speed float64) bool {
	o.Angle = Advance(o.Angle, speed)
	return o.Angle == 0 && speed > 0
}

// SemiMinor returns b = a·sqrt(1-e²).
func SemiMinor(a, e float64) float64 {
	return a * math.Sqrt(1-e*e)
}

// SemiMinor returns the orbit's semi-minor axis.
func (o Orbit) SemiMinor() float64 {
	return SemiMinor(o.SemiMajor, o.Eccentricity)
}

// Project maps the orbit's current angle to a point on the ellipse around
// center. The major axis is horizontal.
func Project(o Orbit, center Point) Point {
	rad := Radians(o.Angle)
	return Point{
		X: center.X + o.SemiMajor*math.Cos(rad),
		Y: center.Y + o.SemiMinor()*math.Sin(rad),
	}
}

// ProjectCircle places a point on the circle of radius o.SemiMajor around
// center, ignoring eccentricity. Satellites are drawn this way.
func ProjectCircle(o Orbit, center Point) Point {
	rad := Radians(o.Angle)
	return Point{
		X: center.X + o.SemiMajor*math.Cos(rad),
		Y: center.Y + o.SemiMajor*math.Sin(rad),
	}
}

func Radians(deg float64) float64 { return deg * math.Pi / 180 }
