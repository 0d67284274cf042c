package body

import "github.com/san-kum/orrery/internal/orbit"

const (
	// SunDisplayRadius is the on-screen radius of the sun.
	SunDisplayRadius = 60.0
	// SunPhysicalScale maps the catalogue's scaled radii onto SunDisplayRadius.
	SunPhysicalScale = 353000.0

	MoonSpeed = 0.6

	// BaseRadiusFactor times the scene width gives the orbit spacing unit.
	BaseRadiusFactor = 0.085
)

// Params tune the catalogue. An EccentricityScale of 0 gives circular orbits.
type Params struct {
	SpeedScale        float64
	EccentricityScale float64
}

func DefaultParams() Params {
	return Params{SpeedScale: 1, EccentricityScale: 2.5}
}

type planetSpec struct {
	name         string
	mass         float64
	scaledRadius float64
	distance     float64 // multiples of the base radius
	eccentricity float64 // real value, scaled by Params.EccentricityScale
	speed        float64
	facts        Facts
}

var planets = []planetSpec{
	{"Mercury", 3.3e23, 2439.7 * 8, 1.3, 0.2056, 0.65, Facts{"57.9E9 m", "47.87 km/s", "2439 km"}},
	{"Venus", 4.9e24, 6052.8 * 6, 1.5, 0.0067, 0.59, Facts{"108.3E9 m", "35.02 km/s", "6052 km"}},
	{"Earth", 5.98e24, 6371 * 6, 1.7, 0.0167, 0.45, Facts{"149.6E9 m", "29.78 km/s", "6371 km"}},
	{"Mars", 6.44e23, 3386 * 7, 1.9, 0.0934, 0.408, Facts{"228.1E9 m", "24.07 km/s", "3386 km"}},
	{"Jupiter", 1.9e27, 71492 * 2, 3.0, 0.0484, 0.221, Facts{"778.4E9 m", "13.07 km/s", "71 492 km"}},
	{"Saturn", 5.68e26, 60268 * 2, 4.0, 0.0565, 0.164, Facts{"1426.98E9 m", "9.69 km/s", "60 268 km"}},
	{"Uranus", 8.7e25, 25559 * 2, 4.5, 0.0461, 0.115, Facts{"2869.5E9 m", "6.81 km/s", "25 559 km"}},
	{"Neptune", 1.03e26, 24764 * 2, 5.0, 0.0097, 0.09, Facts{"4496.7E9 m", "5.43 km/s", "24 764 km"}},
	{"Pluto", 1.3e22, 2376.3 * 8, 5.5, 0.0087, 0.079, Facts{"5919.4E9 m", "4.66 km/s", "1188 km"}},
}

var saturnRings = []Ring{
	{RadiusX: 25, RadiusY: 5, Width: 2, Color: "#deb887"},
	{RadiusX: 30, RadiusY: 10, Width: 1.5, Color: "#fafad2"},
}

// System is the full set of bodies in draw order.
type System struct {
	Sun     *Body
	Planets []*Body
	Moon    *Body
}

// All returns every body, sun first.
func (s *System) All() []*Body {
	all := make([]*Body, 0, len(s.Planets)+2)
	all = append(all, s.Sun)
	all = append(all, s.Planets...)
	if s.Moon != nil {
		all = append(all, s.Moon)
	}
	return all
}

// Find returns the body called name, or nil.
func (s *System) Find(name string) *Body {
	for _, b := range s.All() {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// DisplayRadius converts a catalogue radius to screen units.
func DisplayRadius(scaled float64) float64 {
	return scaled / SunPhysicalScale * SunDisplayRadius
}

// Catalogue builds the sun, the nine planets and Earth's moon for a scene of
// the given width.
func Catalogue(width float64, p Params) *System {
	base := width * BaseRadiusFactor
	sys := &System{
		Sun: &Body{
			Name:   "Sun",
			Kind:   Sun,
			Mass:   1.989e30,
			Radius: SunDisplayRadius,
			Facts:  Facts{Radius: "696 340 km"},
		},
		Planets: make([]*Body, 0, len(planets)),
	}

	for _, ps := range planets {
		e := ps.eccentricity * p.EccentricityScale
		if e >= 1 {
			e = 0.99
		}
		b := &Body{
			Name:   ps.name,
			Kind:   Planet,
			Mass:   ps.mass,
			Radius: DisplayRadius(ps.scaledRadius),
			Orbit:  orbit.New(base*ps.distance, e),
			Speed:  ps.speed * p.SpeedScale,
			Facts:  ps.facts,
		}
		if ps.name == "Saturn" {
			b.Rings = append([]Ring(nil), saturnRings...)
		}
		sys.Planets = append(sys.Planets, b)
	}

	sys.Moon = &Body{
		Name:   "Moon",
		Kind:   Moon,
		Mass:   7.35e22,
		Radius: DisplayRadius(3476 * 4),
		Orbit:  orbit.New(20, 0.0549),
		Speed:  MoonSpeed * p.SpeedScale,
		Parent: sys.Find("Earth"),
		Facts:  Facts{OrbitRadius: "384 399 km", Speed: "1.02 km/s", Radius: "1737 km"},
	}

	return sys
}
