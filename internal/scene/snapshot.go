package scene

import (
	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/orbit"
)

// BodyState is a body's render state at one frame.
type BodyState struct {
	Name      string
	Kind      body.Kind
	Pos       orbit.Point
	Radius    float64
	Angle     float64
	SemiMajor float64
	SemiMinor float64
	Rings     []body.Ring
}

// Snapshot is a read-only copy of a frame.
type Snapshot struct {
	Frame     int
	Screen    Screen
	Center    orbit.Point
	Band      orbit.Band
	Bodies    []BodyState
	Asteroids []orbit.Point
	Stars     []Star
}

func (s *Scene) Snapshot() Snapshot {
	all := s.system.All()
	snap := Snapshot{
		Frame:     s.frame,
		Screen:    s.cfg.Screen,
		Center:    s.center,
		Band:      s.band,
		Bodies:    make([]BodyState, len(all)),
		Asteroids: append([]orbit.Point(nil), s.asteroids...),
		Stars:     append([]Star(nil), s.stars...),
	}
	for i, b := range all {
		snap.Bodies[i] = BodyState{
			Name:      b.Name,
			Kind:      b.Kind,
			Pos:       b.Pos,
			Radius:    b.Radius,
			Angle:     b.Orbit.Angle,
			SemiMajor: b.Orbit.SemiMajor,
			SemiMinor: b.Orbit.SemiMinor(),
			Rings:     append([]body.Ring(nil), b.Rings...),
		}
	}
	return snap
}

// Body returns the state of the named body.
func (s Snapshot) Body(name string) (BodyState, bool) {
	for _, b := range s.Bodies {
		if b.Name == name {
			return b, true
		}
	}
	return BodyState{}, false
}
