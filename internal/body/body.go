package body

import (
	"fmt"
	"strings"

	"github.com/san-kum/orrery/internal/orbit"
)

// Kind selects the update rule a body follows each frame.
type Kind int

const (
	Sun Kind = iota
	Planet
	Moon
)

func (k Kind) String() string {
	switch k {
	case Sun:
		return "sun"
	case Planet:
		return "planet"
	case Moon:
		return "moon"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Ring is an outline ellipse that follows its body.
type Ring struct {
	RadiusX, RadiusY float64
	Width            float64
	Color            string
}

// Facts are the display strings shown when a body is hovered.
type Facts struct {
	OrbitRadius string
	Speed       string
	Radius      string
}

type Body struct {
	Name   string
	Kind   Kind
	Mass   float64 // kg
	Radius float64 // display units
	Orbit  orbit.Orbit
	Speed  float64 // degrees per frame
	Rings  []Ring
	Parent *Body
	Facts  Facts

	// Pos is the screen position after the latest Update.
	Pos orbit.Point
}

// Update applies the per-kind frame rule and reports whether the orbit
// restarted at angle zero. The sun sits on center. Planets follow their ellipse
// around center. Moons circle their parent's current position, so the parent
// must be updated first.
func (b *Body) Update(center orbit.Point) bool {
	switch b.Kind {
	case Planet:
		wrapped := b.Orbit.Advance(b.Speed)
		b.Pos = orbit.Project(b.Orbit, center)
		return wrapped
	case Moon:
		wrapped := b.Orbit.Advance(b.Speed)
		origin := center
		if b.Parent != nil {
			origin = b.Parent.Pos
		}
		b.Pos = orbit.ProjectCircle(b.Orbit, origin)
		return wrapped
	default:
		b.Pos = center
		return false
	}
}

// Place sets Pos from the current orbit angle without advancing it.
func (b *Body) Place(center orbit.Point) {
	switch b.Kind {
	case Planet:
		b.Pos = orbit.Project(b.Orbit, center)
	case Moon:
		origin := center
		if b.Parent != nil {
			origin = b.Parent.Pos
		}
		b.Pos = orbit.ProjectCircle(b.Orbit, origin)
	default:
		b.Pos = center
	}
}

// Contains reports whether p falls inside the body's display disc.
func (b *Body) Contains(p orbit.Point) bool {
	return b.Pos.Dist(p) <= b.Radius
}

// Info renders the tooltip text for the body.
func (b *Body) Info() string {
	var s strings.Builder
	fmt.Fprintf(&s, "Name: %s\n", b.Name)
	fmt.Fprintf(&s, "Mass: %.3e kg\n", b.Mass)
	if b.Kind != Sun && b.Facts.OrbitRadius != "" {
		fmt.Fprintf(&s, "Orbit Radius: %s\n", b.Facts.OrbitRadius)
	}
	if b.Kind != Sun && b.Facts.Speed != "" {
		fmt.Fprintf(&s, "Speed: %s\n", b.Facts.Speed)
	}
	fmt.Fprintf(&s, "Radius: %s", b.Facts.Radius)
	return s.String()
}
