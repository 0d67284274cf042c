package body

import (
	"math"
	"testing"
)

func TestCatalogue(t *testing.T) {
	sys := Catalogue(960, DefaultParams())

	names := []string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto"}
	if len(sys.Planets) != len(names) {
		t.Fatalf("expected %d planets, got %d", len(names), len(sys.Planets))
	}
	for i, name := range names {
		p := sys.Planets[i]
		if p.Name != name {
			t.Errorf("planet %d: got %s, want %s", i, p.Name, name)
		}
		if p.Kind != Planet {
			t.Errorf("%s: kind %v", name, p.Kind)
		}
		if err := p.Orbit.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if i > 0 && p.Orbit.SemiMajor <= sys.Planets[i-1].Orbit.SemiMajor {
			t.Errorf("%s is not farther out than %s", name, sys.Planets[i-1].Name)
		}
	}

	if sys.Sun.Kind != Sun || sys.Sun.Radius != SunDisplayRadius {
		t.Errorf("unexpected sun: %+v", sys.Sun)
	}
	if sys.Moon == nil || sys.Moon.Parent == nil || sys.Moon.Parent.Name != "Earth" {
		t.Fatal("moon must orbit earth")
	}
	if len(sys.All()) != 11 {
		t.Errorf("expected 11 bodies, got %d", len(sys.All()))
	}
}

func TestCatalogue_Geometry(t *testing.T) {
	sys := Catalogue(1000, DefaultParams())

	mercury := sys.Find("Mercury")
	if math.Abs(mercury.Orbit.SemiMajor-1000*0.085*1.3) > 1e-9 {
		t.Errorf("mercury a = %v", mercury.Orbit.SemiMajor)
	}
	if math.Abs(mercury.Orbit.Eccentricity-0.2056*2.5) > 1e-12 {
		t.Errorf("mercury e = %v", mercury.Orbit.Eccentricity)
	}
	if math.Abs(mercury.Radius-2439.7*8/353000*60) > 1e-9 {
		t.Errorf("mercury radius = %v", mercury.Radius)
	}

	if len(sys.Find("Saturn").Rings) != 2 {
		t.Error("saturn should have two rings")
	}
	if len(sys.Find("Jupiter").Rings) != 0 {
		t.Error("jupiter should have no rings")
	}
}

func TestCatalogue_Params(t *testing.T) {
	sys := Catalogue(1000, Params{SpeedScale: 2, EccentricityScale: 10})

	if got := sys.Find("Earth").Speed; math.Abs(got-0.9) > 1e-12 {
		t.Errorf("earth speed = %v, want 0.9", got)
	}
	if got := sys.Moon.Speed; math.Abs(got-1.2) > 1e-12 {
		t.Errorf("moon speed = %v, want 1.2", got)
	}
	// 0.2056*10 would be hyperbolic; it is capped below 1.
	if got := sys.Find("Mercury").Orbit.Eccentricity; got >= 1 {
		t.Errorf("mercury e = %v, must stay below 1", got)
	}
}

func TestCatalogue_ZeroScales(t *testing.T) {
	sys := Catalogue(960, Params{SpeedScale: 1, EccentricityScale: 0})
	for _, p := range sys.Planets {
		if p.Orbit.Eccentricity != 0 {
			t.Errorf("%s e = %v, want 0", p.Name, p.Orbit.Eccentricity)
		}
	}
	if got := sys.Find("Mercury").Speed; got != 0.65 {
		t.Errorf("mercury speed = %v, want 0.65", got)
	}

	still := Catalogue(960, Params{SpeedScale: 0, EccentricityScale: 1})
	if got := still.Find("Mercury").Speed; got != 0 {
		t.Errorf("mercury speed = %v, want 0", got)
	}
	if got := still.Find("Mercury").Orbit.Eccentricity; got != 0.2056 {
		t.Errorf("mercury e = %v, want 0.2056", got)
	}
}

func TestFind_Unknown(t *testing.T) {
	if Catalogue(100, DefaultParams()).Find("Vulcan") != nil {
		t.Error("expected nil")
	}
}
