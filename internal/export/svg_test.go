package export

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/san-kum/orrery/internal/analysis"
	"github.com/san-kum/orrery/internal/scene"
)

func snapshot(t *testing.T) scene.Snapshot {
	t.Helper()
	cfg := scene.DefaultConfig()
	cfg.Asteroids = 10
	cfg.Stars = 5
	s, err := scene.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return s.Snapshot()
}

func wellFormed(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			t.Fatalf("malformed svg: %v", err)
		}
	}
}

func TestSnapshotToSVG(t *testing.T) {
	doc := SnapshotToSVG(snapshot(t), true)
	wellFormed(t, doc)

	for _, want := range []string{
		`id="Sun"`, `id="Moon"`, `id="Pluto"`,
		`<radialGradient id="grad-sun">`,
		`spreadMethod="reflect"`,
		`stroke="#deb887"`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %s", want)
		}
	}
	if n := strings.Count(doc, "<ellipse"); n != 9+2 {
		t.Errorf("ellipses = %d, want 9 orbits + 2 rings", n)
	}
}

func TestSnapshotToSVGNoOrbits(t *testing.T) {
	doc := SnapshotToSVG(snapshot(t), false)
	if n := strings.Count(doc, "<ellipse"); n != 2 {
		t.Errorf("ellipses = %d, want only Saturn's rings", n)
	}
}

func TestTrajectoryToSVG(t *testing.T) {
	if got := TrajectoryToSVG([]analysis.Point{{X: 1, Y: 1}}, 100, 100, "#fff"); got != "" {
		t.Errorf("single point should give empty output")
	}

	pts := []analysis.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	doc := TrajectoryToSVG(pts, 120, 120, "#4682b4")
	wellFormed(t, doc)
	if !strings.Contains(doc, `stroke="#4682b4"`) {
		t.Error("stroke colour not applied")
	}
	if !strings.Contains(doc, "M10.0,10.0") {
		t.Errorf("first point should sit inside the padding: %s", doc)
	}
}
