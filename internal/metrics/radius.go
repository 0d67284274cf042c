package metrics

import (
	"math"

	"github.com/san-kum/orrery/internal/sim"
)

// MeanRadius averages a body's distance from the scene center. Min and max
// are kept for the breakdown.
type MeanRadius struct {
	name     string
	body     string
	sum      float64
	min, max float64
	samples  int
}

func NewMeanRadius(body string) *MeanRadius {
	m := &MeanRadius{name: "radius." + body, body: body}
	m.Reset()
	return m
}

func (m *MeanRadius) Name() string {
	return m.name
}

func (m *MeanRadius) Observe(f *sim.Frame) {
	b, ok := f.Snapshot.Body(m.body)
	if !ok {
		return
	}
	r := b.Pos.Dist(f.Snapshot.Center)
	m.sum += r
	m.min = math.Min(m.min, r)
	m.max = math.Max(m.max, r)
	m.samples++
}

func (m *MeanRadius) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanRadius) Breakdown() map[string]float64 {
	if m.samples == 0 {
		return nil
	}
	return map[string]float64{"min": m.min, "max": m.max}
}

func (m *MeanRadius) Reset() {
	m.sum = 0
	m.min = math.Inf(1)
	m.max = math.Inf(-1)
	m.samples = 0
}
