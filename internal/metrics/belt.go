package metrics

import (
	"math"

	"github.com/san-kum/orrery/internal/sim"
)

// BeltContainment is the fraction of frames in which every asteroid lies
// inside the belt band, within tolerance.
type BeltContainment struct {
	name       string
	tolerance  float64
	violations int
	samples    int
}

func NewBeltContainment(tolerance float64) *BeltContainment {
	return &BeltContainment{
		name:      "belt_containment",
		tolerance: tolerance,
	}
}

func (b *BeltContainment) Name() string {
	return b.name
}

func (b *BeltContainment) Observe(f *sim.Frame) {
	b.samples++
	snap := f.Snapshot
	for _, a := range snap.Asteroids {
		r := a.Dist(snap.Center)
		if r < snap.Band.Min-b.tolerance || r > snap.Band.Max+b.tolerance || math.IsNaN(r) {
			b.violations++
			break
		}
	}
}

func (b *BeltContainment) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *BeltContainment) Reset() {
	b.violations = 0
	b.samples = 0
}
