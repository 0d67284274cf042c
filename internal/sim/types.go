package sim

import (
	"math"

	"github.com/san-kum/orrery/internal/scene"
)

// State is one recorded frame: x, y for every body in Result.Names order.
type State []float64

// IsValid reports whether every coordinate is finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Frame is what metrics and observers see after each tick.
type Frame struct {
	Index    int
	Time     float64
	Snapshot scene.Snapshot
	// Wrapped names the bodies whose orbit restarted during this tick.
	Wrapped []string
}

type Metric interface {
	Name() string
	Observe(f *Frame)
	Value() float64
	Reset()
}

// Breakdown is implemented by metrics that also report per-key values.
// Keys are merged into Result.Metrics as "<name>.<key>".
type Breakdown interface {
	Breakdown() map[string]float64
}

type Observer interface {
	OnFrame(f *Frame)
}

type Config struct {
	Frames int
	FPS    float64
	Seed   int64
}

type Result struct {
	Names   []string
	States  []State
	Times   []float64
	Metrics map[string]float64
	Final   scene.Snapshot
}

func stateOf(snap scene.Snapshot) State {
	x := make(State, 0, 2*len(snap.Bodies))
	for _, b := range snap.Bodies {
		x = append(x, b.Pos.X, b.Pos.Y)
	}
	return x
}

func namesOf(snap scene.Snapshot) []string {
	names := make([]string, len(snap.Bodies))
	for i, b := range snap.Bodies {
		names[i] = b.Name
	}
	return names
}
