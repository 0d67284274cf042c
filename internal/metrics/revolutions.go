package metrics

import "github.com/san-kum/orrery/internal/sim"

// RevolutionCounter counts completed revolutions, one per orbit restart.
type RevolutionCounter struct {
	name   string
	counts map[string]int
	total  int
}

func NewRevolutionCounter() *RevolutionCounter {
	return &RevolutionCounter{
		name:   "revolutions",
		counts: make(map[string]int),
	}
}

func (r *RevolutionCounter) Name() string { return r.name }

func (r *RevolutionCounter) Observe(f *sim.Frame) {
	for _, name := range f.Wrapped {
		r.counts[name]++
		r.total++
	}
}

// OnFrame lets the counter run as a plain observer too.
func (r *RevolutionCounter) OnFrame(f *sim.Frame) { r.Observe(f) }

func (r *RevolutionCounter) Value() float64 { return float64(r.total) }

func (r *RevolutionCounter) Count(name string) int { return r.counts[name] }

func (r *RevolutionCounter) Breakdown() map[string]float64 {
	out := make(map[string]float64, len(r.counts))
	for k, v := range r.counts {
		out[k] = float64(v)
	}
	return out
}

func (r *RevolutionCounter) Reset() {
	r.counts = make(map[string]int)
	r.total = 0
}
