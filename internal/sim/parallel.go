package sim

import (
	"context"
	"sync"

	"github.com/san-kum/orrery/internal/scene"
)

// Ensemble runs the same scene configuration over consecutive seeds. Each run
// owns its own scene, so runs proceed in parallel.
type Ensemble struct {
	base       scene.Config
	newMetrics func() []Metric
	numRuns    int
	seedStart  int64
}

// NewEnsemble prepares numRuns runs. newMetrics is called once per run so no
// metric is shared between goroutines; it may be nil.
func NewEnsemble(base scene.Config, newMetrics func() []Metric, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{base: base, newMetrics: newMetrics, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			sc := e.base
			sc.Seed = e.seedStart + int64(idx)
			s, err := scene.New(sc)
			if err != nil {
				errs[idx] = err
				return
			}

			d := New(s)
			if e.newMetrics != nil {
				for _, m := range e.newMetrics() {
					d.AddMetric(m)
				}
			}

			cfgCopy := cfg
			cfgCopy.Seed = sc.Seed
			results[idx], errs[idx] = d.Run(ctx, cfgCopy)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
