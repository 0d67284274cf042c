package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/orrery/internal/scene"
)

var (
	ErrConfig    = errors.New("sim: invalid run config")
	ErrNonFinite = errors.New("sim: non-finite body position")
)

// Driver ticks a scene without a front end.
type Driver struct {
	scene     *scene.Scene
	metrics   []Metric
	observers []Observer
}

func New(s *scene.Scene) *Driver {
	return &Driver{
		scene:     s,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (d *Driver) AddMetric(m Metric)     { d.metrics = append(d.metrics, m) }
func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }
func (d *Driver) Scene() *scene.Scene    { return d.scene }

// Run ticks the scene cfg.Frames times, recording every body position. The
// context is checked between frames; on cancellation the partial result is
// returned with ctx.Err().
func (d *Driver) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	snap := d.scene.Snapshot()
	result := &Result{
		Names:   namesOf(snap),
		States:  make([]State, 0, cfg.Frames+1),
		Times:   make([]float64, 0, cfg.Frames+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range d.metrics {
		m.Reset()
	}

	dt := 1 / cfg.FPS
	result.States = append(result.States, stateOf(snap))
	result.Times = append(result.Times, 0)

	err := d.loop(ctx, cfg, func(f *Frame) bool {
		result.States = append(result.States, stateOf(f.Snapshot))
		result.Times = append(result.Times, f.Time)
		return true
	}, dt)

	d.collect(result)
	result.Final = d.scene.Snapshot()
	return result, err
}

// RunWithCallback ticks until cfg.Frames is reached or callback returns false.
// Nothing is recorded.
func (d *Driver) RunWithCallback(ctx context.Context, cfg Config, callback func(*Frame) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}
	return d.loop(ctx, cfg, callback, 1/cfg.FPS)
}

func (d *Driver) loop(ctx context.Context, cfg Config, callback func(*Frame) bool, dt float64) error {
	for i := 1; i <= cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		wrapped := d.scene.Tick()
		f := &Frame{
			Index:    i,
			Time:     float64(i) * dt,
			Snapshot: d.scene.Snapshot(),
			Wrapped:  wrapped,
		}
		if !stateOf(f.Snapshot).IsValid() {
			return fmt.Errorf("%w at frame %d", ErrNonFinite, i)
		}

		for _, m := range d.metrics {
			m.Observe(f)
		}
		for _, obs := range d.observers {
			obs.OnFrame(f)
		}

		if !callback(f) {
			return nil
		}
	}
	return nil
}

func (d *Driver) collect(result *Result) {
	for _, m := range d.metrics {
		result.Metrics[m.Name()] = m.Value()
		if b, ok := m.(Breakdown); ok {
			for k, v := range b.Breakdown() {
				result.Metrics[m.Name()+"."+k] = v
			}
		}
	}
}

func validateConfig(cfg Config) error {
	if cfg.Frames <= 0 {
		return fmt.Errorf("%w: frames must be positive, got %d", ErrConfig, cfg.Frames)
	}
	if cfg.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %g", ErrConfig, cfg.FPS)
	}
	return nil
}
