package sim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/orrery/internal/scene"
)

func newDriver(t *testing.T) *Driver {
	t.Helper()
	s, err := scene.New(scene.DefaultConfig())
	if err != nil {
		t.Fatalf("scene: %v", err)
	}
	return New(s)
}

func TestDriverRun(t *testing.T) {
	d := newDriver(t)

	result, err := d.Run(context.Background(), Config{Frames: 10, FPS: 60})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 11 {
		t.Errorf("expected 11 states, got %d", len(result.States))
	}
	if len(result.Times) != 11 {
		t.Errorf("expected 11 times, got %d", len(result.Times))
	}
	if len(result.Names) != 11 || result.Names[0] != "Sun" || result.Names[10] != "Moon" {
		t.Errorf("unexpected names %v", result.Names)
	}
	if got := len(result.States[0]); got != 22 {
		t.Errorf("expected 22 columns per state, got %d", got)
	}
	if math.Abs(result.Times[10]-10.0/60) > 1e-12 {
		t.Errorf("expected last time %.4f, got %.4f", 10.0/60, result.Times[10])
	}
	if result.Final.Frame != 10 {
		t.Errorf("expected final frame 10, got %d", result.Final.Frame)
	}

	// Sun column never moves.
	for i, x := range result.States {
		if x[0] != result.States[0][0] || x[1] != result.States[0][1] {
			t.Fatalf("sun moved at frame %d", i)
		}
		if !x.IsValid() {
			t.Fatalf("invalid state at frame %d", i)
		}
	}
}

func TestDriverInvalidConfig(t *testing.T) {
	d := newDriver(t)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero frames", Config{Frames: 0, FPS: 60}},
		{"negative frames", Config{Frames: -1, FPS: 60}},
		{"zero fps", Config{Frames: 10, FPS: 0}},
		{"negative fps", Config{Frames: 10, FPS: -30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Run(context.Background(), tt.cfg)
			if !errors.Is(err, ErrConfig) {
				t.Errorf("expected ErrConfig, got %v", err)
			}
		})
	}
}

type testMetric struct {
	count   int
	wrapped int
}

func (t *testMetric) Name() string { return "test" }
func (t *testMetric) Observe(f *Frame) {
	t.count++
	t.wrapped += len(f.Wrapped)
}
func (t *testMetric) Value() float64 { return float64(t.count) }
func (t *testMetric) Reset()         { t.count, t.wrapped = 0, 0 }
func (t *testMetric) Breakdown() map[string]float64 {
	return map[string]float64{"wrapped": float64(t.wrapped)}
}

func TestDriverMetrics(t *testing.T) {
	d := newDriver(t)
	metric := &testMetric{}
	d.AddMetric(metric)

	result, err := d.Run(context.Background(), Config{Frames: 600, FPS: 60})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if got := result.Metrics["test"]; got != 600 {
		t.Errorf("expected 600 observations, got %v", got)
	}
	// Mercury restarts at frame 554.
	if got := result.Metrics["test.wrapped"]; got < 1 {
		t.Errorf("expected a restart, got %v", got)
	}
}

type countingObserver struct{ frames []int }

func (c *countingObserver) OnFrame(f *Frame) { c.frames = append(c.frames, f.Index) }

func TestDriverCancel(t *testing.T) {
	d := newDriver(t)
	obs := &countingObserver{}
	d.AddObserver(obs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := d.RunWithCallback(ctx, Config{Frames: 1000, FPS: 60}, func(f *Frame) bool {
		if f.Index == 5 {
			cancel()
		}
		return true
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(obs.frames) != 5 {
		t.Errorf("expected 5 observed frames, got %d", len(obs.frames))
	}
}

func TestDriverCallbackStops(t *testing.T) {
	d := newDriver(t)
	err := d.RunWithCallback(context.Background(), Config{Frames: 100, FPS: 30}, func(f *Frame) bool {
		return f.Index < 3
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := d.Scene().Frame(); got != 3 {
		t.Errorf("expected scene at frame 3, got %d", got)
	}
}

func TestEnsemble(t *testing.T) {
	e := NewEnsemble(scene.DefaultConfig(), func() []Metric { return []Metric{&testMetric{}} }, 3, 10)
	results, err := e.Run(context.Background(), Config{Frames: 20, FPS: 60})
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Metrics["test"] != 20 {
			t.Errorf("run %d: expected 20 observations, got %v", i, r.Metrics["test"])
		}
	}
	if results[0].Final.Asteroids[0] == results[1].Final.Asteroids[0] {
		t.Error("expected seeds to produce different belts")
	}
}

func TestEnsembleInvalidScene(t *testing.T) {
	cfg := scene.DefaultConfig()
	cfg.Screen.Width = 0
	_, err := NewEnsemble(cfg, nil, 2, 0).Run(context.Background(), Config{Frames: 1, FPS: 60})
	if !errors.Is(err, scene.ErrScreen) {
		t.Errorf("expected ErrScreen, got %v", err)
	}
}

func TestDriverNonFinite(t *testing.T) {
	cfg := scene.DefaultConfig()
	cfg.Bodies.SpeedScale = math.NaN()
	s, err := scene.New(cfg)
	if err != nil {
		t.Fatalf("scene: %v", err)
	}

	result, err := New(s).Run(context.Background(), Config{Frames: 5, FPS: 60})
	if !errors.Is(err, ErrNonFinite) {
		t.Fatalf("expected ErrNonFinite, got %v", err)
	}
	if len(result.States) != 1 {
		t.Errorf("expected only the initial state, got %d", len(result.States))
	}
}
