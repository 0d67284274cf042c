package automation

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/metrics"
	"github.com/san-kum/orrery/internal/sim"
)

const scenarioYAML = `
name: belt check
description: dense and sparse belts side by side
steps:
  - preset: dense
    frames: 20
    save_as: dense
  - preset: sparse
    frames: 10
    seed: 7
    params:
      asteroids: 3
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if sc.Name != "belt check" || len(sc.Steps) != 2 {
		t.Fatalf("unexpected scenario %+v", sc)
	}

	newMetrics := func() []sim.Metric { return []sim.Metric{metrics.NewBeltContainment(1e-6)} }
	results, err := RunScenario(context.Background(), sc, newMetrics, nil)
	if err != nil {
		t.Fatalf("RunScenario: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	dense := results[0]
	if dense.Config.Asteroids != 1200 {
		t.Errorf("dense preset not applied: %d asteroids", dense.Config.Asteroids)
	}
	if got := len(dense.Result.States); got != 21 {
		t.Errorf("dense recorded %d states, want 21", got)
	}
	if dense.Result.Metrics["belt_containment"] != 1 {
		t.Errorf("belt containment = %v", dense.Result.Metrics["belt_containment"])
	}

	sparse := results[1]
	if sparse.Config.Asteroids != 3 || sparse.Config.Seed != 7 {
		t.Errorf("overrides not applied: %+v", sparse.Config)
	}
	if len(sparse.Result.Final.Asteroids) != 3 {
		t.Errorf("final snapshot has %d asteroids", len(sparse.Result.Final.Asteroids))
	}
}

func TestLoadScenarioEmpty(t *testing.T) {
	if _, err := LoadScenario(writeScenario(t, "name: nothing\n")); err == nil {
		t.Error("expected error for scenario without steps")
	}
}

func TestStepConfigErrors(t *testing.T) {
	if _, err := StepConfig(ScenarioStep{Preset: "warp"}); !errors.Is(err, config.ErrUnknownPreset) {
		t.Errorf("got %v, want ErrUnknownPreset", err)
	}
	if _, err := StepConfig(ScenarioStep{Params: map[string]float64{"gravity": 1}}); !errors.Is(err, config.ErrUnknownParam) {
		t.Errorf("got %v, want ErrUnknownParam", err)
	}
	if _, err := StepConfig(ScenarioStep{Params: map[string]float64{"width": -1}}); !errors.Is(err, config.ErrInvalidScreen) {
		t.Errorf("got %v, want ErrInvalidScreen", err)
	}
}

func TestRunSweepEccentricity(t *testing.T) {
	sweep := &ParameterSweep{
		ParamName: "eccentricity_scale",
		ParamMin:  1e-6,
		ParamMax:  5,
		NumSteps:  3,
		Frames:    300,
		Body:      "Earth",
	}
	results, err := RunSweep(context.Background(), sweep, nil)
	if err != nil {
		t.Fatalf("RunSweep: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}

	spread := func(r SweepResult) float64 { return r.MaxRadius - r.MinRadius }
	if s := spread(results[0]); s > 1e-3 {
		t.Errorf("near-circular orbit spread = %v", s)
	}
	for i := 1; i < len(results); i++ {
		if spread(results[i]) <= spread(results[i-1]) {
			t.Errorf("spread should grow with eccentricity: %v then %v", spread(results[i-1]), spread(results[i]))
		}
	}
	if math.Abs(results[2].ParamValue-5) > 1e-9 {
		t.Errorf("last value = %v, want 5", results[2].ParamValue)
	}
}

func TestRunSweepNeedsSteps(t *testing.T) {
	if _, err := RunSweep(context.Background(), &ParameterSweep{NumSteps: 1}, nil); err == nil {
		t.Error("expected error")
	}
}
