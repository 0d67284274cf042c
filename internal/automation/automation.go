package automation

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/metrics"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/sim"
)

// Scenario is a scripted batch of headless runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one run. Params override the preset by config field name.
type ScenarioStep struct {
	Preset string             `yaml:"preset"`
	Frames int                `yaml:"frames"`
	Seed   int64              `yaml:"seed"`
	Params map[string]float64 `yaml:"params"`
	SaveAs string             `yaml:"save_as"`
}

// StepResult pairs a run with the configuration that produced it.
type StepResult struct {
	Step   ScenarioStep
	Config *config.Config
	Result *sim.Result
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("%s: scenario has no steps", path)
	}
	return &scenario, nil
}

// StepConfig resolves a step against its preset.
func StepConfig(step ScenarioStep) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if step.Preset != "" {
		p, err := config.GetPreset(step.Preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	for k, v := range step.Params {
		if err := cfg.Set(k, v); err != nil {
			return nil, err
		}
	}
	if step.Frames > 0 {
		cfg.Frames = step.Frames
	}
	if step.Seed != 0 {
		cfg.Seed = step.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RunScenario executes every step in order. Progress lines go to out, which
// may be nil. newMetrics is called once per step.
func RunScenario(ctx context.Context, scenario *Scenario, newMetrics func() []sim.Metric, out io.Writer) ([]StepResult, error) {
	if out == nil {
		out = io.Discard
	}
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		fmt.Fprintf(out, "running step %d/%d: %s\n", i+1, len(scenario.Steps), stepLabel(step))

		cfg, err := StepConfig(step)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		result, err := runOnce(ctx, cfg, newMetrics)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}
		results = append(results, StepResult{Step: step, Config: cfg, Result: result})
	}

	return results, nil
}

func stepLabel(step ScenarioStep) string {
	switch {
	case step.SaveAs != "":
		return step.SaveAs
	case step.Preset != "":
		return step.Preset
	}
	return "default"
}

func runOnce(ctx context.Context, cfg *config.Config, newMetrics func() []sim.Metric) (*sim.Result, error) {
	s, err := scene.New(cfg.Scene())
	if err != nil {
		return nil, err
	}
	d := sim.New(s)
	if newMetrics != nil {
		for _, m := range newMetrics() {
			d.AddMetric(m)
		}
	}
	return d.Run(ctx, sim.Config{Frames: cfg.Frames, FPS: cfg.FPS, Seed: cfg.Seed})
}

// ParameterSweep varies one config field across an evenly spaced range and
// watches one body's distance from the sun.
type ParameterSweep struct {
	Preset    string
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
	Frames    int
	Body      string
}

type SweepResult struct {
	ParamValue  float64
	MinRadius   float64
	MaxRadius   float64
	MeanRadius  float64
	Revolutions int
}

func RunSweep(ctx context.Context, sweep *ParameterSweep, out io.Writer) ([]SweepResult, error) {
	if sweep.NumSteps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", sweep.NumSteps)
	}
	if out == nil {
		out = io.Discard
	}
	results := make([]SweepResult, 0, sweep.NumSteps)
	paramStep := (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)

	for i := 0; i < sweep.NumSteps; i++ {
		paramVal := sweep.ParamMin + float64(i)*paramStep
		cfg, err := StepConfig(ScenarioStep{
			Preset: sweep.Preset,
			Frames: sweep.Frames,
			Params: map[string]float64{sweep.ParamName: paramVal},
		})
		if err != nil {
			return nil, err
		}

		radius := metrics.NewMeanRadius(sweep.Body)
		revs := metrics.NewRevolutionCounter()
		if _, err := runOnce(ctx, cfg, func() []sim.Metric { return []sim.Metric{radius, revs} }); err != nil {
			return nil, err
		}

		r := SweepResult{
			ParamValue:  paramVal,
			MeanRadius:  radius.Value(),
			Revolutions: revs.Count(sweep.Body),
		}
		if b := radius.Breakdown(); b != nil {
			r.MinRadius, r.MaxRadius = b["min"], b["max"]
		}
		results = append(results, r)

		fmt.Fprintf(out, "sweep %d/%d: %s=%.4f\n", i+1, sweep.NumSteps, sweep.ParamName, paramVal)
	}

	return results, nil
}
