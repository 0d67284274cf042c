package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/orrery/internal/scene"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Asteroids != 200 {
		t.Errorf("expected 200 asteroids, got %d", cfg.Asteroids)
	}
	if cfg.TooltipDelay != 5*time.Second {
		t.Errorf("expected 5s tooltip delay, got %v", cfg.TooltipDelay)
	}
	if got := cfg.FrameInterval(); got != time.Second/60 {
		t.Errorf("expected %v frame interval, got %v", time.Second/60, got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidScreen},
		{"negative height", func(c *Config) { c.Height = -1 }, ErrInvalidScreen},
		{"negative stars", func(c *Config) { c.Stars = -3 }, ErrInvalidCount},
		{"zero fps", func(c *Config) { c.FPS = 0 }, ErrInvalidRate},
		{"zero frames", func(c *Config) { c.Frames = 0 }, ErrInvalidRate},
		{"zero speed", func(c *Config) { c.SpeedScale = 0 }, ErrInvalidScale},
		{"negative eccentricity", func(c *Config) { c.EccentricityScale = -0.5 }, ErrInvalidScale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orrery.yaml")
	data := "width: 1280\nasteroids: 50\ntooltip_delay: 2s\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 1280 || cfg.Asteroids != 50 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Height != DefaultHeight || cfg.Stars != DefaultStars {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.TooltipDelay != 2*time.Second {
		t.Errorf("expected 2s delay, got %v", cfg.TooltipDelay)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("height: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidScreen) {
		t.Errorf("expected ErrInvalidScreen, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Theme = "ember"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestSceneConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 800, 600
	cfg.SpeedScale = 2

	sc := cfg.Scene()
	if sc.Screen.Width != 800 || sc.Screen.Height != 600 {
		t.Errorf("screen not carried: %+v", sc.Screen)
	}
	if sc.Bodies.SpeedScale != 2 {
		t.Errorf("speed scale not carried: %+v", sc.Bodies)
	}
	if err := sc.Validate(); err != nil {
		t.Errorf("scene config invalid: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg, err := GetPreset("dense")
	if err != nil {
		t.Fatalf("expected preset: %v", err)
	}
	if cfg.Asteroids != 1200 {
		t.Errorf("expected 1200 asteroids, got %d", cfg.Asteroids)
	}

	again, _ := GetPreset("dense")
	again.Asteroids = 1
	if cfg.Asteroids != 1200 {
		t.Error("presets must not share state")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if _, err := GetPreset("nonexistent"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
	for _, n := range names {
		cfg, _ := GetPreset(n)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", n, err)
		}
		if Describe(n) == "" {
			t.Errorf("preset %s has no description", n)
		}
	}
}

func TestSet(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Set("asteroids", 12.9); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Set("speed_scale", 2); err != nil {
		t.Fatal(err)
	}
	if cfg.Asteroids != 12 || cfg.SpeedScale != 2 {
		t.Errorf("got asteroids=%d speed=%v", cfg.Asteroids, cfg.SpeedScale)
	}
	if err := cfg.Set("gravity", 1); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}

func TestCircularPreset(t *testing.T) {
	cfg, err := GetPreset("circular")
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("circular preset invalid: %v", err)
	}

	s, err := scene.New(cfg.Scene())
	if err != nil {
		t.Fatalf("scene: %v", err)
	}
	for i := 0; i < 250; i++ {
		s.Tick()
	}

	c := s.Center()
	for _, p := range s.System().Planets {
		if p.Orbit.Eccentricity != 0 {
			t.Errorf("%s e = %v, want 0", p.Name, p.Orbit.Eccentricity)
		}
		dx, dy := p.Pos.X-c.X, p.Pos.Y-c.Y
		a := p.Orbit.SemiMajor
		if math.Abs(dx*dx+dy*dy-a*a) > 1e-6*a*a {
			t.Errorf("%s off its circle: r^2=%v a^2=%v", p.Name, dx*dx+dy*dy, a*a)
		}
	}
}
