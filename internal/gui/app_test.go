package gui

import (
	"math"
	"testing"

	"github.com/san-kum/orrery/internal/scene"
)

func TestFitCamera(t *testing.T) {
	cam := fitCamera(1280, 720, scene.Screen{Width: 960, Height: 1080})

	want := float32(720.0 / 1080.0)
	if math.Abs(float64(cam.Zoom-want)) > 1e-6 {
		t.Errorf("zoom = %v, want %v", cam.Zoom, want)
	}
	if cam.Offset.X != 640 || cam.Offset.Y != 360 {
		t.Errorf("offset = %v, want window centre", cam.Offset)
	}
	if cam.Target.X != 480 || cam.Target.Y != 540 {
		t.Errorf("target = %v, want scene centre", cam.Target)
	}
}

func TestRingOffsets(t *testing.T) {
	tests := []struct {
		width float64
		want  []float64
	}{
		{0.2, []float64{0}},
		{1.5, []float64{-0.5, 0.5}},
		{3, []float64{-1, 0, 1}},
	}
	for _, tt := range tests {
		got := ringOffsets(tt.width)
		if len(got) != len(tt.want) {
			t.Fatalf("ringOffsets(%v) = %v, want %v", tt.width, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ringOffsets(%v)[%d] = %v, want %v", tt.width, i, got[i], tt.want[i])
			}
		}
	}
}

func TestAppStepCountsRevolutions(t *testing.T) {
	s, err := scene.New(scene.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	a := NewApp(s, Options{Width: 800, Height: 600})
	for i := 0; i < 600; i++ {
		a.step()
	}
	if a.Revs.Count("Mercury") != 1 {
		t.Errorf("Mercury revolutions = %d, want 1", a.Revs.Count("Mercury"))
	}

	a.reset()
	if s.Frame() != 0 || a.Revs.Value() != 0 {
		t.Errorf("reset left frame=%d revs=%v", s.Frame(), a.Revs.Value())
	}
}
