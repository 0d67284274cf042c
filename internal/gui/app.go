package gui

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orrery/internal/metrics"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/palette"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/sim"
)

var (
	ColText    = rl.NewColor(200, 200, 200, 255)
	ColTextDim = rl.NewColor(90, 90, 110, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColPanel   = rl.NewColor(0, 0, 0, 180)
)

const fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"

type Options struct {
	Width, Height int32
	FPS           int32
}

type App struct {
	Scene      *scene.Scene
	Camera     rl.Camera2D
	Running    bool
	ShowOrbits bool
	Font       rl.Font
	Revs       *metrics.RevolutionCounter
	Hovered    string

	width, height int32
	clock         time.Time
	fontLoaded    bool
}

func initWindow(opts Options) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(opts.Width, opts.Height, "orrery")
	rl.SetTargetFPS(opts.FPS)
	rl.SetExitKey(0)
}

// loadFont falls back to raylib's built-in font when the system font is missing.
func (a *App) loadFont() {
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	if !rl.IsFontValid(font) {
		a.Font = rl.GetFontDefault()
		return
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	a.Font = font
	a.fontLoaded = true
}

func NewApp(s *scene.Scene, opts Options) *App {
	a := &App{
		Scene:      s,
		Running:    true,
		ShowOrbits: true,
		Revs:       metrics.NewRevolutionCounter(),
		width:      opts.Width,
		height:     opts.Height,
		clock:      time.Now(),
	}
	a.Camera = fitCamera(opts.Width, opts.Height, s.Config().Screen)
	return a
}

// Run opens the window and blocks until it is closed.
func Run(s *scene.Scene, opts Options) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1280, 720
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	initWindow(opts)
	defer rl.CloseWindow()

	app := NewApp(s, opts)
	app.loadFont()
	defer app.unloadFont()
	app.RunLoop()
}

func (a *App) unloadFont() {
	if a.fontLoaded {
		rl.UnloadFont(a.Font)
	}
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		a.Update(float64(rl.GetFrameTime()))
		a.Draw()
	}
}

// fitCamera scales the scene to fill the window while keeping its aspect,
// centred on the scene's centre.
func fitCamera(w, h int32, screen scene.Screen) rl.Camera2D {
	zoom := math.Min(float64(w)/screen.Width, float64(h)/screen.Height)
	c := screen.Center()
	return rl.NewCamera2D(
		rl.NewVector2(float32(w)/2, float32(h)/2),
		rl.NewVector2(float32(c.X), float32(c.Y)),
		0,
		float32(zoom),
	)
}

// Update advances the clock by dt seconds and ticks the scene once when running.
func (a *App) Update(dt float64) {
	a.clock = a.clock.Add(time.Duration(dt * float64(time.Second)))

	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyO) {
		a.ShowOrbits = !a.ShowOrbits
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.reset()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.Scene.Tooltip().TogglePin(a.clock)
	}

	mouse := rl.GetScreenToWorld2D(rl.GetMousePosition(), a.Camera)
	a.hover(orbit.Point{X: float64(mouse.X), Y: float64(mouse.Y)})
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && a.Hovered != "" {
		a.Scene.Tooltip().TogglePin(a.clock)
	}

	if a.Running {
		a.step()
	}
}

// hover resolves the body under p and refreshes the tooltip. The slack keeps
// tiny bodies reachable once the camera zooms out.
func (a *App) hover(p orbit.Point) {
	slack := 0.0
	if a.Camera.Zoom > 0 && a.Camera.Zoom < 1 {
		slack = 2 / float64(a.Camera.Zoom)
	}
	a.Hovered = ""
	if b := a.Scene.HoverNear(p, slack, a.clock); b != nil {
		a.Hovered = b.Name
	}
}

func (a *App) step() {
	wrapped := a.Scene.Tick()
	a.Revs.OnFrame(&sim.Frame{Index: a.Scene.Frame(), Wrapped: wrapped})
}

func (a *App) reset() {
	a.Scene.Reset()
	a.Revs.Reset()
	a.Hovered = ""
}

// colour converts a palette hex into a raylib colour.
func colour(hex string) rl.Color {
	return palette.HexRGBA(hex)
}
