package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/palette"
	"github.com/san-kum/orrery/internal/scene"
)

const glowScale = 1.6

func (a *App) Draw() {
	rl.BeginDrawing()
	bg := palette.Background.Stops
	rl.DrawRectangleGradientV(0, 0, a.width, a.height, colour(bg[0].Hex), colour(bg[len(bg)-1].Hex))

	snap := a.Scene.Snapshot()
	rl.BeginMode2D(a.Camera)
	a.drawScene(snap)
	rl.EndMode2D()

	a.DrawHUD()
	a.drawTooltip()
	rl.EndDrawing()
}

func (a *App) drawScene(snap scene.Snapshot) {
	star := colour(palette.Star.Hex())
	for _, s := range snap.Stars {
		rl.DrawCircleV(vec(s.Pos.X, s.Pos.Y), float32(s.Size/2), star)
	}

	if a.ShowOrbits {
		oc := colour(palette.Orbit)
		cx, cy := int32(snap.Center.X), int32(snap.Center.Y)
		for _, b := range snap.Bodies {
			if b.Kind == body.Planet {
				rl.DrawEllipseLines(cx, cy, float32(b.SemiMajor), float32(b.SemiMinor), oc)
			}
		}
	}

	ac := colour(palette.Asteroid.Hex())
	for _, p := range snap.Asteroids {
		rl.DrawCircleV(vec(p.X, p.Y), 1, ac)
	}

	for _, b := range snap.Bodies {
		a.drawBody(b)
	}
}

func (a *App) drawBody(b scene.BodyState) {
	g := palette.For(b.Name)
	x, y := int32(b.Pos.X), int32(b.Pos.Y)
	stops := g.Stops
	inner, outer := colour(stops[0].Hex), colour(stops[len(stops)-1].Hex)
	if g.Linear {
		inner, outer = palette.RGBA(g.At(0.1), 255), palette.RGBA(g.At(0.3), 255)
	}

	if b.Kind == body.Sun {
		halo := palette.RGBA(g.At(0.6), 255)
		rl.DrawCircleGradient(x, y, float32(b.Radius*glowScale), rl.ColorAlpha(halo, 0.5), rl.ColorAlpha(halo, 0))
	}
	if b.Name == a.Hovered {
		rl.DrawCircleV(vec(b.Pos.X, b.Pos.Y), float32(b.Radius)+2, rl.ColorAlpha(ColSelect, 0.4))
	}
	rl.DrawCircleGradient(x, y, float32(b.Radius), inner, outer)

	for _, r := range b.Rings {
		rc := colour(r.Color)
		for _, off := range ringOffsets(r.Width) {
			rl.DrawEllipseLines(x, y, float32(r.RadiusX+off), float32(r.RadiusY+off), rc)
		}
	}
}

// ringOffsets spreads a ring of the given stroke width over one-pixel outlines
// centred on the nominal radius.
func ringOffsets(width float64) []float64 {
	n := int(width + 0.5)
	if n < 1 {
		n = 1
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) - float64(n-1)/2
	}
	return out
}

func (a *App) DrawHUD() {
	a.drawText("orrery", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: frame %d", a.Scene.Frame()), 130, 34, 16, ColText)

	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, a.width-130, 30, 16, col)

	y := int32(70)
	for _, name := range []string{"Mercury", "Earth", "Jupiter"} {
		a.drawText(fmt.Sprintf("%-8s %3d rev", name, a.Revs.Count(name)), 30, y, 14, ColTextDim)
		y += 18
	}

	a.drawText("[SPACE] PAUSE  [R] RESET  [O] ORBITS  [P] PIN  [Q] QUIT", a.width-560, a.height-40, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, a.height-40, 14, ColTextDim)
}

func (a *App) drawTooltip() {
	tip := a.Scene.Tooltip()
	text := tip.Text(a.clock)
	if text == "" {
		return
	}
	const size, pad = 16, 10
	dim := rl.MeasureTextEx(a.Font, text, size, 1)
	mouse := rl.GetMousePosition()
	box := rl.NewRectangle(mouse.X+16, mouse.Y+16, dim.X+2*pad, dim.Y+2*pad)
	if box.X+box.Width > float32(a.width) {
		box.X = float32(a.width) - box.Width
	}
	if box.Y+box.Height > float32(a.height) {
		box.Y = float32(a.height) - box.Height
	}

	border := ColTextDim
	if tip.Pinned() {
		border = ColSelect
	}
	rl.DrawRectangleRec(box, ColPanel)
	rl.DrawRectangleLinesEx(box, 1, border)
	rl.DrawTextEx(a.Font, text, rl.NewVector2(box.X+pad, box.Y+pad), size, 1, colour(palette.Tooltip))
}

func (a *App) drawText(text string, x, y int32, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func vec(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x), float32(y))
}
