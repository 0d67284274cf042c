// Package render paints scene snapshots into raster images with gogpu/gg.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gg"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/palette"
	"github.com/san-kum/orrery/internal/scene"
)

// glowScale is the sun halo radius relative to the sun's disc.
const glowScale = 1.6

type Options struct {
	// Orbits strokes each planet's path.
	Orbits bool
	// Glow draws a fading halo around the sun.
	Glow bool
}

func DefaultOptions() Options {
	return Options{Orbits: true, Glow: true}
}

// Frame draws snap onto a new context the size of its screen. The caller owns
// the context and must Close it.
func Frame(snap scene.Snapshot, opts Options) (*gg.Context, error) {
	w, h := int(snap.Screen.Width), int(snap.Screen.Height)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", scene.ErrScreen, w, h)
	}
	dc := gg.NewContext(w, h)

	steps := []func(*gg.Context, scene.Snapshot, Options) error{
		drawBackground,
		drawStars,
		drawOrbits,
		drawBelt,
		drawBodies,
	}
	for _, step := range steps {
		if err := step(dc, snap, opts); err != nil {
			dc.Close()
			return nil, err
		}
	}
	return dc, nil
}

// WritePNG renders snap and encodes it to w.
func WritePNG(w io.Writer, snap scene.Snapshot, opts Options) error {
	dc, err := Frame(snap, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

// SavePNG renders snap to a PNG file at path.
func SavePNG(path string, snap scene.Snapshot, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, snap, opts); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}

func drawBackground(dc *gg.Context, snap scene.Snapshot, _ Options) error {
	brush := gg.NewLinearGradientBrush(0, 0, 0, snap.Screen.Height)
	for _, s := range palette.Background.Stops {
		brush.AddColorStop(s.Offset, gg.Hex(s.Hex))
	}
	dc.SetFillBrush(brush)
	dc.DrawRectangle(0, 0, snap.Screen.Width, snap.Screen.Height)
	return dc.Fill()
}

func drawStars(dc *gg.Context, snap scene.Snapshot, _ Options) error {
	if len(snap.Stars) == 0 {
		return nil
	}
	dc.SetFillBrush(gg.Solid(gg.Hex(palette.Star.Hex())))
	for _, s := range snap.Stars {
		dc.DrawCircle(s.Pos.X, s.Pos.Y, s.Size/2)
	}
	return dc.Fill()
}

func drawOrbits(dc *gg.Context, snap scene.Snapshot, opts Options) error {
	if !opts.Orbits {
		return nil
	}
	dc.SetStrokeBrush(gg.Solid(gg.Hex(palette.Orbit)))
	dc.SetLineWidth(1)
	for _, b := range snap.Bodies {
		if b.Kind != body.Planet {
			continue
		}
		dc.DrawEllipse(snap.Center.X, snap.Center.Y, b.SemiMajor, b.SemiMinor)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("orbit %s: %w", b.Name, err)
		}
	}
	return nil
}

func drawBelt(dc *gg.Context, snap scene.Snapshot, _ Options) error {
	if len(snap.Asteroids) == 0 {
		return nil
	}
	dc.SetFillBrush(gg.Solid(gg.Hex(palette.Asteroid.Hex())))
	for _, a := range snap.Asteroids {
		dc.DrawCircle(a.X, a.Y, 1)
	}
	return dc.Fill()
}

func drawBodies(dc *gg.Context, snap scene.Snapshot, opts Options) error {
	for _, b := range snap.Bodies {
		if b.Kind == body.Sun && opts.Glow {
			if err := drawGlow(dc, b); err != nil {
				return err
			}
		}
		dc.SetFillBrush(bodyBrush(b))
		dc.DrawCircle(b.Pos.X, b.Pos.Y, b.Radius)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("body %s: %w", b.Name, err)
		}
		for _, r := range b.Rings {
			dc.SetStrokeBrush(gg.Solid(gg.Hex(r.Color)))
			dc.SetLineWidth(r.Width)
			dc.DrawEllipse(b.Pos.X, b.Pos.Y, r.RadiusX, r.RadiusY)
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("ring of %s: %w", b.Name, err)
			}
		}
	}
	return nil
}

func drawGlow(dc *gg.Context, sun scene.BodyState) error {
	c := gg.Hex(palette.For(sun.Name).At(0.6).Hex())
	brush := gg.NewRadialGradientBrush(sun.Pos.X, sun.Pos.Y, sun.Radius, sun.Radius*glowScale).
		AddColorStop(0, gg.RGBA2(c.R, c.G, c.B, 0.5)).
		AddColorStop(1, gg.RGBA2(c.R, c.G, c.B, 0))
	dc.SetFillBrush(brush)
	dc.DrawCircle(sun.Pos.X, sun.Pos.Y, sun.Radius*glowScale)
	return dc.Fill()
}

// bodyBrush maps a palette gradient onto the body's disc. Linear gradients run
// across a fifth of the disc and reflect, giving Jupiter its bands.
func bodyBrush(b scene.BodyState) gg.Brush {
	g := palette.For(b.Name)
	if g.Linear {
		x0 := b.Pos.X - b.Radius
		brush := gg.NewLinearGradientBrush(x0, b.Pos.Y-b.Radius, x0+b.Radius*2, b.Pos.Y-b.Radius*0.6)
		for _, s := range g.Stops {
			brush.AddColorStop(s.Offset, gg.Hex(s.Hex))
		}
		if g.Reflect {
			brush.SetExtend(gg.ExtendReflect)
		}
		return brush
	}
	brush := gg.NewRadialGradientBrush(b.Pos.X, b.Pos.Y, 0, b.Radius)
	for _, s := range g.Stops {
		brush.AddColorStop(s.Offset, gg.Hex(s.Hex))
	}
	return brush
}
