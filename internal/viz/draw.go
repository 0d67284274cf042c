package viz

import (
	"math"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/palette"
	"github.com/san-kum/orrery/internal/scene"
)

// projection maps scene units onto canvas dots, preserving aspect ratio and
// centring the scene.
type projection struct {
	scale, offX, offY float64
}

func newProjection(screen scene.Screen, c *Canvas) projection {
	cw, ch := float64(c.Width*2), float64(c.Height*4)
	s := math.Min(cw/screen.Width, ch/screen.Height)
	return projection{
		scale: s,
		offX:  (cw - screen.Width*s) / 2,
		offY:  (ch - screen.Height*s) / 2,
	}
}

func (p projection) toCanvas(pt orbit.Point) (float64, float64) {
	return p.offX + pt.X*p.scale, p.offY + pt.Y*p.scale
}

func (p projection) toScene(x, y float64) orbit.Point {
	return orbit.Point{X: (x - p.offX) / p.scale, Y: (y - p.offY) / p.scale}
}

// drawSnapshot paints one frame. Layers go back to front: stars, orbit guides,
// belt, bodies, rings.
func drawSnapshot(c *Canvas, snap scene.Snapshot, theme Theme, orbits bool) projection {
	c.Clear()
	proj := newProjection(snap.Screen, c)

	for _, st := range snap.Stars {
		x, y := proj.toCanvas(st.Pos)
		c.Paint(int(x), int(y), theme.Star)
	}

	if orbits {
		cx, cy := proj.toCanvas(snap.Center)
		for _, b := range snap.Bodies {
			if b.Kind != body.Planet {
				continue
			}
			c.DrawEllipse(cx, cy, b.SemiMajor*proj.scale, b.SemiMinor*proj.scale, 3, theme.Orbit)
		}
	}

	for _, a := range snap.Asteroids {
		x, y := proj.toCanvas(a)
		c.Paint(int(x), int(y), theme.Belt)
	}

	for _, b := range snap.Bodies {
		x, y := proj.toCanvas(b.Pos)
		c.FillCircle(x, y, b.Radius*proj.scale, palette.For(b.Name).Hex())
		for _, r := range b.Rings {
			c.DrawEllipse(x, y, r.RadiusX*proj.scale, r.RadiusY*proj.scale, 1, r.Color)
		}
	}

	return proj
}
