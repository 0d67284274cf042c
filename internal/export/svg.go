// Package export writes scenes and recorded paths as SVG documents.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/orrery/internal/analysis"
	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/palette"
	"github.com/san-kum/orrery/internal/scene"
)

// SnapshotToSVG draws a frame at screen resolution. Body fills reference one
// gradient per body in <defs>.
func SnapshotToSVG(snap scene.Snapshot, orbits bool) string {
	w, h := snap.Screen.Width, snap.Screen.Height

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<defs>
`, w, h, w, h)
	writeGradient(&sb, "background", palette.Background)
	for _, b := range snap.Bodies {
		writeGradient(&sb, gradientID(b.Name), palette.For(b.Name))
	}
	sb.WriteString("</defs>\n")
	fmt.Fprintf(&sb, `<rect width="100%%" height="100%%" fill="url(#background)"/>`+"\n")

	if len(snap.Stars) > 0 {
		fmt.Fprintf(&sb, `<g fill="%s">`+"\n", palette.Star.Hex())
		for _, s := range snap.Stars {
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>`+"\n", s.Pos.X, s.Pos.Y, s.Size/2)
		}
		sb.WriteString("</g>\n")
	}

	if orbits {
		fmt.Fprintf(&sb, `<g fill="none" stroke="%s" stroke-width="1">`+"\n", palette.Orbit)
		for _, b := range snap.Bodies {
			if b.Kind != body.Planet {
				continue
			}
			fmt.Fprintf(&sb, `<ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f"/>`+"\n",
				snap.Center.X, snap.Center.Y, b.SemiMajor, b.SemiMinor)
		}
		sb.WriteString("</g>\n")
	}

	if len(snap.Asteroids) > 0 {
		fmt.Fprintf(&sb, `<g fill="%s">`+"\n", palette.Asteroid.Hex())
		for _, a := range snap.Asteroids {
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="1"/>`+"\n", a.X, a.Y)
		}
		sb.WriteString("</g>\n")
	}

	for _, b := range snap.Bodies {
		fmt.Fprintf(&sb, `<circle id="%s" cx="%.1f" cy="%.1f" r="%.2f" fill="url(#%s)"/>`+"\n",
			b.Name, b.Pos.X, b.Pos.Y, b.Radius, gradientID(b.Name))
		for _, r := range b.Rings {
			fmt.Fprintf(&sb, `<ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n",
				b.Pos.X, b.Pos.Y, r.RadiusX, r.RadiusY, r.Color, r.Width)
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func gradientID(name string) string {
	return "grad-" + strings.ToLower(name)
}

func writeGradient(sb *strings.Builder, id string, g palette.Gradient) {
	switch {
	case g.Linear && id == "background":
		fmt.Fprintf(sb, `<linearGradient id="%s" x1="0" y1="0" x2="0" y2="1">`+"\n", id)
	case g.Linear:
		spread := "pad"
		if g.Reflect {
			spread = "reflect"
		}
		fmt.Fprintf(sb, `<linearGradient id="%s" x1="0" y1="0" x2="1" y2="0.2" spreadMethod="%s">`+"\n", id, spread)
	default:
		fmt.Fprintf(sb, `<radialGradient id="%s">`+"\n", id)
	}
	for _, s := range g.Stops {
		fmt.Fprintf(sb, `<stop offset="%.2f" stop-color="%s"/>`+"\n", s.Offset, s.Hex)
	}
	if g.Linear {
		sb.WriteString("</linearGradient>\n")
	} else {
		sb.WriteString("</radialGradient>\n")
	}
}

// TrajectoryToSVG creates an SVG path from recorded positions. Screen y grows
// downwards, so the path is not flipped.
func TrajectoryToSVG(points []analysis.Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#000000"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := (p.Y - minY) / rangeY * float64(height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
