// Package palette holds the colour schemes shared by every renderer.
//
// Each body carries a gradient described by hex stops. Renderers that can paint
// gradients (raylib, gg, SVG) use the stops directly; the terminal samples a
// single representative colour with [Gradient.At].
package palette

import (
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

type Stop struct {
	Offset float64
	Hex    string
}

// Gradient is a radial gradient unless Linear is set. Reflect mirrors a linear
// gradient past its end, as Jupiter's bands do.
type Gradient struct {
	Stops   []Stop
	Linear  bool
	Reflect bool
}

var (
	Background = Gradient{Linear: true, Stops: []Stop{{0, "#000000"}, {1, "#00008b"}}}
	Asteroid   = Solid("#faf0e6")
	Star       = Solid("#ffffff")
	Tooltip    = "#ffffff"
	Orbit      = "#2a2a44"
)

var bodies = map[string]Gradient{
	"Sun":     {Stops: []Stop{{0, "#ffff00"}, {0.6, "#ffa500"}, {1, "#ff0000"}}},
	"Mercury": {Stops: []Stop{{0, "#7f7f7f"}, {0.6, "#4c4c4c"}, {1, "#2a2a2a"}}},
	"Venus":   {Stops: []Stop{{0, "#e5b97e"}, {0.6, "#d77f3c"}, {1, "#9f4f20"}}},
	"Earth":   Solid("#4682b4"),
	"Mars":    {Stops: []Stop{{0, "#d16c4b"}, {0.6, "#a13a2e"}, {1, "#7f2a1c"}}},
	"Jupiter": {Linear: true, Reflect: true, Stops: []Stop{
		{0.0, "#deb887"}, {0.1, "#d2b48c"}, {0.2, "#8b4513"}, {0.3, "#ff8c00"}, {0.4, "#a52a2a"},
		{0.5, "#deb887"}, {0.6, "#d2b48c"}, {0.7, "#8b4513"}, {0.8, "#ff8c00"}, {0.9, "#a52a2a"},
	}},
	"Saturn":  {Stops: []Stop{{0, "#cd853f"}, {0.4, "#daa520"}, {1, "#fafad2"}}},
	"Uranus":  {Stops: []Stop{{0, "#a0d8d3"}, {0.6, "#66b1b1"}, {1, "#4f7d7d"}}},
	"Neptune": {Stops: []Stop{{0, "#4a90e2"}, {0.6, "#306c9b"}, {1, "#1a3a5a"}}},
	"Pluto":   {Stops: []Stop{{0, "#a89785"}, {0.6, "#7a5d45"}, {1, "#5a3a2c"}}},
	"Moon":    Solid("#b0c4de"),
}

// Solid is a single-colour gradient.
func Solid(hex string) Gradient {
	return Gradient{Stops: []Stop{{0, hex}, {1, hex}}}
}

// For returns the gradient registered for a body name, or a neutral grey.
func For(name string) Gradient {
	if g, ok := bodies[name]; ok {
		return g
	}
	return Solid("#aaaaaa")
}

// At samples the gradient at t in [0, 1], blending neighbouring stops in Lab
// space.
func (g Gradient) At(t float64) colorful.Color {
	stops := g.sorted()
	if len(stops) == 0 {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	if t <= stops[0].Offset {
		return parse(stops[0].Hex)
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			lo, hi := stops[i-1], stops[i]
			span := hi.Offset - lo.Offset
			if span <= 0 || t == hi.Offset {
				return parse(hi.Hex)
			}
			if lo.Hex == hi.Hex {
				return parse(lo.Hex)
			}
			return parse(lo.Hex).BlendLab(parse(hi.Hex), (t-lo.Offset)/span).Clamped()
		}
	}
	return parse(stops[len(stops)-1].Hex)
}

// Base is the colour a single-colour renderer should use for the body.
func (g Gradient) Base() colorful.Color {
	return g.At(0.3)
}

// Hex returns the base colour as #rrggbb.
func (g Gradient) Hex() string {
	return g.Base().Hex()
}

func (g Gradient) sorted() []Stop {
	stops := append([]Stop(nil), g.Stops...)
	sort.SliceStable(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset })
	return stops
}

// RGBA converts a colour to 8-bit RGBA with the given alpha.
func RGBA(c colorful.Color, alpha uint8) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}
}

// HexRGBA parses #rrggbb into an opaque color.RGBA.
func HexRGBA(hex string) color.RGBA {
	return RGBA(parse(hex), 255)
}

func parse(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}
