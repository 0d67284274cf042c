package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille pixel grid. Each cell also carries the colour of the
// last dot painted into it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]string
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]string, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]string, w)
	}
	c.Clear()
	return c
}

// Set lights the dot at (x, y) in sub-pixel coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Paint lights a dot and colours its cell.
func (c *Canvas) Paint(x, y int, hex string) {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return
	}
	c.Set(x, y)
	c.Colors[y/4][x/2] = hex
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
			c.Colors[i][j] = ""
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle paints every dot within r of (cx, cy). A radius under one dot
// still paints the centre.
func (c *Canvas) FillCircle(cx, cy, r float64, hex string) {
	x0, x1 := int(math.Floor(cx-r)), int(math.Ceil(cx+r))
	y0, y1 := int(math.Floor(cy-r)), int(math.Ceil(cy+r))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r*r {
				c.Paint(x, y, hex)
			}
		}
	}
	c.Paint(int(math.Round(cx)), int(math.Round(cy)), hex)
}

// DrawEllipse outlines an axis-aligned ellipse, lighting every step-th sample.
// step 1 gives a solid outline, larger values a dotted one.
func (c *Canvas) DrawEllipse(cx, cy, rx, ry float64, step int, hex string) {
	if step < 1 {
		step = 1
	}
	n := int(math.Ceil(2 * math.Pi * math.Max(rx, ry)))
	if n < 8 {
		n = 8
	}
	for i := 0; i < n; i += step {
		phi := 2 * math.Pi * float64(i) / float64(n)
		x := int(math.Round(cx + rx*math.Cos(phi)))
		y := int(math.Round(cy + ry*math.Sin(phi)))
		if hex == "" {
			c.Set(x, y)
		} else {
			c.Paint(x, y, hex)
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render is String with cell colours applied.
func (c *Canvas) Render() string {
	styles := make(map[string]lipgloss.Style)
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			hex := c.Colors[i][j]
			if hex == "" || r == 0x2800 {
				b.WriteRune(r)
				continue
			}
			st, ok := styles[hex]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
				styles[hex] = st
			}
			b.WriteString(st.Render(string(r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
