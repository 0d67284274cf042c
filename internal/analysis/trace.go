package analysis

import "strings"

type Point struct{ X, Y float64 }

// Trace pairs x and y columns into points, stopping at the shorter one.
func Trace(xs, ys []float64) []Point {
	n := min(len(xs), len(ys))
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{xs[i], ys[i]}
	}
	return pts
}

// TraceToASCII plots points in screen orientation (y grows downward). When
// center is non-nil it is marked with '+'.
func TraceToASCII(points []Point, center *Point, width, height int) string {
	if len(points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	extend := func(p Point) {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	for _, p := range points {
		extend(p)
	}
	if center != nil {
		extend(*center)
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

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	cell := func(p Point) (int, int) {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := int((p.Y - minY) / rangeY * float64(height-1))
		return row, col
	}

	for _, p := range points {
		row, col := cell(p)
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}
	if center != nil {
		row, col := cell(*center)
		canvas[row][col] = '+'
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
