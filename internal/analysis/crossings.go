package analysis

// Crossings returns the fractional sample indices at which series rises
// through threshold.
func Crossings(series []float64, threshold float64) []float64 {
	out := make([]float64, 0)
	for i := 1; i < len(series); i++ {
		prev, curr := series[i-1], series[i]
		if prev < threshold && curr >= threshold {
			frac := (threshold - prev) / (curr - prev)
			out = append(out, float64(i-1)+frac)
		}
	}
	return out
}

// CrossingPeriod is the mean spacing between crossings of the series mean.
// Returns 0 with fewer than two crossings.
func CrossingPeriod(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))

	c := Crossings(series, mean)
	if len(c) < 2 {
		return 0
	}
	return (c[len(c)-1] - c[0]) / float64(len(c)-1)
}
