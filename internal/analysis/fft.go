package analysis

import (
	"math"
	"math/cmplx"
)

// FFT is a radix-2 transform; len(data) must be a power of two.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

func PowerSpectrum(data []float64) []float64 {
	fft := FFT(data)
	ps := make([]float64, len(fft)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}

	return ps
}

// PowerOfTwo returns the largest power of two <= n, or 0.
func PowerOfTwo(n int) int {
	if n < 1 {
		return 0
	}
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}

// DominantPeriod estimates the period, in samples, of the strongest
// oscillation in series. The mean is removed and the series truncated to a
// power of two. Returns 0 when there are fewer than four samples or the
// series is flat.
func DominantPeriod(series []float64) float64 {
	n := PowerOfTwo(len(series))
	if n < 4 {
		return 0
	}

	data := make([]float64, n)
	mean := 0.0
	for _, v := range series[:n] {
		mean += v
	}
	mean /= float64(n)
	for i, v := range series[:n] {
		data[i] = v - mean
	}

	ps := PowerSpectrum(data)
	peak := 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > ps[peak] || peak == 0 {
			peak = k
		}
	}
	if ps[peak] < 1e-9 {
		return 0
	}

	// Parabolic interpolation around the peak bin.
	k := float64(peak)
	if peak > 1 && peak < len(ps)-1 {
		a, b, c := ps[peak-1], ps[peak], ps[peak+1]
		if d := a - 2*b + c; d != 0 {
			k += 0.5 * (a - c) / d
		}
	}
	return float64(n) / k
}
