package timedataset

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// GenerateX generates n evenly spaced x values starting at 0 with the given
// step, e.g. period indexes 0, 1, 2, ... for a time-ordered series.
func GenerateX(n int, step float64) []float64 {
	x := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x = append(x, float64(i)*step)
	}
	return x
}

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func (s Series) SetConst(val float64, start, end int) Series {
	for i := start; i < end && i < len(s); i++ {
		s[i] = val
	}
	return s
}

// GenerateConstY generates a constant series of length n.
func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

// GenerateLineY generates a noiseless line, y_i = intercept + slope*x_i.
func GenerateLineY(x []float64, intercept, slope float64) Series {
	y := make([]float64, 0, len(x))
	for i := 0; i < len(x); i++ {
		y = append(y, intercept+slope*x[i])
	}
	return Series(y)
}

// GenerateNoise generates normally distributed noise scaled by noiseScale.
func GenerateNoise(n int, noiseScale float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, rand.NormFloat64()*noiseScale)
	}
	return Series(y)
}
