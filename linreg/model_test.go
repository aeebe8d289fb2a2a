package linreg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelPredict(t *testing.T) {
	tol := 1e-9
	testData := map[string]struct {
		m        Model
		x        float64
		expected float64
	}{
		"known values":   {Model{Intercept: 0.0, Slope: 2.0}, 4.0, 8.0},
		"with intercept": {Model{Intercept: 1.5, Slope: -0.5}, 3.0, 0.0},
		"at origin":      {Model{Intercept: 7.2, Slope: 3.1}, 0.0, 7.2},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, td.expected, td.m.Predict(td.x), tol)
		})
	}
}

func TestModelPredictLinearity(t *testing.T) {
	tol := 1e-9
	m := Model{Intercept: 3.4, Slope: -1.7}

	pairs := [][2]float64{
		{0, 1},
		{-5, 5},
		{2.5, 1e6},
		{123.4, 123.4},
	}
	for _, p := range pairs {
		x1, x2 := p[0], p[1]
		expected := m.Slope * (x2 - x1)
		assert.InDelta(t, expected, m.Predict(x2)-m.Predict(x1), tol*math.Max(1.0, math.Abs(expected)))
	}
}

func TestModelPredictSeries(t *testing.T) {
	m := Model{Intercept: 1.0, Slope: 2.0}
	res := m.PredictSeries([]float64{0, 1, 2, 3})
	assert.InDeltaSlice(t, []float64{1, 3, 5, 7}, res, 1e-9)
}

func TestModelEq(t *testing.T) {
	m := Model{Intercept: 1.25, Slope: -2.5}
	assert.Equal(t, "y ~ 1.25000 + -2.50000*x", m.Eq())
}
