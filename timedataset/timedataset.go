// Package timedataset provides the ordered (x, y) observation container
// consumed by the regression core along with helpers to simulate series.
package timedataset

import (
	"errors"
	"fmt"
)

var ErrDatasetLenMismatch = errors.New("x values have a different length than observations")

// Observation is a single historical data point pairing an independent
// variable value with its observed value.
type Observation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dataset represents an ordered series storing a slice of independent
// variable values and observed values. Both must be of the same length.
// Once constructed it is read-only and safe to share across goroutines.
type Dataset struct {
	X []float64
	Y []float64
}

// NewDataset returns an instance of a Dataset given an x and y slice. The
// input slices are copied so later caller mutations do not leak into the
// dataset. An empty dataset is constructible; operations that require a
// minimum number of observations enforce that at call time.
func NewDataset(x, y []float64) (*Dataset, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf(
			"x values have a length of %d, but values has a length of %d, %w",
			len(x), len(y), ErrDatasetLenMismatch,
		)
	}

	xSeries := make([]float64, len(x))
	ySeries := make([]float64, len(y))
	copy(xSeries, x)
	copy(ySeries, y)
	return &Dataset{
		X: xSeries,
		Y: ySeries,
	}, nil
}

// FromObservations returns a Dataset preserving the ordering of the input
// observation pairs.
func FromObservations(obs []Observation) *Dataset {
	xSeries := make([]float64, 0, len(obs))
	ySeries := make([]float64, 0, len(obs))
	for _, o := range obs {
		xSeries = append(xSeries, o.X)
		ySeries = append(ySeries, o.Y)
	}
	return &Dataset{
		X: xSeries,
		Y: ySeries,
	}
}

// Observations returns the dataset as an ordered slice of observation pairs.
func (td *Dataset) Observations() []Observation {
	if td == nil {
		return nil
	}
	obs := make([]Observation, 0, len(td.X))
	for i := 0; i < len(td.X); i++ {
		obs = append(obs, Observation{X: td.X[i], Y: td.Y[i]})
	}
	return obs
}

// Len returns the number of observations in the dataset.
func (td *Dataset) Len() int {
	if td == nil {
		return 0
	}
	return len(td.X)
}

func (td *Dataset) Copy() *Dataset {
	xSeries := make([]float64, len(td.X))
	ySeries := make([]float64, len(td.Y))
	copy(xSeries, td.X)
	copy(ySeries, td.Y)
	return &Dataset{
		X: xSeries,
		Y: ySeries,
	}
}
