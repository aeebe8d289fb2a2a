package linreg

import (
	"github.com/aouyang1/go-trendline/timedataset"
	"gonum.org/v1/gonum/stat"
)

// MinObservations is the fewest observations needed for a determinate slope.
const MinObservations = 2

// Fit computes ordinary least squares over the input dataset using the
// closed-form centered formulas,
//
//	slope = sum((x-meanx)*(y-meany)) / sum((x-meanx)^2)
//	intercept = meany - slope*meanx
//
// Sums accumulate in the dataset's given order so repeated fits over the
// same dataset are bit-for-bit reproducible. Returns ErrInsufficientData
// with fewer than two observations and ErrInsufficientVariance when all x
// values are identical. The degenerate cases never divide by zero or leak
// a NaN into the returned model.
func Fit(td *timedataset.Dataset) (Model, error) {
	if td.Len() < MinObservations {
		return Model{}, ErrInsufficientData
	}

	meanX := stat.Mean(td.X, nil)
	meanY := stat.Mean(td.Y, nil)

	var ssXY, ssXX float64
	for i := 0; i < len(td.X); i++ {
		dx := td.X[i] - meanX
		ssXY += dx * (td.Y[i] - meanY)
		ssXX += dx * dx
	}
	if ssXX == 0 {
		return Model{}, ErrInsufficientVariance
	}

	slope := ssXY / ssXX
	return Model{
		Intercept: meanY - slope*meanX,
		Slope:     slope,
	}, nil
}
