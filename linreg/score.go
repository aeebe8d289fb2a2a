package linreg

import (
	"fmt"
	"math"

	"github.com/aouyang1/go-trendline/timedataset"
	"gonum.org/v1/gonum/stat"
)

// Scores tracks the fit scores of a model against a dataset
type Scores struct {
	MSE  float64 `json:"mean_squared_error"`
	MAPE float64 `json:"mean_average_percent_error"`
	R2   float64 `json:"r_squared"`
}

// NewScores calculates the fit scores given a fitted model and the dataset
// to evaluate it against. Inputs are not mutated.
func NewScores(m Model, td *timedataset.Dataset) (*Scores, error) {
	mse, err := MSE(m, td)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean squared error, %w", err)
	}
	mape, err := MAPE(m, td)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean average percent error, %w", err)
	}
	rs, err := RSquared(m, td)
	if err != nil {
		return nil, fmt.Errorf("unable to compute r-squared, %w", err)
	}

	return &Scores{
		MSE:  mse,
		MAPE: mape,
		R2:   rs,
	}, nil
}

// MSE computes the mean squared error, (1/n)*sum((y-yhat)^2). A score of 0
// means a perfect match with no errors.
func MSE(m Model, td *timedataset.Dataset) (float64, error) {
	if td.Len() == 0 {
		return 0, ErrNoObservations
	}

	mse := 0.0
	for i := 0; i < len(td.X); i++ {
		res := td.Y[i] - m.Predict(td.X[i])
		mse += res * res
	}
	mse /= float64(td.Len())
	return mse, nil
}

// MAPE calculates the mean average percent error, sum(abs((y-yhat)/y))/n,
// skipping observations where y is 0. A score of 0 means a perfect match
// with no errors.
func MAPE(m Model, td *timedataset.Dataset) (float64, error) {
	if td.Len() == 0 {
		return 0, ErrNoObservations
	}

	mape := 0.0
	for i := 0; i < len(td.X); i++ {
		if td.Y[i] == 0 {
			continue
		}
		mape += math.Abs((td.Y[i] - m.Predict(td.X[i])) / td.Y[i])
	}
	mape /= float64(td.Len())
	return mape, nil
}

// RSquared computes the coefficient of determination, 1 - SSres/SStot,
// where 1.0 means a perfect fit and 0 represents no relationship. When all
// observed values are identical SStot is 0 and the ratio is undefined, so
// RSquared returns ErrZeroVariance rather than a NaN or a conventional
// fallback value.
func RSquared(m Model, td *timedataset.Dataset) (float64, error) {
	if td.Len() == 0 {
		return 0, ErrNoObservations
	}

	meanY := stat.Mean(td.Y, nil)

	var ssRes, ssTot float64
	for i := 0; i < len(td.X); i++ {
		res := td.Y[i] - m.Predict(td.X[i])
		tot := td.Y[i] - meanY
		ssRes += res * res
		ssTot += tot * tot
	}
	if ssTot == 0 {
		return 0, ErrZeroVariance
	}
	return 1.0 - ssRes/ssTot, nil
}
