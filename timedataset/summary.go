package timedataset

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
)

var ErrNoObservations = errors.New("no observations in dataset")

// SummaryStats describes the distribution of the observed values in a
// dataset for reporting purposes.
type SummaryStats struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summary computes descriptive statistics over the observed values.
func (td *Dataset) Summary() (*SummaryStats, error) {
	if td.Len() == 0 {
		return nil, ErrNoObservations
	}

	y := stats.Float64Data(td.Y)
	mean, err := y.Mean()
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean, %w", err)
	}
	median, err := y.Median()
	if err != nil {
		return nil, fmt.Errorf("unable to compute median, %w", err)
	}
	stddev, err := y.StandardDeviation()
	if err != nil {
		return nil, fmt.Errorf("unable to compute standard deviation, %w", err)
	}
	minVal, err := y.Min()
	if err != nil {
		return nil, fmt.Errorf("unable to compute min, %w", err)
	}
	maxVal, err := y.Max()
	if err != nil {
		return nil, fmt.Errorf("unable to compute max, %w", err)
	}

	return &SummaryStats{
		N:      td.Len(),
		Mean:   mean,
		Median: median,
		StdDev: stddev,
		Min:    minVal,
		Max:    maxVal,
	}, nil
}
