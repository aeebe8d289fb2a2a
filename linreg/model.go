// Package linreg fits a simple linear regression to an ordered dataset and
// scores the resulting fit. All operations are pure functions over
// immutable value types.
package linreg

import (
	"fmt"
)

// Model stores the fitted regression line, y = intercept + slope*x. It is
// a plain value created once by Fit and freely copyable afterwards.
type Model struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
}

// Predict returns the forecasted value at x. Applying Predict over a
// sequence of x values is independent per value with no shared state.
func (m Model) Predict(x float64) float64 {
	return m.Intercept + m.Slope*x
}

// PredictSeries maps Predict over a slice of x values preserving order.
func (m Model) PredictSeries(x []float64) []float64 {
	res := make([]float64, 0, len(x))
	for _, xPnt := range x {
		res = append(res, m.Predict(xPnt))
	}
	return res
}

// Eq returns a string representation of the fit model represented as
// y ~ b + mx
func (m Model) Eq() string {
	return fmt.Sprintf("y ~ %.5f + %.5f*x", m.Intercept, m.Slope)
}
