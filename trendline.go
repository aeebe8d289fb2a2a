// Package trendline fits a simple linear trend to a sequence of ordered
// observations and can be used to generate forecasts for future points.
package trendline

import (
	"errors"
	"fmt"
	"io"

	"github.com/aouyang1/go-trendline/linreg"
	"github.com/aouyang1/go-trendline/timedataset"
	"github.com/go-echarts/go-echarts/v2/components"
)

var ErrUntrainedTrendline = errors.New("trendline has not been fit yet")

// Trendline fits a regression model over an ordered dataset and can be used
// to generate forecasts along with the fit scores and residuals.
type Trendline struct {
	weights linreg.Model
	scores  *linreg.Scores

	fitTrainingData *timedataset.Dataset
	fitResults      *Results
	residual        []float64
	trained         bool
}

// New creates a new instance of a Trendline ready to be fit.
func New() *Trendline {
	return &Trendline{}
}

// NewFromModel creates a new instance of Trendline from a pre-existing
// model. This should be generated from a previous trendline call to Model()
// and can generate forecasts immediately skipping the training step.
func NewFromModel(model Model) (*Trendline, error) {
	t := &Trendline{
		weights: model.Weights,
		scores:  model.Scores,
		trained: true,
	}
	return t, nil
}

// Fit uses the input series and fits the regression model tracking the
// residuals and scores against the training data.
func (t *Trendline) Fit(x, y []float64) error {
	td, err := timedataset.NewDataset(x, y)
	if err != nil {
		return fmt.Errorf("unable to create training dataset, %w", err)
	}

	weights, err := linreg.Fit(td)
	if err != nil {
		return fmt.Errorf("unable to fit trendline, %w", err)
	}
	t.weights = weights
	t.fitTrainingData = td

	scores, err := linreg.NewScores(weights, td)
	switch {
	case errors.Is(err, linreg.ErrZeroVariance):
		// r-squared is undefined on a constant series so no scores are
		// tracked for the fit
		t.scores = nil
	case err != nil:
		return fmt.Errorf("unable to score trendline fit, %w", err)
	default:
		t.scores = scores
	}

	t.residual = make([]float64, td.Len())
	for i := 0; i < td.Len(); i++ {
		t.residual[i] = td.Y[i] - weights.Predict(td.X[i])
	}

	t.trained = true
	t.fitResults, err = t.Predict(td.X)
	if err != nil {
		return fmt.Errorf("unable to get predicted values from training set, %w", err)
	}

	return nil
}

// Predict takes in any set of x samples and generates a forecast value per
// point.
func (t *Trendline) Predict(x []float64) (*Results, error) {
	if !t.trained {
		return nil, ErrUntrainedTrendline
	}

	xSeries := make([]float64, len(x))
	copy(xSeries, x)
	return &Results{
		X:        xSeries,
		Forecast: t.weights.PredictSeries(x),
	}, nil
}

// Residuals returns the difference between the fit line and the training data.
func (t *Trendline) Residuals() []float64 {
	res := make([]float64, len(t.residual))
	copy(res, t.residual)
	return res
}

// Intercept returns the intercept of the fit
func (t *Trendline) Intercept() float64 {
	return t.weights.Intercept
}

// Slope returns the slope of the fit
func (t *Trendline) Slope() float64 {
	return t.weights.Slope
}

// Scores returns the fit scores against the training data. This is nil when
// the training data has no variance in the observed values.
func (t *Trendline) Scores() *linreg.Scores {
	return t.scores
}

// ModelEq returns a string representation of the fit model represented as
// y ~ b + mx
func (t *Trendline) ModelEq() string {
	return t.weights.Eq()
}

// TrainingData returns the training data used to fit the current model
func (t *Trendline) TrainingData() *timedataset.Dataset {
	return t.fitTrainingData
}

// FitResults returns the predicted values over the training data
func (t *Trendline) FitResults() *Results {
	return t.fitResults
}

// Model generates a serializeable representation of the fit weights and
// scores. This can be used to initialize a new Trendline for immediate
// predictions skipping the training step.
func (t *Trendline) Model() (Model, error) {
	if !t.trained {
		return Model{}, ErrUntrainedTrendline
	}

	var trainEndX float64
	if t.fitTrainingData.Len() > 0 {
		trainEndX = t.fitTrainingData.X[t.fitTrainingData.Len()-1]
	}
	return Model{
		Weights:   t.weights,
		Scores:    t.scores,
		TrainEndX: trainEndX,
	}, nil
}

// PlotFit uses the Apache Echarts library to generate an html page showing
// the resulting fit along with the forecast over the input horizon.
func (t *Trendline) PlotFit(w io.Writer, horizon []float64) error {
	if !t.trained {
		return ErrUntrainedTrendline
	}

	horizonRes, err := t.Predict(horizon)
	if err != nil {
		return fmt.Errorf("unable to predict with horizon, %w", err)
	}

	page := components.NewPage()
	page.AddCharts(
		LineTrendline(t.TrainingData(), t.FitResults(), horizonRes),
		LineSeries(
			"Fit Residual",
			[]string{"Residual"},
			t.fitResults.X,
			[][]float64{t.Residuals()},
		),
	)
	return page.Render(w)
}
