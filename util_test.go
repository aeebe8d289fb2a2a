package trendline

import (
	"bytes"
	"testing"

	"github.com/aouyang1/go-trendline/timedataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineSeries(t *testing.T) {
	line := LineSeries(
		"Fit Residual",
		[]string{"Residual"},
		[]float64{0, 1, 2},
		[][]float64{{0.1, -0.2, 0.1}},
	)
	require.NotNil(t, line)

	var buf bytes.Buffer
	require.Nil(t, line.Render(&buf))
	assert.Contains(t, buf.String(), "Fit Residual")
}

func TestLineTrendline(t *testing.T) {
	ds, err := timedataset.NewDataset([]float64{0, 1, 2}, []float64{1, 3, 5})
	require.Nil(t, err)

	fitRes := &Results{X: []float64{0, 1, 2}, Forecast: []float64{1, 3, 5}}
	forecastRes := &Results{X: []float64{3, 4}, Forecast: []float64{7, 9}}

	line := LineTrendline(ds, fitRes, forecastRes)
	require.NotNil(t, line)

	var buf bytes.Buffer
	require.Nil(t, line.Render(&buf))
	assert.Contains(t, buf.String(), "Trendline Fit")
}
