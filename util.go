package trendline

import (
	"github.com/aouyang1/go-trendline/timedataset"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineSeries generates an echart multi-line chart for some arbitrary x/value
// combination. The input y is a slice of series that must have the same
// length as the input x slice.
func LineSeries(title string, seriesName []string, x []float64, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineData := make([][]opts.LineData, len(y))
	for i := 0; i < len(y); i++ {
		lineData[i] = make([]opts.LineData, 0, len(y[i]))
		for j := 0; j < len(y[i]); j++ {
			lineData[i] = append(lineData[i], opts.LineData{Value: y[i][j]})
		}
	}

	line = line.SetXAxis(x)
	for i, series := range seriesName {
		line = line.AddSeries(series, lineData[i])
	}

	return line
}

// LineTrendline generates an echart line chart for a given fit result
// plotting the observed values along with the fitted and forecasted values.
func LineTrendline(trainingData *timedataset.Dataset, fitRes, forecastRes *Results) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Trendline Fit",
			},
		),
	)

	x := make([]float64, 0, len(fitRes.X)+len(forecastRes.X))
	x = append(x, fitRes.X...)
	x = append(x, forecastRes.X...)

	lineDataActual := make([]opts.LineData, 0, len(trainingData.X))
	lineDataFit := make([]opts.LineData, 0, len(x))

	for i := 0; i < len(trainingData.X); i++ {
		lineDataActual = append(lineDataActual, opts.LineData{Value: trainingData.Y[i]})
	}
	for i := 0; i < len(fitRes.Forecast); i++ {
		lineDataFit = append(lineDataFit, opts.LineData{Value: fitRes.Forecast[i]})
	}
	for i := 0; i < len(forecastRes.Forecast); i++ {
		lineDataFit = append(lineDataFit, opts.LineData{Value: forecastRes.Forecast[i]})
	}

	line.SetXAxis(x).
		AddSeries("Actual", lineDataActual).
		AddSeries("Fit", lineDataFit)
	return line
}
