package main

import (
	"fmt"
	"os"

	trendline "github.com/aouyang1/go-trendline"
	"github.com/aouyang1/go-trendline/timedataset"
)

func main() {
	// historical series observed at periods 0, 1, 2, ...
	y := []float64{2.0, 3.0, 5.0, 7.0, 11.0}
	x := timedataset.GenerateX(len(y), 1.0)

	td, err := timedataset.NewDataset(x, y)
	if err != nil {
		panic(err)
	}
	summary, err := td.Summary()
	if err != nil {
		panic(err)
	}
	fmt.Printf("Observed: n=%d mean=%.4f median=%.4f stddev=%.4f min=%.4f max=%.4f\n",
		summary.N, summary.Mean, summary.Median, summary.StdDev, summary.Min, summary.Max)

	t := trendline.New()
	if err := t.Fit(x, y); err != nil {
		panic(err)
	}

	fmt.Printf("Fitted model: %s\n", t.ModelEq())

	m, err := t.Model()
	if err != nil {
		panic(err)
	}
	if err := m.TablePrint(os.Stdout); err != nil {
		panic(err)
	}

	// forecast the next three periods
	horizon := []float64{5, 6, 7}
	res, err := t.Predict(horizon)
	if err != nil {
		panic(err)
	}
	for i := 0; i < len(res.X); i++ {
		fmt.Printf("Forecast for x = %.0f: %.4f\n", res.X[i], res.Forecast[i])
	}

	file, err := os.Create("trendline.html")
	if err != nil {
		panic(err)
	}
	defer file.Close()
	if err := t.PlotFit(file, horizon); err != nil {
		panic(err)
	}
}
