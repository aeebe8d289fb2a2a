package trendline

type Results struct {
	X        []float64 `json:"x"`
	Forecast []float64 `json:"forecast"`
}
