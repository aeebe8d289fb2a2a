package trendline

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aouyang1/go-trendline/linreg"
)

// Model represents a serializeable format of a trendline storing the fit
// weights and scores
type Model struct {
	Weights   linreg.Model   `json:"weights"`
	Scores    *linreg.Scores `json:"scores"`
	TrainEndX float64        `json:"train_end_x"`
}

// TablePrint writes a human readable representation of the model to the
// input writer
func (m Model) TablePrint(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Trendline:\n  Training End X: %.3f\n", m.TrainEndX); err != nil {
		return err
	}

	if m.Scores != nil {
		if _, err := fmt.Fprintf(w, "  Scores:\n    MAPE: %.3f    MSE: %.3f    R2: %.3f\n",
			m.Scores.MAPE,
			m.Scores.MSE,
			m.Scores.R2,
		); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "  Weights:\n"); err != nil {
		return err
	}
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "    Type\tValue\t\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tbl, "    Intercept\t%.3f\t\n", m.Weights.Intercept); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tbl, "    Slope\t%.3f\t\n", m.Weights.Slope); err != nil {
		return err
	}
	return tbl.Flush()
}
