package render

import (
	"fmt"

	"mundell-fleming/internal/model"
)

// Metric is one labelled headline number with its move from baseline.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta"`
}

func Metrics(res model.EquilibriumResult) []Metric {
	d := res.Deltas()
	return []Metric{
		{Label: "Output (Y)", Value: fmt.Sprintf("%.2f", res.YNew), Delta: fmt.Sprintf("%+.2f", d.Output)},
		{Label: "Interest Rate (r)", Value: fmt.Sprintf("%.2f%%", res.RNew), Delta: fmt.Sprintf("%+.2f%%", d.InterestRate)},
		{Label: "Exchange Rate (E)", Value: fmt.Sprintf("%.2f", res.ENew), Delta: fmt.Sprintf("%+.2f", d.ExchangeRate)},
	}
}
