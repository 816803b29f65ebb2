package render

import (
	"fmt"
	"strings"
)

// IntroText opens every surface that presents the calculator.
const IntroText = "This interactive app lets you explore the effects of tariffs and policy responses " +
	"on output, interest rates, and the exchange rate using a simplified Mundell-Fleming framework " +
	"(flexible exchange rates, high capital mobility)."

// Input labels shared by the page, the report and the terminal UI.
const (
	InputsHeading      = "Model Assumptions"
	LabelTariffShock   = "Tariff Shock (reduction in imports, % of GDP)"
	LabelADContraction = "Aggregate Demand Drag (% of GDP)"
	LabelFiscal        = "Fiscal Response (What Does Gov do with Tariff Revenue)"
	LabelMonetary      = "Monetary Policy Reaction"
	AboutHeading       = "Understanding the IS and LM Curves"
)

// Explainer describes one curve of the chart in plain language.
type Explainer struct {
	Title       string
	Lead        string
	PointsIntro string
	Points      []string
	Summary     string
}

var explainers = []Explainer{
	{
		Title: "IS Curve (Investment-Saving)",
		Lead: "The IS curve shows how output (Y) responds to changes in the interest rate (r), " +
			"assuming goods market equilibrium. It reflects how:",
		Points: []string{
			"Higher interest rates discourage business investment and consumer borrowing (especially for durables).",
			"Lower interest rates encourage more borrowing and spending.",
		},
		Summary: "A point along the curve represents an equilibrium between output and rates, " +
			"where Total Demand = Total Output.",
	},
	{
		Title: "LM Curve (Liquidity preference-Money supply)",
		Lead: "The LM curve shows how the interest rate (r) must adjust to maintain equilibrium " +
			"in the money market, given a level of output (Y).",
		PointsIntro: "Key idea:",
		Points: []string{
			"Higher output → more transactions → greater demand for money.",
			"If the money supply is fixed, this higher demand pushes up interest rates to ration money.",
			"So: More activity → higher interest rates to clear the market.",
		},
	},
}

// Explainers returns the IS and LM explanations in display order.
func Explainers() []Explainer {
	out := make([]Explainer, len(explainers))
	for i, e := range explainers {
		e.Points = append([]string(nil), e.Points...)
		out[i] = e
	}
	return out
}

// ExplainerMarkdown renders the explainers under a level-two heading.
func ExplainerMarkdown(rows []Explainer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n", AboutHeading)
	for _, e := range rows {
		fmt.Fprintf(&b, "\n### %s\n\n%s\n", e.Title, e.Lead)
		if e.PointsIntro != "" {
			fmt.Fprintf(&b, "\n**%s**\n", e.PointsIntro)
		}
		b.WriteString("\n")
		for _, p := range e.Points {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		if e.Summary != "" {
			fmt.Fprintf(&b, "\n%s\n", e.Summary)
		}
	}
	return b.String()
}
