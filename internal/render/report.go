package render

import (
	"fmt"
	"strings"

	"mundell-fleming/internal/analysis"
	"mundell-fleming/internal/model"

	"github.com/charmbracelet/glamour"
)

const (
	ReportTitle = "Mundell-Fleming Tariff Simulator"
	Caption     = "Note: This is a simplified linearized Mundell-Fleming simulation with arbitrary scale for illustrative purposes."
)

// Markdown builds the full report for one evaluation.
func Markdown(in model.PolicyInputs, res model.EquilibriumResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", ReportTitle, IntroText)

	fmt.Fprintf(&b, "## %s\n\n", InputsHeading)
	fmt.Fprintf(&b, "- %s: %.1f\n", LabelTariffShock, in.TariffShock)
	fmt.Fprintf(&b, "- %s: %.1f\n", LabelADContraction, in.ADContraction)
	fmt.Fprintf(&b, "- %s: %s\n", LabelFiscal, in.Fiscal.Label())
	fmt.Fprintf(&b, "- %s: %s\n\n", LabelMonetary, in.Monetary.Label())

	b.WriteString("## Results\n\n")
	b.WriteString("| Metric | Value | Change |\n|---|---|---|\n")
	for _, m := range Metrics(res) {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", m.Label, m.Value, m.Delta)
	}

	b.WriteString("\n## Narrative\n\n")
	b.WriteString(analysis.NarrativeText(in, res))
	b.WriteString("\n\n## Underlying Shocks\n\n")
	b.WriteString("| Component | Value (% of GDP or Rate Shift) |\n|---|---|\n")
	for _, s := range analysis.ShockBreakdown(in, res) {
		fmt.Fprintf(&b, "| %s | %.2f |\n", s.Component, s.Value)
	}

	b.WriteString("\n## Model Coefficients\n\n")
	b.WriteString(CoefficientMarkdown(analysis.CoefficientGlossary()))
	b.WriteString("\n")
	b.WriteString(ExplainerMarkdown(Explainers()))

	fmt.Fprintf(&b, "\n_%s_\n", Caption)
	return b.String()
}

// CoefficientMarkdown renders the glossary as a markdown table.
func CoefficientMarkdown(rows []analysis.Coefficient) string {
	var b strings.Builder
	b.WriteString("| Coefficient | Meaning |\n|---|---|\n")
	for _, c := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", CoefficientLabel(c), c.Meaning)
	}
	return b.String()
}

// Terminal renders markdown for a terminal of the given width.
func Terminal(markdown string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
