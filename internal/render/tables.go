package render

import (
	"fmt"
	"strings"

	"mundell-fleming/internal/analysis"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// ShockTable renders the "Underlying Shocks" breakdown.
func ShockTable(rows []analysis.ShockComponent) string {
	t := newTable("Component", "Value (% of GDP or Rate Shift)")
	for _, r := range rows {
		t.Row(r.Component, fmt.Sprintf("%.2f", r.Value))
	}
	return t.String()
}

// CoefficientTable renders the coefficient glossary.
func CoefficientTable(rows []analysis.Coefficient) string {
	t := newTable("Coefficient", "Meaning")
	for _, r := range rows {
		t.Row(CoefficientLabel(r), r.Meaning)
	}
	return t.String()
}

// CoefficientLabel formats a glossary row as "0.8 (IS effect on → Y)".
func CoefficientLabel(c analysis.Coefficient) string {
	return fmt.Sprintf("%g (%s)", c.Value, c.Label)
}

// MetricsTable lays the three headline metrics out side by side.
func MetricsTable(metrics []Metric) string {
	headers := make([]string, len(metrics))
	values := make([]string, len(metrics))
	for i, m := range metrics {
		headers[i] = m.Label
		values[i] = fmt.Sprintf("%s (%s)", m.Value, m.Delta)
	}
	return newTable(headers...).Row(values...).String()
}

// MetricsLine is the single-line plain text form used in logs and compact output.
func MetricsLine(metrics []Metric) string {
	parts := make([]string, len(metrics))
	for i, m := range metrics {
		parts[i] = fmt.Sprintf("%s=%s (%s)", m.Label, m.Value, m.Delta)
	}
	return strings.Join(parts, "  ")
}

// RankTable renders policy mixes in the order given.
func RankTable(mixes []analysis.PolicyMix) string {
	t := newTable("#", "Fiscal Response", "Monetary Policy", "Y", "r", "E")
	for i, m := range mixes {
		t.Row(
			fmt.Sprintf("%d", i+1),
			m.Inputs.Fiscal.Label(),
			m.Inputs.Monetary.Label(),
			fmt.Sprintf("%.2f", m.Result.YNew),
			fmt.Sprintf("%.2f%%", m.Result.RNew),
			fmt.Sprintf("%.2f", m.Result.ENew),
		)
	}
	return t.String()
}

// ComparisonTable renders one row per compared scenario with signed deltas.
func ComparisonTable(rows []analysis.Comparison) string {
	t := newTable("Scenario", "Y", "∆Y", "r", "∆r", "E", "∆E")
	for _, c := range rows {
		t.Row(
			c.Name,
			fmt.Sprintf("%.2f", c.Result.YNew),
			fmt.Sprintf("%+.2f", c.Deltas.Output),
			fmt.Sprintf("%.2f%%", c.Result.RNew),
			fmt.Sprintf("%+.2f", c.Deltas.InterestRate),
			fmt.Sprintf("%.2f", c.Result.ENew),
			fmt.Sprintf("%+.2f", c.Deltas.ExchangeRate),
		)
	}
	return t.String()
}
