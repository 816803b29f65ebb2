package render

import (
	"strings"
	"testing"
	"time"

	"mundell-fleming/internal/analysis"
	"mundell-fleming/internal/curve"
	"mundell-fleming/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultEval() (model.PolicyInputs, model.EquilibriumResult, []curve.Point) {
	in := model.DefaultInputs()
	res := model.Evaluate(in)
	return in, res, curve.Sample(res)
}

func TestMetrics(t *testing.T) {
	_, res, _ := defaultEval()
	m := Metrics(res)
	require.Len(t, m, 3)
	assert.Equal(t, Metric{Label: "Output (Y)", Value: "100.16", Delta: "+0.16"}, m[0])
	assert.Equal(t, Metric{Label: "Interest Rate (r)", Value: "4.04%", Delta: "+0.04%"}, m[1])
	assert.Equal(t, Metric{Label: "Exchange Rate (E)", Value: "1.38", Delta: "+0.38"}, m[2])
}

func TestMetrics_NegativeDeltas(t *testing.T) {
	in := model.PolicyInputs{ADContraction: 5, Fiscal: model.FiscalDebtPaydown, Monetary: model.MonetaryEase}
	m := Metrics(model.Evaluate(in))
	for _, metric := range m {
		assert.True(t, strings.HasPrefix(metric.Delta, "-"), "%+v", metric)
	}
}

func TestSVGChart(t *testing.T) {
	_, res, points := defaultEval()
	svg := SVGChart(points, res, ChartOptions{})

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
	assert.Equal(t, 2, strings.Count(svg, "<polyline"))
	assert.Equal(t, 1, strings.Count(svg, `class="equilibrium"`))
	assert.Contains(t, svg, ChartTitle)
	assert.Contains(t, svg, ChartXLabel)
	assert.Contains(t, svg, ChartYLabel)
	assert.Contains(t, svg, `width="720"`)

	// Each polyline carries one coordinate pair per sample.
	for _, line := range strings.Split(svg, "\n") {
		if strings.HasPrefix(line, "<polyline") {
			start := strings.Index(line, `points="`) + len(`points="`)
			end := strings.LastIndex(line, `"`)
			assert.Len(t, strings.Fields(line[start:end]), len(points))
		}
	}
}

func TestSVGChart_SinglePoint(t *testing.T) {
	_, res, _ := defaultEval()
	points := []curve.Point{{Y: res.YNew, IS: res.RNew, LM: res.RNew}}

	svg := SVGChart(points, res, ChartOptions{})
	assert.NotContains(t, svg, "NaN")
	assert.NotContains(t, svg, "Inf")
	assert.Equal(t, 2, strings.Count(svg, "<polyline"))
}

func TestASCIIChart(t *testing.T) {
	_, res, points := defaultEval()
	out := ASCIIChart(points, res, 60, 20)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title + grid rows + axis + x labels + legend
	assert.Len(t, lines, 1+20+3)
	assert.Equal(t, ChartTitle, lines[0])

	grid := strings.Join(lines[1:21], "\n")
	assert.Equal(t, 1, strings.Count(grid, string(glyphMarker)))
	assert.Contains(t, grid, string(glyphIS))
	assert.Contains(t, grid, string(glyphLM))

	assert.Empty(t, ASCIIChart(nil, res, 60, 20))
}

func TestTables(t *testing.T) {
	in, res, _ := defaultEval()

	shocks := ShockTable(analysis.ShockBreakdown(in, res))
	assert.Contains(t, shocks, "Tariff Shock (NX Boost)")
	assert.Contains(t, shocks, "1.20")
	assert.Contains(t, shocks, "-1.00")

	coeffs := CoefficientTable(analysis.CoefficientGlossary())
	assert.Contains(t, coeffs, "0.8 (IS effect on → Y)")
	assert.Contains(t, coeffs, "-0.5 (∆r → ∆E)")

	metrics := MetricsTable(Metrics(res))
	assert.Contains(t, metrics, "100.16 (+0.16)")
}

func TestMetricsLine(t *testing.T) {
	_, res, _ := defaultEval()
	assert.Equal(t,
		"Output (Y)=100.16 (+0.16)  Interest Rate (r)=4.04% (+0.04%)  Exchange Rate (E)=1.38 (+0.38)",
		MetricsLine(Metrics(res)))
}

func TestMarkdown(t *testing.T) {
	in, res, _ := defaultEval()
	md := Markdown(in, res)

	for _, want := range []string{
		"# " + ReportTitle + "\n\n" + IntroText,
		"## Model Assumptions",
		"- Tariff Shock (reduction in imports, % of GDP): 2.0",
		"- Aggregate Demand Drag (% of GDP): 1.0",
		"- Fiscal Response (What Does Gov do with Tariff Revenue): " + in.Fiscal.Label(),
		"- Monetary Policy Reaction: " + in.Monetary.Label(),
		"| Output (Y) | 100.16 | +0.16 |",
		"## Narrative",
		analysis.NarrativeText(in, res),
		"| AD Contraction | -1.00 |",
		"| 0.3 (NX → ∆E) | Effect of net export boost on exchange rate |",
		Caption,
		"## Understanding the IS and LM Curves",
		"### IS Curve (Investment-Saving)",
		"- Lower interest rates encourage more borrowing and spending.",
		"A point along the curve represents an equilibrium between output and rates, where Total Demand = Total Output.",
		"### LM Curve (Liquidity preference-Money supply)",
		"**Key idea:**",
		"- So: More activity → higher interest rates to clear the market.",
	} {
		assert.Contains(t, md, want)
	}
}

func TestExplainers_ReturnsCopy(t *testing.T) {
	e := Explainers()
	require.Len(t, e, 2)
	e[0].Points[0] = ""
	assert.NotEmpty(t, Explainers()[0].Points[0])
}

func TestTerminal(t *testing.T) {
	in, res, _ := defaultEval()
	out, err := Terminal(Markdown(in, res), 100)
	require.NoError(t, err)
	assert.Contains(t, out, "Narrative")
}

func TestChartCache(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewChartCache(time.Minute, 2)
	c.now = func() time.Time { return now }

	key := CacheKey(model.DefaultInputs(), DefaultChartOptions())
	_, ok := c.Get(key)
	assert.False(t, ok)

	c.Set(key, "<svg/>")
	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, "<svg/>", got)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get(key)
	assert.False(t, ok, "entry should expire")

	c.Set("a", "1")
	c.Set("b", "2")
	assert.LessOrEqual(t, c.Len(), 2)
}

func TestChartCache_Nil(t *testing.T) {
	var c *ChartCache
	c.Set("k", "v")
	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCacheKey(t *testing.T) {
	a := model.DefaultInputs()
	b := a
	b.Monetary = model.MonetaryEase

	opts := DefaultChartOptions()
	assert.Equal(t, CacheKey(a, opts), CacheKey(a, opts))
	assert.NotEqual(t, CacheKey(a, opts), CacheKey(b, opts))
	assert.NotEqual(t, CacheKey(a, opts), CacheKey(a, ChartOptions{Width: 300, Height: 200}))
	assert.Len(t, CacheKey(a, opts), 64)
}

func TestRankAndComparisonTables(t *testing.T) {
	mixes := analysis.RankPolicyMixes(2, 1)
	out := RankTable(mixes)
	assert.Contains(t, out, "Tax Cut (Mildly Expansionary)")
	assert.Contains(t, out, "101.06")

	rows, err := analysis.Compare(model.DefaultInputs(), []analysis.Variation{{Name: "ease"}})
	require.NoError(t, err)
	out = ComparisonTable(rows)
	assert.Contains(t, out, "base")
	assert.Contains(t, out, "+0.16")
}

func TestCoefficientMarkdown(t *testing.T) {
	md := CoefficientMarkdown(analysis.CoefficientGlossary())
	assert.True(t, strings.HasPrefix(md, "| Coefficient | Meaning |\n|---|---|\n"))
	assert.Equal(t, 8, strings.Count(md, "\n"))
}
