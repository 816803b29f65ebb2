package render

import (
	"fmt"
	"math"
	"strings"

	"mundell-fleming/internal/curve"
	"mundell-fleming/internal/model"
)

// Glyphs used by ASCIIChart.
const (
	glyphIS     = 'I'
	glyphLM     = 'L'
	glyphBoth   = 'X'
	glyphMarker = '*'
)

// ASCIIChart plots the curves on a width x height character grid with the
// interest rate on the vertical axis.
func ASCIIChart(points []curve.Point, res model.EquilibriumResult, width, height int) string {
	if width < 10 {
		width = 10
	}
	if height < 5 {
		height = 5
	}
	if len(points) == 0 {
		return ""
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	xMin, xMax := points[0].Y, points[len(points)-1].Y
	yMin, yMax := rateRange(points, res)
	col := func(v float64) int {
		return clampIndex(int(math.Round((v-xMin)/(xMax-xMin)*float64(width-1))), width)
	}
	row := func(v float64) int {
		return clampIndex(int(math.Round((yMax-v)/(yMax-yMin)*float64(height-1))), height)
	}

	plot := func(r, c int, g rune) {
		switch cur := grid[r][c]; {
		case cur == ' ' || cur == g:
			grid[r][c] = g
		default:
			grid[r][c] = glyphBoth
		}
	}
	for _, p := range points {
		c := col(p.Y)
		plot(row(p.IS), c, glyphIS)
		plot(row(p.LM), c, glyphLM)
	}
	grid[row(res.RNew)][col(res.YNew)] = glyphMarker

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", ChartTitle)
	for i, line := range grid {
		label := "        "
		switch i {
		case 0:
			label = fmt.Sprintf("%7.2f ", yMax)
		case height - 1:
			label = fmt.Sprintf("%7.2f ", yMin)
		}
		fmt.Fprintf(&b, "%s|%s\n", label, string(line))
	}
	fmt.Fprintf(&b, "        +%s\n", strings.Repeat("-", width))
	fmt.Fprintf(&b, "        %-*.0f%*.0f\n", width/2, xMin, width-width/2+1, xMax)
	fmt.Fprintf(&b, "        x: %s  y: %s  I=IS L=LM X=both *=equilibrium\n", ChartXLabel, ChartYLabel)
	return b.String()
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
