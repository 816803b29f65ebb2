package render

import (
	"fmt"
	"math"
	"strings"

	"mundell-fleming/internal/curve"
	"mundell-fleming/internal/model"
)

const (
	ChartTitle  = "IS-LM Diagram (Flexible Exchange Rates)"
	ChartXLabel = "Output (Y)"
	ChartYLabel = "Interest Rate (r)"
)

// ChartOptions sizes the SVG canvas in pixels.
type ChartOptions struct {
	Width  int
	Height int
}

func DefaultChartOptions() ChartOptions {
	return ChartOptions{Width: 720, Height: 500}
}

type frame struct {
	left, right, top, bottom float64
	xMin, xMax, yMin, yMax   float64
}

func (f frame) x(v float64) float64 {
	return f.left + (v-f.xMin)/(f.xMax-f.xMin)*(f.right-f.left)
}

func (f frame) y(v float64) float64 {
	return f.bottom - (v-f.yMin)/(f.yMax-f.yMin)*(f.bottom-f.top)
}

// rateRange is the padded [min, max] interest rate across both curves and the marker.
func rateRange(points []curve.Point, res model.EquilibriumResult) (float64, float64) {
	lo, hi := res.RNew, res.RNew
	for _, p := range points {
		lo = math.Min(lo, math.Min(p.IS, p.LM))
		hi = math.Max(hi, math.Max(p.IS, p.LM))
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 1
	}
	return lo - pad, hi + pad
}

// SVGChart draws the IS and LM curves and the equilibrium marker.
func SVGChart(points []curve.Point, res model.EquilibriumResult, opts ChartOptions) string {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts = DefaultChartOptions()
	}
	w, h := float64(opts.Width), float64(opts.Height)

	xMin, xMax := 0.0, 1.0
	if len(points) > 0 {
		xMin, xMax = points[0].Y, points[len(points)-1].Y
	}
	// A single sample has no span; widen it so the frame never divides by zero.
	if xMax == xMin {
		xMin, xMax = xMin-1, xMax+1
	}
	yMin, yMax := rateRange(points, res)
	f := frame{left: 60, right: w - 40, top: 40, bottom: h - 50, xMin: xMin, xMax: xMax, yMin: yMin, yMax: yMax}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif" font-size="12">`, opts.Width, opts.Height, opts.Width, opts.Height)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="white"/>`+"\n", opts.Width, opts.Height)
	fmt.Fprintf(&b, `<text x="%.1f" y="24" text-anchor="middle" font-size="16">%s</text>`+"\n", w/2, ChartTitle)

	// axes
	fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#444"/>`+"\n", f.left, f.bottom, f.right, f.bottom)
	fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#444"/>`+"\n", f.left, f.top, f.left, f.bottom)
	for i := 0; i <= 5; i++ {
		xv := xMin + float64(i)*(xMax-xMin)/5
		yv := yMin + float64(i)*(yMax-yMin)/5
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle">%.0f</text>`+"\n", f.x(xv), f.bottom+16, xv)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="end">%.2f</text>`+"\n", f.left-6, f.y(yv)+4, yv)
	}
	fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle">%s</text>`+"\n", (f.left+f.right)/2, h-12, ChartXLabel)
	fmt.Fprintf(&b, `<text x="16" y="%.1f" text-anchor="middle" transform="rotate(-90 16 %.1f)">%s</text>`+"\n", (f.top+f.bottom)/2, (f.top+f.bottom)/2, ChartYLabel)

	writePolyline(&b, "is-curve", "#1f77b4", points, f, func(p curve.Point) float64 { return p.IS })
	writePolyline(&b, "lm-curve", "#ff7f0e", points, f, func(p curve.Point) float64 { return p.LM })
	fmt.Fprintf(&b, `<circle class="equilibrium" cx="%.2f" cy="%.2f" r="5" fill="red"/>`+"\n", f.x(res.YNew), f.y(res.RNew))

	// legend
	legend := []struct{ name, color string }{{"IS Curve", "#1f77b4"}, {"LM Curve", "#ff7f0e"}, {"Equilibrium", "red"}}
	for i, l := range legend {
		ly := f.top + 10 + float64(i)*16
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="10" height="10" fill="%s"/>`+"\n", f.left+10, ly-9, l.color)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f">%s</text>`+"\n", f.left+26, ly, l.name)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func writePolyline(b *strings.Builder, class, color string, points []curve.Point, f frame, rate func(curve.Point) float64) {
	coords := make([]string, len(points))
	for i, p := range points {
		coords[i] = fmt.Sprintf("%.2f,%.2f", f.x(p.Y), f.y(rate(p)))
	}
	fmt.Fprintf(b, `<polyline class="%s" fill="none" stroke="%s" stroke-width="3" points="%s"/>`+"\n", class, color, strings.Join(coords, " "))
}
