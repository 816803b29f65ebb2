// Package web holds the server-rendered calculator page.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"mundell-fleming/internal/analysis"
	"mundell-fleming/internal/model"
	"mundell-fleming/internal/render"
)

//go:embed templates/*.html
var templateFS embed.FS

var page = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"fmt2":   func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"coeff":  render.CoefficientLabel,
	"slider": func(v float64) string { return fmt.Sprintf("%.1f", v) },
}).ParseFS(templateFS, "templates/index.html"))

// Option is one entry of a select control.
type Option struct {
	ID       string
	Label    string
	Selected bool
}

// Labels names the four input controls.
type Labels struct {
	Heading       string
	TariffShock   string
	ADContraction string
	Fiscal        string
	Monetary      string
}

// PageData is everything the calculator page renders.
type PageData struct {
	Title        string
	Intro        string
	Caption      string
	Labels       Labels
	Inputs       model.PolicyInputs
	Fiscal       []Option
	Monetary     []Option
	Metrics      []render.Metric
	Narrative    string
	Chart        template.HTML
	Shocks       []analysis.ShockComponent
	Coefficients []analysis.Coefficient
	AboutHeading string
	Explainers   []render.Explainer
	Min, Max     float64
}

// NewPageData evaluates in and assembles the page. chartSVG must be markup
// produced by render.SVGChart.
func NewPageData(in model.PolicyInputs, res model.EquilibriumResult, chartSVG string) PageData {
	d := PageData{
		Title:   render.ReportTitle,
		Intro:   render.IntroText,
		Caption: render.Caption,
		Labels: Labels{
			Heading:       render.InputsHeading,
			TariffShock:   render.LabelTariffShock,
			ADContraction: render.LabelADContraction,
			Fiscal:        render.LabelFiscal,
			Monetary:      render.LabelMonetary,
		},
		Inputs:       in,
		Metrics:      render.Metrics(res),
		Narrative:    analysis.NarrativeText(in, res),
		Chart:        template.HTML(chartSVG),
		Shocks:       analysis.ShockBreakdown(in, res),
		Coefficients: analysis.CoefficientGlossary(),
		AboutHeading: render.AboutHeading,
		Explainers:   render.Explainers(),
		Min:          model.MinShock,
		Max:          model.MaxShock,
	}
	for _, f := range model.FiscalResponses() {
		d.Fiscal = append(d.Fiscal, Option{ID: string(f), Label: f.Label(), Selected: f == in.Fiscal})
	}
	for _, m := range model.MonetaryPolicies() {
		d.Monetary = append(d.Monetary, Option{ID: string(m), Label: m.Label(), Selected: m == in.Monetary})
	}
	return d
}

// Render writes the calculator page.
func Render(w io.Writer, d PageData) error {
	return page.Execute(w, d)
}
