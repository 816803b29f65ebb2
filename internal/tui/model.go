// Package tui is the interactive terminal calculator: two sliders and two
// selectors drive a live re-evaluation of the model.
package tui

import (
	"fmt"
	"math"
	"strings"

	"mundell-fleming/internal/analysis"
	"mundell-fleming/internal/curve"
	"mundell-fleming/internal/model"
	"mundell-fleming/internal/render"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	smallStep = 0.1
	largeStep = 1.0

	sliderWidth  = 25
	chartWidth   = 60
	chartHeight  = 20
	defaultWidth = 100
)

type control int

const (
	controlTariff control = iota
	controlAD
	controlFiscal
	controlMonetary
	controlCount
)

var controlLabels = [controlCount]string{
	controlTariff:   render.LabelTariffShock,
	controlAD:       render.LabelADContraction,
	controlFiscal:   render.LabelFiscal,
	controlMonetary: render.LabelMonetary,
}

// Model is the bubbletea model. Every input change re-evaluates synchronously.
type Model struct {
	inputs model.PolicyInputs
	result model.EquilibriumResult
	focus  control

	keys  keyMap
	help  help.Model
	width int
}

// New starts the calculator at in, clamped into the slider range.
func New(in model.PolicyInputs) Model {
	if !in.Fiscal.Valid() {
		in.Fiscal = model.FiscalNeutral
	}
	if !in.Monetary.Valid() {
		in.Monetary = model.MonetaryNeutral
	}
	m := Model{
		keys:  defaultKeyMap(),
		help:  help.New(),
		width: defaultWidth,
	}
	m.set(in.Clamp())
	return m
}

func (m Model) Inputs() model.PolicyInputs {
	return m.inputs
}

func (m Model) Result() model.EquilibriumResult {
	return m.result
}

func (m *Model) set(in model.PolicyInputs) {
	m.inputs = in
	m.result = model.Evaluate(in)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Reset):
			m.set(model.DefaultInputs())
		case key.Matches(msg, m.keys.Next):
			m.focus = (m.focus + 1) % controlCount
		case key.Matches(msg, m.keys.Prev):
			m.focus = (m.focus + controlCount - 1) % controlCount
		case key.Matches(msg, m.keys.IncLarge):
			m.adjust(largeStep, 1)
		case key.Matches(msg, m.keys.DecLarge):
			m.adjust(-largeStep, -1)
		case key.Matches(msg, m.keys.Inc):
			m.adjust(smallStep, 1)
		case key.Matches(msg, m.keys.Dec):
			m.adjust(-smallStep, -1)
		}
	}
	return m, nil
}

// adjust moves the focused slider by step or cycles the focused selector by dir.
func (m *Model) adjust(step float64, dir int) {
	in := m.inputs
	switch m.focus {
	case controlTariff:
		in.TariffShock = nudge(in.TariffShock, step)
	case controlAD:
		in.ADContraction = nudge(in.ADContraction, step)
	case controlFiscal:
		in.Fiscal = cycle(model.FiscalResponses(), in.Fiscal, dir)
	case controlMonetary:
		in.Monetary = cycle(model.MonetaryPolicies(), in.Monetary, dir)
	}
	m.set(in)
}

// nudge steps a slider value and snaps it to the 0.1 grid inside the range.
func nudge(v, step float64) float64 {
	v = math.Round((v+step)*10) / 10
	return math.Max(model.MinShock, math.Min(model.MaxShock, v))
}

func cycle[T comparable](options []T, cur T, dir int) T {
	idx := 0
	for i, o := range options {
		if o == cur {
			idx = i
			break
		}
	}
	n := len(options)
	return options[((idx+dir)%n+n)%n]
}

func (m Model) View() string {
	var b strings.Builder
	textWidth := max(40, m.width-4)
	text := lipgloss.NewStyle().Width(textWidth)

	b.WriteString(titleStyle.Render(render.ReportTitle))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Inherit(text).Render(render.IntroText))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(render.InputsHeading))
	b.WriteString("\n")
	b.WriteString(m.controlsView())
	b.WriteString("\n")

	b.WriteString(render.MetricsTable(render.Metrics(m.result)))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Narrative"))
	b.WriteString("\n")
	b.WriteString(text.Render(analysis.NarrativeText(m.inputs, m.result)))
	b.WriteString("\n")

	chart := panelStyle.Render(render.ASCIIChart(curve.Sample(m.result), m.result, chartWidth, chartHeight))
	shocks := render.ShockTable(analysis.ShockBreakdown(m.inputs, m.result))
	if m.width >= lipgloss.Width(chart)+lipgloss.Width(shocks)+2 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chart, "  ", shocks))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, chart, shocks))
	}
	b.WriteString("\n")

	b.WriteString(mutedStyle.Render(render.Caption))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	if m.help.ShowAll {
		b.WriteString("\n")
		b.WriteString(explainersView(text))
	}
	return b.String()
}

// explainersView lists the IS and LM explanations shown with the full help.
func explainersView(text lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(render.AboutHeading))
	b.WriteString("\n")
	for _, e := range render.Explainers() {
		b.WriteString(focusedStyle.Render(e.Title))
		b.WriteString("\n")
		b.WriteString(text.Render(e.Lead))
		b.WriteString("\n")
		if e.PointsIntro != "" {
			b.WriteString(e.PointsIntro)
			b.WriteString("\n")
		}
		for _, p := range e.Points {
			b.WriteString(text.Render("• " + p))
			b.WriteString("\n")
		}
		if e.Summary != "" {
			b.WriteString(text.Render(e.Summary))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) controlsView() string {
	values := [controlCount]string{
		controlTariff:   slider(m.inputs.TariffShock),
		controlAD:       slider(m.inputs.ADContraction),
		controlFiscal:   selector(m.inputs.Fiscal.Label()),
		controlMonetary: selector(m.inputs.Monetary.Label()),
	}

	var b strings.Builder
	for c := control(0); c < controlCount; c++ {
		cursor := "  "
		label := labelStyle.Render(controlLabels[c])
		if c == m.focus {
			cursor = focusedStyle.Render("› ")
			label = focusedStyle.Inherit(labelStyle).Render(controlLabels[c])
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, label, values[c])
	}
	return b.String()
}

func slider(v float64) string {
	filled := int(math.Round(v / model.MaxShock * sliderWidth))
	return fmt.Sprintf("[%s%s] %.1f",
		strings.Repeat("█", filled),
		strings.Repeat("░", sliderWidth-filled),
		v,
	)
}

func selector(label string) string {
	return fmt.Sprintf("‹ %s ›", label)
}

// Run starts the full-screen calculator and blocks until the user quits.
func Run(in model.PolicyInputs, opts ...tea.ProgramOption) (model.PolicyInputs, error) {
	final, err := tea.NewProgram(New(in), opts...).Run()
	if err != nil {
		return in, fmt.Errorf("run tui: %w", err)
	}
	return final.(Model).Inputs(), nil
}
