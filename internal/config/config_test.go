package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mundell-fleming/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const presetYAML = `scenario:
  name: Retaliation
  description: Trading partners retaliate and the central bank eases.
  tariff_shock: 3.0
  ad_contraction: 2.5
  fiscal_response: tax_cut
  monetary_policy: Eases Rates
`

func TestLoad_ScenarioFileWithOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "presets/retaliation.yaml", presetYAML)
	cfgPath := writeFile(t, dir, "run.yaml", `scenario_file: presets/retaliation.yaml
scenario:
  ad_contraction: 0
  monetary_policy: tighten
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "Retaliation", cfg.Scenario.Name)

	in, err := cfg.Scenario.Inputs()
	require.NoError(t, err)
	assert.Equal(t, model.PolicyInputs{
		TariffShock:   3.0,
		ADContraction: 0,
		Fiscal:        model.FiscalTaxCut,
		Monetary:      model.MonetaryTighten,
	}, in)
}

func TestLoad_DefaultsForMissingFields(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "run.yaml", "scenario:\n  name: only fiscal\n  fiscal_response: debt_paydown\n")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	in, err := cfg.Scenario.Inputs()
	require.NoError(t, err)

	want := model.DefaultInputs()
	want.Fiscal = model.FiscalDebtPaydown
	assert.Equal(t, want, in)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "out of range", body: "scenario:\n  tariff_shock: 6\n"},
		{name: "unknown fiscal", body: "scenario:\n  fiscal_response: helicopter\n"},
		{name: "bad yaml", body: "scenario: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "run.yaml", tt.body)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingScenarioFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "run.yaml", "scenario_file: nowhere.yaml\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadScenarioFile_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: "scenario:\n  tariff_shock: 1\n"},
		{name: "shock above range", body: "scenario:\n  name: x\n  tariff_shock: 5.5\n"},
		{name: "unknown field", body: "scenario:\n  name: x\n  tarif_shock: 1\n"},
		{name: "unknown monetary", body: "scenario:\n  name: x\n  monetary_policy: qe\n"},
		{name: "empty document", body: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "preset.yaml", tt.body)
			_, err := LoadScenarioFile(path)
			require.Error(t, err)
			var se *SchemaError
			require.True(t, errors.As(err, &se), "got %v", err)
			assert.NotEmpty(t, se.Violations)
		})
	}
}

func TestLoadScenarioFile_Valid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "preset.yaml", presetYAML)
	sc, err := LoadScenarioFile(path)
	require.NoError(t, err)
	require.NotNil(t, sc.TariffShock)
	assert.Equal(t, 3.0, *sc.TariffShock)
	assert.Equal(t, "Eases Rates", sc.MonetaryPolicy)
}

func TestMergeScenario(t *testing.T) {
	one, two := 1.0, 2.0
	base := ScenarioConfig{Name: "base", TariffShock: &one, FiscalResponse: "tax_cut"}
	out := MergeScenario(base, ScenarioConfig{ADContraction: &two, MonetaryPolicy: "ease"})

	assert.Equal(t, "base", out.Name)
	assert.Equal(t, &one, out.TariffShock)
	assert.Equal(t, &two, out.ADContraction)
	assert.Equal(t, "tax_cut", out.FiscalResponse)
	assert.Equal(t, "ease", out.MonetaryPolicy)
}

func TestLoad_ShippedExample(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "examples", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Rebate without easing", cfg.Scenario.Name)

	in, err := cfg.Scenario.Inputs()
	require.NoError(t, err)
	assert.Equal(t, model.PolicyInputs{
		TariffShock:   3.0,
		ADContraction: 2.0,
		Fiscal:        model.FiscalTaxCut,
		Monetary:      model.MonetaryNeutral,
	}, in)
}
