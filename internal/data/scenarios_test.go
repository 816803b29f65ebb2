package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mundell-fleming/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePreset(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestListScenarios(t *testing.T) {
	dir := t.TempDir()
	writePreset(t, dir, "b_austerity.yaml", "scenario:\n  name: Austerity\n  tariff_shock: 1\n  ad_contraction: 2\n  fiscal_response: debt_paydown\n  monetary_policy: tighten\n")
	writePreset(t, dir, "a_baseline.yml", "scenario:\n  name: Baseline\n")
	writePreset(t, dir, "broken.yaml", "scenario:\n  tariff_shock: 9\n")
	writePreset(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	scenarios, skipped, err := ListScenarios(dir)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	require.Len(t, skipped, 1)

	assert.Equal(t, "a_baseline", scenarios[0].ID)
	assert.Equal(t, model.DefaultInputs(), scenarios[0].Inputs)

	assert.Equal(t, "b_austerity", scenarios[1].ID)
	assert.Equal(t, "Austerity", scenarios[1].Name)
	assert.Equal(t, model.PolicyInputs{
		TariffShock:   1,
		ADContraction: 2,
		Fiscal:        model.FiscalDebtPaydown,
		Monetary:      model.MonetaryTighten,
	}, scenarios[1].Inputs)

	assert.Equal(t, filepath.Join(dir, "broken.yaml"), skipped[0].File)
	assert.Error(t, skipped[0].Err)
}

func TestListScenarios_MissingDir(t *testing.T) {
	scenarios, skipped, err := ListScenarios(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, scenarios)
	assert.Empty(t, skipped)
}

func TestFindScenario(t *testing.T) {
	dir := t.TempDir()
	writePreset(t, dir, "easing.yaml", "scenario:\n  name: Easing\n  monetary_policy: ease\n")

	sc, err := FindScenario(dir, "easing")
	require.NoError(t, err)
	assert.Equal(t, model.MonetaryEase, sc.Inputs.Monetary)

	_, err = FindScenario(dir, "missing")
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = FindScenario(dir, "../etc/passwd")
	assert.Error(t, err)
}

func TestShippedScenarios(t *testing.T) {
	scenarios, skipped, err := ListScenarios(filepath.Join("..", "..", "scenarios"))
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.NotEmpty(t, scenarios)
	for _, sc := range scenarios {
		assert.NoError(t, sc.Inputs.Validate(), sc.ID)
		assert.NotEmpty(t, sc.Name, sc.ID)
	}
}
