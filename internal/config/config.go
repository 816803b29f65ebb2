package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mundell-fleming/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk run configuration shape (YAML).
type Config struct {
	// Optional: load a preset from a separate YAML (e.g. scenarios/*.yaml).
	// Fields set under Scenario override the ones from ScenarioFile.
	ScenarioFile string         `yaml:"scenario_file"`
	Scenario     ScenarioConfig `yaml:"scenario"`
}

// ScenarioConfig is a named, possibly partial, set of policy inputs.
// Numeric fields are pointers because 0.0 is a meaningful shock.
type ScenarioConfig struct {
	Name           string   `yaml:"name" json:"name"`
	Description    string   `yaml:"description,omitempty" json:"description,omitempty"`
	TariffShock    *float64 `yaml:"tariff_shock,omitempty" json:"tariff_shock,omitempty"`
	ADContraction  *float64 `yaml:"ad_contraction,omitempty" json:"ad_contraction,omitempty"`
	FiscalResponse string   `yaml:"fiscal_response,omitempty" json:"fiscal_response,omitempty"`
	MonetaryPolicy string   `yaml:"monetary_policy,omitempty" json:"monetary_policy,omitempty"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer paths relative to the config file, fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		loaded, err := LoadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Scenario = MergeScenario(loaded, c.Scenario)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	in, err := c.Scenario.Inputs()
	if err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	if err := in.Validate(); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	return nil
}

// Override converts the scenario into a partial input set. Enum values may be
// ids or display labels.
func (s ScenarioConfig) Override() (model.InputOverride, error) {
	o := model.InputOverride{
		TariffShock:   s.TariffShock,
		ADContraction: s.ADContraction,
	}
	if s.FiscalResponse != "" {
		f, err := model.ParseFiscalResponse(s.FiscalResponse)
		if err != nil {
			return o, err
		}
		o.Fiscal = &f
	}
	if s.MonetaryPolicy != "" {
		m, err := model.ParseMonetaryPolicy(s.MonetaryPolicy)
		if err != nil {
			return o, err
		}
		o.Monetary = &m
	}
	return o, nil
}

// Inputs fills unset fields from model.DefaultInputs.
func (s ScenarioConfig) Inputs() (model.PolicyInputs, error) {
	o, err := s.Override()
	if err != nil {
		return model.PolicyInputs{}, err
	}
	return o.Apply(model.DefaultInputs()), nil
}

type scenarioFileWrapper struct {
	Scenario ScenarioConfig `yaml:"scenario"`
}

// LoadScenarioFile reads a preset file and checks it against the scenario schema.
func LoadScenarioFile(path string) (ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return ScenarioConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := ValidateScenarioDocument(doc); err != nil {
		return ScenarioConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ScenarioConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Scenario, nil
}

// MergeScenario overlays the set fields of override onto base.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Description != "" {
		out.Description = override.Description
	}
	if override.TariffShock != nil {
		out.TariffShock = override.TariffShock
	}
	if override.ADContraction != nil {
		out.ADContraction = override.ADContraction
	}
	if override.FiscalResponse != "" {
		out.FiscalResponse = override.FiscalResponse
	}
	if override.MonetaryPolicy != "" {
		out.MonetaryPolicy = override.MonetaryPolicy
	}
	return out
}
