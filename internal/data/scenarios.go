package data

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mundell-fleming/internal/config"
	"mundell-fleming/internal/model"
)

// Scenario is a read-only preset shipped as scenarios/<id>.yaml.
type Scenario struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	File        string             `json:"file"`
	Inputs      model.PolicyInputs `json:"inputs"`
}

// SkippedFile records a preset that failed to load.
type SkippedFile struct {
	File string `json:"file"`
	Err  error  `json:"-"`
}

// ListScenarios loads every *.yaml preset in dir, sorted by id. Invalid files
// are returned in skipped instead of failing the whole listing. A missing
// directory yields an empty list.
func ListScenarios(dir string) (scenarios []Scenario, skipped []SkippedFile, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Scenario{}, nil, nil
		}
		return nil, nil, fmt.Errorf("read scenario dir %s: %w", dir, err)
	}

	scenarios = []Scenario{}
	for _, e := range entries {
		if e.IsDir() || !isYAML(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		sc, err := LoadScenario(path)
		if err != nil {
			skipped = append(skipped, SkippedFile{File: path, Err: err})
			continue
		}
		scenarios = append(scenarios, *sc)
	}
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].ID < scenarios[j].ID })
	return scenarios, skipped, nil
}

// LoadScenario reads one preset. The id is the file name without extension.
func LoadScenario(path string) (*Scenario, error) {
	cfg, err := config.LoadScenarioFile(path)
	if err != nil {
		return nil, err
	}
	in, err := cfg.Inputs()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Scenario{
		ID:          id,
		Name:        cfg.Name,
		Description: cfg.Description,
		File:        path,
		Inputs:      in,
	}, nil
}

// FindScenario looks up a preset by id in dir.
func FindScenario(dir, id string) (*Scenario, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return nil, fmt.Errorf("invalid scenario id %q", id)
	}
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(dir, id+ext)
		if _, err := os.Stat(path); err == nil {
			return LoadScenario(path)
		}
	}
	return nil, fmt.Errorf("scenario %q: %w", id, os.ErrNotExist)
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
