package config

import (
	"fmt"
	"strings"
	"sync"

	"mundell-fleming/internal/model"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaError lists every schema violation found in a scenario document.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return "scenario does not match schema: " + strings.Join(e.Violations, "; ")
}

var scenarioSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewGoLoader(scenarioSchemaDoc()))
})

func scenarioSchemaDoc() map[string]any {
	fiscal := []any{}
	for _, f := range model.FiscalResponses() {
		fiscal = append(fiscal, string(f), f.Label())
	}
	monetary := []any{}
	for _, m := range model.MonetaryPolicies() {
		monetary = append(monetary, string(m), m.Label())
	}
	shock := map[string]any{
		"type":    "number",
		"minimum": model.MinShock,
		"maximum": model.MaxShock,
	}
	return map[string]any{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"type":                 "object",
		"required":             []any{"scenario"},
		"additionalProperties": false,
		"properties": map[string]any{
			"scenario": map[string]any{
				"type":                 "object",
				"required":             []any{"name"},
				"additionalProperties": false,
				"properties": map[string]any{
					"name":            map[string]any{"type": "string", "minLength": 1},
					"description":     map[string]any{"type": "string"},
					"tariff_shock":    shock,
					"ad_contraction":  shock,
					"fiscal_response": map[string]any{"type": "string", "enum": fiscal},
					"monetary_policy": map[string]any{"type": "string", "enum": monetary},
				},
			},
		},
	}
}

// ValidateScenarioDocument checks a decoded preset document (YAML or JSON).
func ValidateScenarioDocument(doc any) error {
	schema, err := scenarioSchema()
	if err != nil {
		return fmt.Errorf("compile scenario schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validate scenario: %w", err)
	}
	if result.Valid() {
		return nil
	}
	violations := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		violations = append(violations, e.String())
	}
	return &SchemaError{Violations: violations}
}
