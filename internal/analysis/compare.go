package analysis

import (
	"fmt"

	"mundell-fleming/internal/model"
)

// Variation is a named partial override of a base scenario.
type Variation struct {
	Name     string              `json:"name"`
	Override model.InputOverride `json:"override"`
}

type Comparison struct {
	Name   string                  `json:"name"`
	Inputs model.PolicyInputs      `json:"inputs"`
	Result model.EquilibriumResult `json:"result"`
	Deltas model.Deltas            `json:"deltas"`
}

// Compare evaluates the base scenario followed by each variation. The base row
// is named "base". Invalid merged inputs fail the whole comparison.
func Compare(base model.PolicyInputs, variations []Variation) ([]Comparison, error) {
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("base: %w", err)
	}
	out := make([]Comparison, 0, len(variations)+1)
	out = append(out, compareRow("base", base))
	for i, v := range variations {
		in := v.Override.Apply(base)
		if err := in.Validate(); err != nil {
			return nil, fmt.Errorf("variation %d (%s): %w", i, v.Name, err)
		}
		out = append(out, compareRow(v.Name, in))
	}
	return out, nil
}

func compareRow(name string, in model.PolicyInputs) Comparison {
	res := model.Evaluate(in)
	return Comparison{
		Name:   name,
		Inputs: in,
		Result: res,
		Deltas: res.Deltas(),
	}
}
