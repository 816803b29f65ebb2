package analysis

import (
	"sort"

	"mundell-fleming/internal/model"
)

// PolicyMix is one fiscal/monetary combination evaluated against fixed shocks.
type PolicyMix struct {
	Inputs model.PolicyInputs      `json:"inputs"`
	Result model.EquilibriumResult `json:"result"`
}

// RankPolicyMixes evaluates all fiscal x monetary combinations for the given
// shocks and sorts them by output, highest first. Ties keep enum order.
func RankPolicyMixes(tariffShock, adContraction float64) []PolicyMix {
	out := make([]PolicyMix, 0, len(model.FiscalResponses())*len(model.MonetaryPolicies()))
	for _, f := range model.FiscalResponses() {
		for _, m := range model.MonetaryPolicies() {
			in := model.PolicyInputs{
				TariffShock:   tariffShock,
				ADContraction: adContraction,
				Fiscal:        f,
				Monetary:      m,
			}
			out = append(out, PolicyMix{Inputs: in, Result: model.Evaluate(in)})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.YNew > out[j].Result.YNew
	})
	return out
}
