package analysis

import "mundell-fleming/internal/model"

// ShockComponent is one row of the "Underlying Shocks" table.
// Value is in % of GDP for demand shocks and a rate shift for monetary policy.
type ShockComponent struct {
	Component string  `json:"component"`
	Value     float64 `json:"value"`
}

func ShockBreakdown(in model.PolicyInputs, res model.EquilibriumResult) []ShockComponent {
	return []ShockComponent{
		{Component: "Tariff Shock (NX Boost)", Value: res.NetExportsBoost},
		{Component: "AD Contraction", Value: -in.ADContraction},
		{Component: "Fiscal Shift", Value: res.FiscalShift},
		{Component: "Monetary Shift", Value: res.LMShift},
	}
}

// Coefficient documents one of the six linear coefficients.
type Coefficient struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Meaning string  `json:"meaning"`
}

func CoefficientGlossary() []Coefficient {
	c := model.Constants()
	return []Coefficient{
		{Label: "IS effect on → Y", Value: c.ISToOutput, Meaning: "Effect of demand shocks on output (fiscal multiplier)"},
		{Label: "LM → Y", Value: c.LMToOutput, Meaning: "Effect of monetary easing on output"},
		{Label: "LM → r", Value: c.LMToRate, Meaning: "Effect of monetary easing on interest rates"},
		{Label: "IS → r", Value: c.ISToRate, Meaning: "Effect of demand pressure on interest rates"},
		{Label: "∆r → ∆E", Value: c.RateToFX, Meaning: "Effect of interest rate changes on exchange rate"},
		{Label: "NX → ∆E", Value: c.NXToFX, Meaning: "Effect of net export boost on exchange rate"},
	}
}
