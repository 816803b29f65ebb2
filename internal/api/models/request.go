package models

// EvaluateRequest is the body of POST /api/v1/evaluate. Missing fields take
// the default slider positions. Categorical fields accept the id or the label.
type EvaluateRequest struct {
	TariffShock    *float64 `json:"tariff_shock,omitempty"`
	ADContraction  *float64 `json:"ad_contraction,omitempty"`
	FiscalResponse *string  `json:"fiscal_response,omitempty"`
	MonetaryPolicy *string  `json:"monetary_policy,omitempty"`
	IncludeCurve   bool     `json:"include_curve,omitempty"`
}

// CompareRequest evaluates a base scenario plus named variations of it.
type CompareRequest struct {
	Base       EvaluateRequest `json:"base"`
	Variations []Variation     `json:"variations" binding:"required,min=1,dive"`
}

// Variation is a named partial override of the base scenario.
type Variation struct {
	Name   string          `json:"name" binding:"required"`
	Inputs EvaluateRequest `json:"inputs"`
}

// RankRequest ranks every fiscal/monetary mix for fixed shocks.
type RankRequest struct {
	TariffShock   *float64 `form:"tariff_shock"`
	ADContraction *float64 `form:"ad_contraction"`
}
