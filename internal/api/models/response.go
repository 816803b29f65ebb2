package models

import (
	"mundell-fleming/internal/analysis"
	"mundell-fleming/internal/curve"
	"mundell-fleming/internal/model"
	"mundell-fleming/internal/render"
)

// EvaluateResponse represents one evaluated scenario
type EvaluateResponse struct {
	ID        string                    `json:"id"`
	Inputs    model.PolicyInputs        `json:"inputs"`
	Result    model.EquilibriumResult   `json:"result"`
	Deltas    model.Deltas              `json:"deltas"`
	Metrics   []render.Metric           `json:"metrics"`
	Narrative []string                  `json:"narrative"`
	Shocks    []analysis.ShockComponent `json:"shocks"`
	Curve     []curve.Point             `json:"curve,omitempty"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Name   string                  `json:"name"`
	Inputs model.PolicyInputs      `json:"inputs"`
	Result model.EquilibriumResult `json:"result"`
	Deltas model.Deltas            `json:"deltas"`
}

// RankResponse represents the response from ranking policy mixes
type RankResponse struct {
	TariffShock   float64   `json:"tariff_shock"`
	ADContraction float64   `json:"ad_contraction"`
	Rankings      []Ranking `json:"rankings"`
}

// Ranking represents one ranked policy mix
type Ranking struct {
	Rank           int     `json:"rank"`
	FiscalResponse string  `json:"fiscal_response"`
	MonetaryPolicy string  `json:"monetary_policy"`
	YNew           float64 `json:"y_new"`
	RNew           float64 `json:"r_new"`
	ENew           float64 `json:"e_new"`
}

// PolicyInfo describes one selectable policy option
type PolicyInfo struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Shift float64 `json:"shift"`
}

// PoliciesResponse is the catalogue of policy options and input bounds
type PoliciesResponse struct {
	FiscalResponses  []PolicyInfo    `json:"fiscal_responses"`
	MonetaryPolicies []PolicyInfo    `json:"monetary_policies"`
	Parameters       []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a numeric input
type ParameterInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Step        float64 `json:"step"`
	Default     float64 `json:"default"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
