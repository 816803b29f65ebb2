package model

import (
	"fmt"
	"strings"
)

// FiscalResponse is what the government does with tariff revenue.
// Keep these values stable; they appear in JSON, YAML and query strings.
type FiscalResponse string

const (
	FiscalNeutral     FiscalResponse = "neutral"
	FiscalDebtPaydown FiscalResponse = "debt_paydown"
	FiscalTaxCut      FiscalResponse = "tax_cut"
)

// FiscalResponses lists every fiscal option in display order.
func FiscalResponses() []FiscalResponse {
	return []FiscalResponse{FiscalNeutral, FiscalDebtPaydown, FiscalTaxCut}
}

func (f FiscalResponse) Valid() bool {
	switch f {
	case FiscalNeutral, FiscalDebtPaydown, FiscalTaxCut:
		return true
	}
	return false
}

func (f FiscalResponse) Label() string {
	switch f {
	case FiscalDebtPaydown:
		return "Debt Paydown (Contractionary)"
	case FiscalTaxCut:
		return "Tax Cut (Mildly Expansionary)"
	case FiscalNeutral:
		return "Neutral"
	}
	return string(f)
}

// Shift is the IS-curve displacement caused by the fiscal response.
func (f FiscalResponse) Shift() float64 {
	switch f {
	case FiscalDebtPaydown:
		return -1.0
	case FiscalTaxCut:
		return 0.5
	default:
		return 0
	}
}

// ParseFiscalResponse accepts either the stable id or the display label.
func ParseFiscalResponse(s string) (FiscalResponse, error) {
	s = strings.TrimSpace(s)
	for _, f := range FiscalResponses() {
		if strings.EqualFold(s, string(f)) || strings.EqualFold(s, f.Label()) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown fiscal response %q", s)
}

// MonetaryPolicy is the central bank's reaction to the shock.
type MonetaryPolicy string

const (
	MonetaryNeutral MonetaryPolicy = "neutral"
	MonetaryEase    MonetaryPolicy = "ease"
	MonetaryTighten MonetaryPolicy = "tighten"
)

// MonetaryPolicies lists every monetary option in display order.
func MonetaryPolicies() []MonetaryPolicy {
	return []MonetaryPolicy{MonetaryNeutral, MonetaryEase, MonetaryTighten}
}

func (m MonetaryPolicy) Valid() bool {
	switch m {
	case MonetaryNeutral, MonetaryEase, MonetaryTighten:
		return true
	}
	return false
}

func (m MonetaryPolicy) Label() string {
	switch m {
	case MonetaryEase:
		return "Eases Rates"
	case MonetaryTighten:
		return "Tightens Rates"
	case MonetaryNeutral:
		return "Neutral"
	}
	return string(m)
}

// Shift is the LM-curve displacement. Easing moves LM down/right.
func (m MonetaryPolicy) Shift() float64 {
	switch m {
	case MonetaryEase:
		return 1.0
	case MonetaryTighten:
		return -1.0
	default:
		return 0
	}
}

// ParseMonetaryPolicy accepts either the stable id or the display label.
func ParseMonetaryPolicy(s string) (MonetaryPolicy, error) {
	s = strings.TrimSpace(s)
	for _, m := range MonetaryPolicies() {
		if strings.EqualFold(s, string(m)) || strings.EqualFold(s, m.Label()) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown monetary policy %q", s)
}
