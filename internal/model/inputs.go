package model

import (
	"fmt"
	"math"
)

// Slider bounds for both numeric shocks, in % of GDP.
const (
	MinShock = 0.0
	MaxShock = 5.0
)

// PolicyInputs is everything a user can choose. It only lives for one evaluation.
type PolicyInputs struct {
	TariffShock   float64        `json:"tariff_shock" yaml:"tariff_shock"`
	ADContraction float64        `json:"ad_contraction" yaml:"ad_contraction"`
	Fiscal        FiscalResponse `json:"fiscal_response" yaml:"fiscal_response"`
	Monetary      MonetaryPolicy `json:"monetary_policy" yaml:"monetary_policy"`
}

// DefaultInputs matches the initial slider and selector positions.
func DefaultInputs() PolicyInputs {
	return PolicyInputs{
		TariffShock:   2.0,
		ADContraction: 1.0,
		Fiscal:        FiscalNeutral,
		Monetary:      MonetaryNeutral,
	}
}

// InputError reports the first field that falls outside the input domain.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (in PolicyInputs) Validate() error {
	if err := validateShock("tariff_shock", in.TariffShock); err != nil {
		return err
	}
	if err := validateShock("ad_contraction", in.ADContraction); err != nil {
		return err
	}
	if !in.Fiscal.Valid() {
		return &InputError{Field: "fiscal_response", Message: fmt.Sprintf("unknown value %q", in.Fiscal)}
	}
	if !in.Monetary.Valid() {
		return &InputError{Field: "monetary_policy", Message: fmt.Sprintf("unknown value %q", in.Monetary)}
	}
	return nil
}

func validateShock(field string, v float64) error {
	if math.IsNaN(v) || v < MinShock || v > MaxShock {
		return &InputError{Field: field, Message: fmt.Sprintf("must be within [%.1f, %.1f], got %v", MinShock, MaxShock, v)}
	}
	return nil
}

// Clamp pins both shocks into the slider range. NaN becomes MinShock.
// Enum fields are left alone.
func (in PolicyInputs) Clamp() PolicyInputs {
	in.TariffShock = clampShock(in.TariffShock)
	in.ADContraction = clampShock(in.ADContraction)
	return in
}

func clampShock(x float64) float64 {
	if math.IsNaN(x) || x < MinShock {
		return MinShock
	}
	if x > MaxShock {
		return MaxShock
	}
	return x
}
