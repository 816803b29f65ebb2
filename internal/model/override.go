package model

// InputOverride is a partial PolicyInputs. Nil fields keep the base value,
// so an explicit 0.0 shock can be told apart from "not set".
type InputOverride struct {
	TariffShock   *float64        `json:"tariff_shock,omitempty" yaml:"tariff_shock,omitempty"`
	ADContraction *float64        `json:"ad_contraction,omitempty" yaml:"ad_contraction,omitempty"`
	Fiscal        *FiscalResponse `json:"fiscal_response,omitempty" yaml:"fiscal_response,omitempty"`
	Monetary      *MonetaryPolicy `json:"monetary_policy,omitempty" yaml:"monetary_policy,omitempty"`
}

// Apply overlays the set fields of o onto base.
func (o InputOverride) Apply(base PolicyInputs) PolicyInputs {
	out := base
	if o.TariffShock != nil {
		out.TariffShock = *o.TariffShock
	}
	if o.ADContraction != nil {
		out.ADContraction = *o.ADContraction
	}
	if o.Fiscal != nil {
		out.Fiscal = *o.Fiscal
	}
	if o.Monetary != nil {
		out.Monetary = *o.Monetary
	}
	return out
}
