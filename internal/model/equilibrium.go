package model

// EquilibriumResult is the full set of derived values for one PolicyInputs.
type EquilibriumResult struct {
	NetExportsBoost float64 `json:"net_exports_boost"`
	FiscalShift     float64 `json:"fiscal_shift"`
	ISShift         float64 `json:"is_shift"`
	LMShift         float64 `json:"lm_shift"`
	YNew            float64 `json:"y_new"`
	RNew            float64 `json:"r_new"`
	EChange         float64 `json:"e_change"`
	ENew            float64 `json:"e_new"`
}

// Deltas are the moves away from the baseline equilibrium.
type Deltas struct {
	Output       float64 `json:"output"`
	InterestRate float64 `json:"interest_rate"`
	ExchangeRate float64 `json:"exchange_rate"`
}

// Evaluate runs the model with the process-wide constants.
func Evaluate(in PolicyInputs) EquilibriumResult {
	return baseline.Evaluate(in)
}

// Evaluate maps inputs to the new equilibrium. It is total over the enum sets
// and has no side effects.
//
// Every product is wrapped in an explicit float64 conversion so the compiler
// cannot fuse it into an FMA; results must be bit-identical on every GOARCH.
func (c ModelConstants) Evaluate(in PolicyInputs) EquilibriumResult {
	nx := float64(in.TariffShock * c.NXPassThrough)
	fiscal := in.Fiscal.Shift()
	lm := in.Monetary.Shift()

	is := nx - in.ADContraction + fiscal

	y := c.Y0 + float64(c.ISToOutput*is) + float64(c.LMToOutput*lm)
	r := c.R0 + float64(c.LMToRate*lm) + float64(c.ISToRate*is)
	dE := float64(c.RateToFX*(c.R0-r)) + float64(c.NXToFX*nx)

	return EquilibriumResult{
		NetExportsBoost: nx,
		FiscalShift:     fiscal,
		ISShift:         is,
		LMShift:         lm,
		YNew:            y,
		RNew:            r,
		EChange:         dE,
		ENew:            c.E0 + dE,
	}
}

// Deltas reports the result relative to the baseline constants. Results from
// ModelConstants.Evaluate with other constants should use ModelConstants.Deltas.
func (r EquilibriumResult) Deltas() Deltas {
	return baseline.Deltas(r)
}

// Deltas reports r relative to the starting point of c.
func (c ModelConstants) Deltas(r EquilibriumResult) Deltas {
	return Deltas{
		Output:       r.YNew - c.Y0,
		InterestRate: r.RNew - c.R0,
		ExchangeRate: r.ENew - c.E0,
	}
}
