package model

// ModelConstants holds the baseline equilibrium and the linear coefficients.
// Units are arbitrary; the values are illustrative, not calibrated.
type ModelConstants struct {
	Y0 float64 // baseline output
	R0 float64 // baseline interest rate, %
	E0 float64 // baseline exchange rate index

	// NXPassThrough is the share of the tariff shock that shows up as net exports
	// (import substitution is imperfect).
	NXPassThrough float64

	ISToOutput float64
	LMToOutput float64
	LMToRate   float64
	ISToRate   float64
	RateToFX   float64
	NXToFX     float64

	// Slopes of the plotted curves in (Y, r) space.
	ISSlope float64
	LMSlope float64

	CurveMinY   float64
	CurveMaxY   float64
	CurvePoints int
}

var baseline = ModelConstants{
	Y0: 100,
	R0: 4.0,
	E0: 1.0,

	NXPassThrough: 0.6,

	ISToOutput: 0.8,
	LMToOutput: 0.5,
	LMToRate:   -0.3,
	ISToRate:   0.2,
	RateToFX:   -0.5,
	NXToFX:     0.3,

	ISSlope: -0.5,
	LMSlope: 0.7,

	CurveMinY:   95,
	CurveMaxY:   105,
	CurvePoints: 100,
}

// Constants returns a copy of the process-wide model constants.
func Constants() ModelConstants {
	return baseline
}
