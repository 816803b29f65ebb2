package curve

import "mundell-fleming/internal/model"

// Point is one sample of the IS and LM curves at output Y.
type Point struct {
	Y  float64 `json:"y"`
	IS float64 `json:"is_r"`
	LM float64 `json:"lm_r"`
}

// Linspace returns n evenly spaced values over [start, stop]. The last value is
// exactly stop. The product is rounded before the add so no GOARCH fuses it.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	step := (stop - start) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(float64(i)*step) + start
	}
	out[n-1] = stop
	return out
}

// Sample evaluates both curves over the fixed output domain using the
// process-wide constants. Each call returns a fresh slice.
func Sample(res model.EquilibriumResult) []Point {
	return SampleWith(model.Constants(), res)
}

func SampleWith(c model.ModelConstants, res model.EquilibriumResult) []Point {
	ys := Linspace(c.CurveMinY, c.CurveMaxY, c.CurvePoints)
	out := make([]Point, len(ys))
	for i, y := range ys {
		gap := y - c.Y0
		out[i] = Point{
			Y:  y,
			IS: c.R0 + float64(c.ISSlope*gap) + res.ISShift,
			LM: c.R0 + float64(c.LMSlope*gap) + res.LMShift,
		}
	}
	return out
}
