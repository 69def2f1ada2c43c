// Package projection generates the per-year revenue and OPEX series that
// drive the cash-flow model. Both generators are pure: the same inputs
// always yield the same slice.
package projection

import "math"

// FlatOpexYears is the length of the flat OPEX plateau. Long-term OPEX
// growth only engages after this many years, which is also why projections
// beyond year 10 carry extra uncertainty.
const FlatOpexYears = 10

// GenerateRevenues returns `years` revenue values starting at `start` and
// compounding by `growth` each year. Compounding runs on the unrounded
// running value; only the stored output is rounded to cents. Growth may be
// zero (constant series) or negative (decline, no floor).
func GenerateRevenues(years int, start, growth float64) []float64 {
	vals := make([]float64, 0, years)
	cur := start
	for i := 0; i < years; i++ {
		vals = append(vals, round2(cur))
		cur *= 1 + growth
	}
	return vals
}

// GenerateOpex returns `years` OPEX values: flat at `start` through the
// plateau, then compounding by `longGrowth` off the year-10 value. OPEX is
// deliberately not rounded, matching the revenue/OPEX rounding asymmetry of
// the model.
func GenerateOpex(years int, start, longGrowth float64) []float64 {
	opex := make([]float64, 0, years)
	for year := 1; year <= years; year++ {
		if year <= FlatOpexYears {
			opex = append(opex, start)
		} else {
			opex = append(opex, opex[len(opex)-1]*(1+longGrowth))
		}
	}
	return opex
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
