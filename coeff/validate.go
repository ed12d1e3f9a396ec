package coeff

import (
	"fmt"

	"github.com/alloscale/alloscale/measure"
)

// MinSexSimilarity is the similarity threshold below which the universal
// hypothesis is considered suspect for a measurement.
const MinSexSimilarity = 0.80

// bounds is an expected numeric range for a universal LBM coefficient.
type bounds struct {
	lo, hi float64
}

// coefficientBounds documents the plausible universal-LBM-coefficient
// ranges per dimensional type, derived from the span of the reference
// literature (e.g. a linear diameter of 4–7 cm against LBM^0.33 ≈ 3.5–4).
// Violations are warnings, never failures.
var coefficientBounds = map[measure.Dimension]bounds{
	measure.Linear: {lo: 0.5, hi: 2.0},
	measure.Area:   {lo: 0.05, hi: 1.5},
	measure.Mass:   {lo: 1.0, hi: 6.0},
	measure.Volume: {lo: 0.05, hi: 5.0},
}

// validate runs the soft checks over a freshly derived result: degenerate
// sides, out-of-bounds universal coefficient, low sex similarity. Warnings
// accumulate as data; Valid is true only when none fired.
func validate(r Result) Validation {
	v := Validation{
		SexSimilarity: sexSimilarity(r.Male.LBM, r.Female.LBM),
	}

	if r.Male.Trace.Degenerate() {
		v.Warnings = append(v.Warnings,
			"no indexed statistics available for male: absolute value degenerates to 0")
	}
	if r.Female.Trace.Degenerate() {
		v.Warnings = append(v.Warnings,
			"no indexed statistics available for female: absolute value degenerates to 0")
	}

	if b, ok := coefficientBounds[r.Dimension]; ok {
		if r.UniversalLBM < b.lo || r.UniversalLBM > b.hi {
			v.Warnings = append(v.Warnings, fmt.Sprintf(
				"universal LBM coefficient %.3f outside expected %s range [%.2f, %.2f]",
				r.UniversalLBM, r.Dimension, b.lo, b.hi))
		}
	}

	if v.SexSimilarity < MinSexSimilarity {
		v.Warnings = append(v.Warnings, fmt.Sprintf(
			"sex similarity %.3f below threshold %.2f: universal coefficient questionable",
			v.SexSimilarity, MinSexSimilarity))
	}

	v.Valid = len(v.Warnings) == 0
	return v
}
