package population

import (
	"github.com/alloscale/alloscale/bodycomp"
	"github.com/alloscale/alloscale/measure"
)

// Formulas pairs the BSA and LBM formula selection threaded through every
// operation. Selection is always an explicit parameter, never ambient state.
type Formulas struct {
	BSA bodycomp.BSAFormula
	LBM bodycomp.LBMFormula
}

// DefaultFormulas returns the registry defaults: DuBois + Boer.
func DefaultFormulas() Formulas {
	return Formulas{BSA: bodycomp.BSADuBois, LBM: bodycomp.LBMBoer}
}

// Characteristics is one reference individual/population: the raw
// anthropometrics plus the derived body-composition values. BSA and LBM are
// computed from the formulas at construction time and are consistent with
// HeightCm/WeightKg by construction.
type Characteristics struct {
	Sex      measure.Sex
	HeightCm float64
	WeightKg float64
	// BMI in kg/m², = weight / (height/100)².
	BMI float64
	// BSA in m², derived via the selected BSA formula.
	BSA float64
	// LBM in kg, derived via the selected LBM formula.
	LBM float64
}

// Recompute returns a new Characteristics with BSA and LBM re-derived under
// different formulas. The receiver is left untouched: formula changes never
// mutate an existing population value.
func (c Characteristics) Recompute(f Formulas) Characteristics {
	return fromHeightBMI(c.Sex, c.HeightCm, c.BMI, f)
}

// Range is an inclusive, ascending numeric range with a positive step.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// Validate checks the Range contract.
func (r Range) Validate() error {
	if r.Step <= 0 {
		return ErrBadStep
	}
	if r.Max < r.Min {
		return ErrBadRange
	}
	return nil
}

// Values materializes the range: Min, Min+Step, ... up to and including Max
// (within a half-step tolerance for float drift).
func (r Range) Values() []float64 {
	n := int((r.Max-r.Min)/r.Step+0.5) + 1
	out := make([]float64, 0, n)
	for v := r.Min; v <= r.Max+r.Step/2; v += r.Step {
		out = append(out, v)
	}
	return out
}
