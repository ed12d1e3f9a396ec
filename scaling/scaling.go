package scaling

import (
	"fmt"

	"github.com/alloscale/alloscale/measure"
)

// Variable names a body-size scaling variable.
type Variable string

const (
	// VarLBM — lean body mass (kg).
	VarLBM Variable = "lbm"
	// VarBSA — body surface area (m²).
	VarBSA Variable = "bsa"
	// VarHeight — height (m).
	VarHeight Variable = "height"
)

// Class distinguishes ratiometric from allometric scaling.
type Class int

const (
	// Allometric — a non-unity power law, or a unity exponent against a
	// dimensionally mismatched variable.
	Allometric Class = iota
	// Ratiometric — exponent 1.0 against a dimensionally matched variable;
	// plain division is valid.
	Ratiometric
)

// String implements fmt.Stringer.
func (c Class) String() string {
	if c == Ratiometric {
		return "ratiometric"
	}
	return "allometric"
}

// Exponents is the triple relating one dimensional type to the three
// body-size variables: measurement ∝ variable^exponent.
type Exponents struct {
	LBM    float64
	BSA    float64
	Height float64
}

// For returns the exponent for the given variable.
func (e Exponents) For(v Variable) float64 {
	switch v {
	case VarLBM:
		return e.LBM
	case VarBSA:
		return e.BSA
	default:
		return e.Height
	}
}

// empiricalExponents is the canonical table. The mass/volume height
// exponent is the empirical 2.1; the geometric 3.0 lives in the
// theoretical table below and is never silently substituted.
var empiricalExponents = map[measure.Dimension]Exponents{
	measure.Linear: {LBM: 0.33, BSA: 0.50, Height: 1.00},
	measure.Area:   {LBM: 0.67, BSA: 1.00, Height: 2.00},
	measure.Mass:   {LBM: 1.00, BSA: 1.50, Height: 2.10},
	measure.Volume: {LBM: 1.00, BSA: 1.50, Height: 2.10},
}

// theoreticalExponents is the documented alternative table with the purely
// geometric height exponent for mass and volume.
var theoreticalExponents = map[measure.Dimension]Exponents{
	measure.Linear: {LBM: 0.33, BSA: 0.50, Height: 1.00},
	measure.Area:   {LBM: 0.67, BSA: 1.00, Height: 2.00},
	measure.Mass:   {LBM: 1.00, BSA: 1.50, Height: 3.00},
	measure.Volume: {LBM: 1.00, BSA: 1.50, Height: 3.00},
}

// ExponentsFor returns the canonical (empirical) exponent triple for a
// dimensional type. Dimension is a closed enum produced by
// measure.DimensionOf, so an unknown value is programmer error.
func ExponentsFor(d measure.Dimension) Exponents {
	e, ok := empiricalExponents[d]
	if !ok {
		panic(fmt.Sprintf("scaling: no exponents for dimension %v", d))
	}
	return e
}

// TheoreticalExponentsFor returns the alternative geometric table. It is
// exported for comparison and reporting only; the derivation pipeline uses
// ExponentsFor exclusively.
func TheoreticalExponentsFor(d measure.Dimension) Exponents {
	e, ok := theoreticalExponents[d]
	if !ok {
		panic(fmt.Sprintf("scaling: no exponents for dimension %v", d))
	}
	return e
}

// matched reports whether the variable is dimensionally matched to the
// measurement's type: height↔linear, bsa↔area, lbm↔{mass,volume}.
func matched(d measure.Dimension, v Variable) bool {
	switch v {
	case VarHeight:
		return d == measure.Linear
	case VarBSA:
		return d == measure.Area
	case VarLBM:
		return d == measure.Mass || d == measure.Volume
	default:
		return false
	}
}

// Classify reports whether indexing a measurement of dimensional type d by
// variable v is ratiometric or allometric under the canonical table.
func Classify(d measure.Dimension, v Variable) Class {
	if matched(d, v) && ExponentsFor(d).For(v) == 1.0 {
		return Ratiometric
	}
	return Allometric
}
