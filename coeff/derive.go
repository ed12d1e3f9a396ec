package coeff

import (
	"fmt"
	"math"

	"github.com/alloscale/alloscale/backcalc"
	"github.com/alloscale/alloscale/measure"
	"github.com/alloscale/alloscale/population"
	"github.com/alloscale/alloscale/scaling"
)

// SexCoefficients carries the per-sex derivation: the back-calculated
// absolute value, the two coefficients, and the full trace.
type SexCoefficients struct {
	// Absolute is the back-calculated absolute measurement value.
	Absolute float64
	// LBM is absolute / lbm^lbmExponent.
	LBM float64
	// BSA is absolute / bsa^bsaExponent. Reporting only.
	BSA float64
	// Trace is the back-calculation result that produced Absolute.
	Trace backcalc.Result
	// Population is the canonical reference the trace was computed against.
	Population population.Characteristics
}

// Validation is the soft outcome of the bounds and similarity checks.
type Validation struct {
	// Valid is true iff no warning fired.
	Valid bool
	// Warnings lists every violated expectation, human-readable.
	Warnings []string
	// SexSimilarity ∈ [0,1]; 1 means identical per-sex LBM coefficients,
	// 0 means one of them was non-positive.
	SexSimilarity float64
}

// Result is one immutable coefficient derivation. It is constructed fresh
// per (measurement, formula pair) request and never mutated afterwards.
type Result struct {
	MeasurementID string
	Name          string
	Unit          string
	Dimension     measure.Dimension
	Exponents     scaling.Exponents
	Formulas      population.Formulas

	// UniversalLBM is the sex-averaged LBM coefficient — the k in
	// measurement = k·LBM^exp.
	UniversalLBM float64

	Male   SexCoefficients
	Female SexCoefficients

	Validation Validation
}

// Derive computes the universal coefficient for one measurement id under
// the selected formulas.
//
// Soft misses surface as errors.Is-checkable sentinels: an unknown id wraps
// measure.ErrNotFound. An unclassifiable unit wraps measure.ErrUnknownUnit —
// the hard failure — and aborts only this record.
func Derive(reg *measure.Registry, id string, f population.Formulas) (Result, error) {
	def, ok := reg.Get(id)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", measure.ErrNotFound, id)
	}
	return deriveDefinition(def, f)
}

func deriveDefinition(def measure.Definition, f population.Formulas) (Result, error) {
	dim, err := def.Dimension()
	if err != nil {
		return Result{}, fmt.Errorf("derive %q: %w", def.ID, err)
	}
	exp := scaling.ExponentsFor(dim)

	res := Result{
		MeasurementID: def.ID,
		Name:          def.Name,
		Unit:          def.Unit,
		Dimension:     dim,
		Exponents:     exp,
		Formulas:      f,
		Male:          deriveSex(def, measure.Male, exp, f),
		Female:        deriveSex(def, measure.Female, exp, f),
	}

	// Averaging the two sexes is the point: if LBM-normalized scaling is
	// sex-independent, the two coefficients agree and the mean loses
	// nothing. The similarity score quantifies how true that was.
	res.UniversalLBM = (res.Male.LBM + res.Female.LBM) / 2
	res.Validation = validate(res)
	return res, nil
}

func deriveSex(def measure.Definition, sex measure.Sex, exp scaling.Exponents, f population.Formulas) SexCoefficients {
	pop := population.CanonicalReference(sex, f)
	trace := backcalc.Absolute(def, sex, pop)

	sc := SexCoefficients{
		Absolute:   trace.Absolute,
		Trace:      trace,
		Population: pop,
	}
	if pop.LBM > 0 {
		sc.LBM = trace.Absolute / math.Pow(pop.LBM, exp.LBM)
	}
	if pop.BSA > 0 {
		sc.BSA = trace.Absolute / math.Pow(pop.BSA, exp.BSA)
	}
	return sc
}

// sexSimilarity scores how close the per-sex LBM coefficients landed:
// 1 − |m−f| / max(m,f) when both are positive, else 0.
func sexSimilarity(m, f float64) float64 {
	if m <= 0 || f <= 0 {
		return 0
	}
	return 1 - math.Abs(m-f)/math.Max(m, f)
}

// Predict evaluates the universal model for a lean body mass:
// UniversalLBM · lbm^lbmExponent. The LBM path is the primary prediction;
// the per-sex BSA coefficients are never blended in.
func Predict(r Result, lbm float64) float64 {
	if lbm <= 0 {
		return 0
	}
	return r.UniversalLBM * math.Pow(lbm, r.Exponents.LBM)
}

// DeriveAll derives every measurement in the registry, in registry order.
// Per-record failures (unknown unit) are collected and skipped; they never
// block the rest of the batch.
func DeriveAll(reg *measure.Registry, f population.Formulas) ([]Result, []error) {
	var (
		results []Result
		errs    []error
	)
	for _, def := range reg.All() {
		res, err := deriveDefinition(def, f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, res)
	}
	return results, errs
}
