package backcalc

import (
	"math"

	"github.com/alloscale/alloscale/measure"
	"github.com/alloscale/alloscale/population"
)

// Estimate is one per-index contribution to a back-calculated absolute
// value: upper reference limit × population scale factor.
type Estimate struct {
	// Index is the body-size index the statistic was published against.
	Index measure.IndexType
	// IndexedLimit is the published upper reference limit, mean + 1.65·SD.
	IndexedLimit float64
	// Scale is the reference population's value for that index.
	Scale float64
	// Value is IndexedLimit × Scale, the absolute estimate.
	Value float64
}

// Result is the back-calculation outcome for one (measurement, sex):
// the averaged absolute value plus its per-index trace.
type Result struct {
	Sex measure.Sex
	// Absolute is the arithmetic mean of the estimates, or 0 when no
	// index is available (see Degenerate).
	Absolute float64
	// Estimates lists the contributing per-index estimates in the
	// canonical index order.
	Estimates []Estimate
}

// Degenerate reports whether no indexed statistic was available for this
// sex. A degenerate result propagates as data (absolute 0) and is flagged
// by coefficient validation, never thrown.
func (r Result) Degenerate() bool {
	return len(r.Estimates) == 0
}

// scaleFor returns the population's body-size value for an index type.
func scaleFor(idx measure.IndexType, pop population.Characteristics) float64 {
	hm := pop.HeightCm / 100
	switch idx {
	case measure.IndexBSA:
		return pop.BSA
	case measure.IndexBMI:
		return pop.BMI
	case measure.IndexHeight:
		return hm
	case measure.IndexHeight16:
		return math.Pow(hm, 1.6)
	case measure.IndexHeight27:
		return math.Pow(hm, 2.7)
	default: // measure.IndexHeight2
		return hm * hm
	}
}

// Absolute back-calculates the absolute measurement value for one sex from
// every indexed statistic present on the definition, against the given
// reference population. Traversal follows the canonical index order, so the
// trace (and the average) is deterministic.
func Absolute(def measure.Definition, sex measure.Sex, pop population.Characteristics) Result {
	stats := def.Stats(sex)
	res := Result{Sex: sex}

	sum := 0.0
	for _, idx := range measure.IndexTypes() {
		stat, ok := stats[idx]
		if !ok {
			continue
		}
		limit := stat.UpperLimit()
		scale := scaleFor(idx, pop)
		est := Estimate{
			Index:        idx,
			IndexedLimit: limit,
			Scale:        scale,
			Value:        limit * scale,
		}
		res.Estimates = append(res.Estimates, est)
		sum += est.Value
	}

	if len(res.Estimates) > 0 {
		res.Absolute = sum / float64(len(res.Estimates))
	}
	return res
}

// ScaleFor exposes the per-index population scale factor; the curve
// generator uses it to place samples on a published index axis.
func ScaleFor(idx measure.IndexType, pop population.Characteristics) float64 {
	return scaleFor(idx, pop)
}
