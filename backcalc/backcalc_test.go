package backcalc_test

import (
	"testing"

	"github.com/alloscale/alloscale/backcalc"
	"github.com/alloscale/alloscale/measure"
	"github.com/alloscale/alloscale/population"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lvddDef mirrors the published male LVDD statistics:
// BSA-indexed 2.3±0.3, height-indexed 2.57±0.29.
func lvddDef() measure.Definition {
	return measure.Definition{
		ID: "lvdd", Name: "LV end-diastolic diameter", Unit: "cm",
		Male: map[measure.IndexType]measure.Stat{
			measure.IndexBSA:    {Mean: 2.3, SD: 0.3},
			measure.IndexHeight: {Mean: 2.57, SD: 0.29},
		},
	}
}

// TestAbsolute_MultiIndexAveraging reproduces the two-index male LVDD
// back-calculation: BSA estimate ≈ 5.5, height estimate ≈ 5.43,
// average ≈ 5.5.
func TestAbsolute_MultiIndexAveraging(t *testing.T) {
	pop := population.CanonicalReference(measure.Male, population.DefaultFormulas())
	require.InDelta(t, 1.97, pop.BSA, 0.01)

	res := backcalc.Absolute(lvddDef(), measure.Male, pop)
	require.Len(t, res.Estimates, 2)

	bsaEst := res.Estimates[0]
	assert.Equal(t, measure.IndexBSA, bsaEst.Index)
	assert.InDelta(t, 2.795, bsaEst.IndexedLimit, 1e-9, "mean + 1.65·SD")
	assert.InDelta(t, 5.51, bsaEst.Value, 0.05)

	heightEst := res.Estimates[1]
	assert.Equal(t, measure.IndexHeight, heightEst.Index)
	assert.InDelta(t, 1.78, heightEst.Scale, 1e-9, "height scale is meters")
	assert.InDelta(t, 5.43, heightEst.Value, 0.05)

	assert.InDelta(t, 5.50, res.Absolute, 0.05, "absolute is the mean of the estimates")
	assert.False(t, res.Degenerate())
}

// TestAbsolute_UpperLimitNotMean pins that the raw mean is never used:
// with SD > 0 the estimate must exceed mean × scale.
func TestAbsolute_UpperLimitNotMean(t *testing.T) {
	pop := population.CanonicalReference(measure.Male, population.DefaultFormulas())
	res := backcalc.Absolute(lvddDef(), measure.Male, pop)

	meanOnly := 2.3 * pop.BSA
	assert.Greater(t, res.Estimates[0].Value, meanOnly,
		"back-calculation consumes the upper reference limit, not the mean")
}

// TestAbsolute_SingleIndex verifies the trivial average.
func TestAbsolute_SingleIndex(t *testing.T) {
	def := measure.Definition{
		ID: "lvedv", Unit: "mL",
		Male: map[measure.IndexType]measure.Stat{
			measure.IndexBSA: {Mean: 54, SD: 10},
		},
	}
	pop := population.CanonicalReference(measure.Male, population.DefaultFormulas())

	res := backcalc.Absolute(def, measure.Male, pop)
	require.Len(t, res.Estimates, 1)
	assert.InDelta(t, (54+1.65*10)*pop.BSA, res.Absolute, 1e-9)
}

// TestAbsolute_DegenerateZeroIndices — a sex with no published statistics
// yields absolute 0 and an empty trace, flagged but never thrown.
func TestAbsolute_DegenerateZeroIndices(t *testing.T) {
	def := measure.Definition{ID: "rvarea", Unit: "cm²",
		Male: map[measure.IndexType]measure.Stat{
			measure.IndexBSA: {Mean: 8.8, SD: 1.9},
		},
	}
	pop := population.CanonicalReference(measure.Female, population.DefaultFormulas())

	res := backcalc.Absolute(def, measure.Female, pop)
	assert.True(t, res.Degenerate())
	assert.Zero(t, res.Absolute)
	assert.Empty(t, res.Estimates)
}

// TestScaleFor covers every index type's population scale factor.
func TestScaleFor(t *testing.T) {
	pop := population.Characteristics{HeightCm: 178, BMI: 25, BSA: 1.97}

	assert.InDelta(t, 1.97, backcalc.ScaleFor(measure.IndexBSA, pop), 1e-12)
	assert.InDelta(t, 25, backcalc.ScaleFor(measure.IndexBMI, pop), 1e-12)
	assert.InDelta(t, 1.78, backcalc.ScaleFor(measure.IndexHeight, pop), 1e-12)
	assert.InDelta(t, 3.1684, backcalc.ScaleFor(measure.IndexHeight2, pop), 1e-9)
	assert.InDelta(t, 2.515, backcalc.ScaleFor(measure.IndexHeight16, pop), 0.001, "1.78^1.6")
	assert.InDelta(t, 4.744, backcalc.ScaleFor(measure.IndexHeight27, pop), 0.001, "1.78^2.7")
}

// TestAbsolute_Deterministic — identical inputs, identical results.
func TestAbsolute_Deterministic(t *testing.T) {
	pop := population.CanonicalReference(measure.Male, population.DefaultFormulas())
	a := backcalc.Absolute(lvddDef(), measure.Male, pop)
	b := backcalc.Absolute(lvddDef(), measure.Male, pop)
	assert.Equal(t, a, b)
}
