package scaling_test

import (
	"testing"

	"github.com/alloscale/alloscale/measure"
	"github.com/alloscale/alloscale/scaling"
	"github.com/stretchr/testify/assert"
)

// TestExponentsFor_CanonicalTable pins the four empirical triples.
func TestExponentsFor_CanonicalTable(t *testing.T) {
	cases := []struct {
		dim  measure.Dimension
		want scaling.Exponents
	}{
		{measure.Linear, scaling.Exponents{LBM: 0.33, BSA: 0.50, Height: 1.00}},
		{measure.Area, scaling.Exponents{LBM: 0.67, BSA: 1.00, Height: 2.00}},
		{measure.Mass, scaling.Exponents{LBM: 1.00, BSA: 1.50, Height: 2.10}},
		{measure.Volume, scaling.Exponents{LBM: 1.00, BSA: 1.50, Height: 2.10}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, scaling.ExponentsFor(c.dim), "dimension %v", c.dim)
	}
}

// TestTheoreticalExponents_DivergeOnlyOnHeight verifies the documented
// alternative: identical except the geometric 3.0 height exponent for
// mass and volume.
func TestTheoreticalExponents_DivergeOnlyOnHeight(t *testing.T) {
	for _, d := range []measure.Dimension{measure.Linear, measure.Area} {
		assert.Equal(t, scaling.ExponentsFor(d), scaling.TheoreticalExponentsFor(d), "dimension %v", d)
	}
	for _, d := range []measure.Dimension{measure.Mass, measure.Volume} {
		emp, theo := scaling.ExponentsFor(d), scaling.TheoreticalExponentsFor(d)
		assert.Equal(t, emp.LBM, theo.LBM)
		assert.Equal(t, emp.BSA, theo.BSA)
		assert.Equal(t, 3.00, theo.Height, "dimension %v", d)
	}
}

// TestClassify_RatiometricOnlyWhenMatchedAndUnity walks every
// (dimension, variable) pair: ratiometric iff dimensionally matched and
// the exponent is exactly 1.0.
func TestClassify_RatiometricOnlyWhenMatchedAndUnity(t *testing.T) {
	ratiometric := map[measure.Dimension]scaling.Variable{
		measure.Linear: scaling.VarHeight,
		measure.Area:   scaling.VarBSA,
		measure.Mass:   scaling.VarLBM,
		measure.Volume: scaling.VarLBM,
	}

	dims := []measure.Dimension{measure.Linear, measure.Area, measure.Mass, measure.Volume}
	vars := []scaling.Variable{scaling.VarLBM, scaling.VarBSA, scaling.VarHeight}

	for _, d := range dims {
		for _, v := range vars {
			want := scaling.Allometric
			if ratiometric[d] == v {
				want = scaling.Ratiometric
			}
			assert.Equal(t, want, scaling.Classify(d, v), "dimension %v, variable %v", d, v)
		}
	}
}

// TestExponents_For maps variables onto triple fields.
func TestExponents_For(t *testing.T) {
	e := scaling.Exponents{LBM: 0.33, BSA: 0.50, Height: 1.00}
	assert.Equal(t, 0.33, e.For(scaling.VarLBM))
	assert.Equal(t, 0.50, e.For(scaling.VarBSA))
	assert.Equal(t, 1.00, e.For(scaling.VarHeight))
}
