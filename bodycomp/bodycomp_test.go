package bodycomp_test

import (
	"testing"

	"github.com/alloscale/alloscale/bodycomp"
	"github.com/alloscale/alloscale/measure"
	"github.com/stretchr/testify/assert"
)

// Canonical male reference anthropometrics used across these tests.
const (
	refWeight = 79.1
	refHeight = 178.0
)

// TestBSA_DuBoisReference verifies DuBois against the canonical male
// reference population: ≈ 1.97 m².
func TestBSA_DuBoisReference(t *testing.T) {
	got := bodycomp.BSA(bodycomp.BSADuBois, refWeight, refHeight)
	assert.InDelta(t, 1.97, got, 0.01, "DuBois BSA for 79.1 kg / 178 cm")
}

// TestBSA_Mosteller cross-checks Mosteller's closed form.
func TestBSA_Mosteller(t *testing.T) {
	got := bodycomp.BSA(bodycomp.BSAMosteller, refWeight, refHeight)
	assert.InDelta(t, 1.978, got, 0.005)
}

// TestBSA_AllFormulasPlausible keeps every variant inside the plausible
// band for the reference male; formulas differ, but not wildly.
func TestBSA_AllFormulasPlausible(t *testing.T) {
	for _, info := range bodycomp.BSAFormulas() {
		got := bodycomp.BSA(bodycomp.BSAFormula(info.ID), refWeight, refHeight)
		assert.Greater(t, got, 1.7, "%s BSA too low", info.ID)
		assert.Less(t, got, 2.2, "%s BSA too high", info.ID)
	}
}

// TestBSA_UnknownFormulaFallsBack pins the documented permissive behavior:
// an unrecognized id returns exactly the DuBois value, it does not fail.
func TestBSA_UnknownFormulaFallsBack(t *testing.T) {
	want := bodycomp.BSA(bodycomp.BSADuBois, 70, 170)
	got := bodycomp.BSA(bodycomp.BSAFormula("nonexistent"), 70, 170)
	assert.Equal(t, want, got, "unknown BSA formula must fall back to DuBois")
}

// TestLBM_BoerBothSexes verifies the Boer coefficients for the canonical
// male and female references.
func TestLBM_BoerBothSexes(t *testing.T) {
	male := bodycomp.LBM(bodycomp.LBMBoer, refWeight, refHeight, measure.Male)
	assert.InDelta(t, 60.5, male, 0.1, "Boer male LBM for 79.1 kg / 178 cm")

	female := bodycomp.LBM(bodycomp.LBMBoer, 67.2, 164, measure.Female)
	assert.InDelta(t, 46.2, female, 0.1, "Boer female LBM for 67.2 kg / 164 cm")
}

// TestLBM_UnknownFormulaFallsBack pins the Boer fallback.
func TestLBM_UnknownFormulaFallsBack(t *testing.T) {
	want := bodycomp.LBM(bodycomp.LBMBoer, 70, 170, measure.Male)
	got := bodycomp.LBM(bodycomp.LBMFormula("nonexistent"), 70, 170, measure.Male)
	assert.Equal(t, want, got, "unknown LBM formula must fall back to Boer")
}

// TestLBM_AllFormulasOrdered sanity-checks every variant: positive and
// below total body weight, for both sexes.
func TestLBM_AllFormulasOrdered(t *testing.T) {
	cases := []struct {
		sex    measure.Sex
		weight float64
		height float64
	}{
		{measure.Male, refWeight, refHeight},
		{measure.Female, 67.2, 164},
	}
	for _, info := range bodycomp.LBMFormulas() {
		for _, c := range cases {
			got := bodycomp.LBM(bodycomp.LBMFormula(info.ID), c.weight, c.height, c.sex)
			assert.Greater(t, got, 0.0, "%s/%s must be positive", info.ID, c.sex)
			assert.Less(t, got, c.weight, "%s/%s must be below body weight", info.ID, c.sex)
		}
	}
}

// TestLBM_LeeEthnicityAdjustment verifies the published race terms:
// black +1.4, asian −1.2, everything else 0 relative to white.
func TestLBM_LeeEthnicityAdjustment(t *testing.T) {
	base := bodycomp.LBM(bodycomp.LBMLee, refWeight, refHeight, measure.Male)

	black := bodycomp.LBM(bodycomp.LBMLee, refWeight, refHeight, measure.Male,
		bodycomp.WithEthnicity("African American"))
	assert.InDelta(t, base+1.4, black, 1e-9)

	asian := bodycomp.LBM(bodycomp.LBMLee, refWeight, refHeight, measure.Male,
		bodycomp.WithEthnicity("ASIAN"))
	assert.InDelta(t, base-1.2, asian, 1e-9)

	unknown := bodycomp.LBM(bodycomp.LBMLee, refWeight, refHeight, measure.Male,
		bodycomp.WithEthnicity("martian"))
	assert.InDelta(t, base, unknown, 1e-9, "unknown ethnicity normalizes to other (no term)")
}

// TestLBM_AgeDefault verifies the documented default of 50 years.
func TestLBM_AgeDefault(t *testing.T) {
	implicit := bodycomp.LBM(bodycomp.LBMYu, refWeight, refHeight, measure.Male)
	explicit := bodycomp.LBM(bodycomp.LBMYu, refWeight, refHeight, measure.Male,
		bodycomp.WithAge(bodycomp.DefaultAge))
	assert.Equal(t, explicit, implicit)
}

// TestWithAge_PanicsOnNonPositive — option constructors validate and panic.
func TestWithAge_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { bodycomp.WithAge(0) })
	assert.Panics(t, func() { bodycomp.WithAge(-3) })
}

// TestNormalizeEthnicity covers the alias table and its defaults.
func TestNormalizeEthnicity(t *testing.T) {
	cases := []struct {
		in   string
		want bodycomp.Ethnicity
	}{
		{"White", bodycomp.EthnicityWhite},
		{"  caucasian ", bodycomp.EthnicityWhite},
		{"AFRICAN-AMERICAN", bodycomp.EthnicityBlack},
		{"Latino", bodycomp.EthnicityHispanic},
		{"mexican american", bodycomp.EthnicityMexican},
		{"Korean", bodycomp.EthnicityAsian},
		{"", bodycomp.EthnicityWhite},
		{"klingon", bodycomp.EthnicityOther},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, bodycomp.NormalizeEthnicity(c.in), "input %q", c.in)
	}
}

// TestValidateInputs covers the strict-positivity contract.
func TestValidateInputs(t *testing.T) {
	assert.NoError(t, bodycomp.ValidateInputs(70, 170))
	assert.ErrorIs(t, bodycomp.ValidateInputs(0, 170), bodycomp.ErrNonPositiveWeight)
	assert.ErrorIs(t, bodycomp.ValidateInputs(70, -1), bodycomp.ErrNonPositiveHeight)
}
