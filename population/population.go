package population

import (
	"github.com/alloscale/alloscale/bodycomp"
	"github.com/alloscale/alloscale/measure"
)

// Canonical reference anthropometrics: the literature-standard populations
// indexed statistics are published against.
const (
	// CanonicalMaleHeightCm is the canonical male height.
	CanonicalMaleHeightCm = 178.0
	// CanonicalFemaleHeightCm is the canonical female height.
	CanonicalFemaleHeightCm = 164.0
	// CanonicalBMI applies to both canonical references.
	CanonicalBMI = 25.0
)

// fromHeightBMI builds a fully derived Characteristics from height and BMI:
// weight follows from BMI, BSA and LBM from the selected formulas.
func fromHeightBMI(sex measure.Sex, heightCm, bmi float64, f Formulas) Characteristics {
	hm := heightCm / 100
	weight := bmi * hm * hm
	return Characteristics{
		Sex:      sex,
		HeightCm: heightCm,
		WeightKg: weight,
		BMI:      bmi,
		BSA:      bodycomp.BSA(f.BSA, weight, heightCm),
		LBM:      bodycomp.LBM(f.LBM, weight, heightCm, sex),
	}
}

// CanonicalReference returns the canonical population for a sex, with BSA
// and LBM derived under the given formulas. A fresh value is built on every
// call; the canonical constants are never mutated.
func CanonicalReference(sex measure.Sex, f Formulas) Characteristics {
	height := CanonicalMaleHeightCm
	if sex == measure.Female {
		height = CanonicalFemaleHeightCm
	}
	return fromHeightBMI(sex, height, CanonicalBMI, f)
}
