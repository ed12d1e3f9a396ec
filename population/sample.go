package population

import (
	"math/rand"
	"time"

	"github.com/alloscale/alloscale/measure"
)

// Per-sex height and BMI distributions for the realistic sampler
// (population-survey means and SDs), plus the physiological clamps.
const (
	maleHeightMeanCm = 175.3
	maleHeightSDCm   = 7.1
	maleBMIMean      = 26.6
	maleBMISD        = 4.5

	femaleHeightMeanCm = 161.3
	femaleHeightSDCm   = 6.8
	femaleBMIMean      = 26.5
	femaleBMISD        = 5.4

	// MinSampleHeightCm and MaxSampleHeightCm clamp sampled heights.
	MinSampleHeightCm = 120.0
	MaxSampleHeightCm = 220.0
	// MinSampleBMI and MaxSampleBMI clamp sampled BMIs.
	MinSampleBMI = 16.0
	MaxSampleBMI = 45.0
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SampleRealistic draws n individuals from independent normal distributions
// over height and BMI, clamped to [120,220] cm and [16,45] kg/m². This is
// the only stochastic operation in the core; the explicit seed makes it
// reproducible — identical (sex, n, seed, f) always yields the identical
// sequence.
func SampleRealistic(sex measure.Sex, n int, seed int64, f Formulas) ([]Characteristics, error) {
	if n <= 0 {
		return nil, ErrBadCount
	}

	hMean, hSD := maleHeightMeanCm, maleHeightSDCm
	bMean, bSD := maleBMIMean, maleBMISD
	if sex == measure.Female {
		hMean, hSD = femaleHeightMeanCm, femaleHeightSDCm
		bMean, bSD = femaleBMIMean, femaleBMISD
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]Characteristics, 0, n)
	for i := 0; i < n; i++ {
		h := clamp(rng.NormFloat64()*hSD+hMean, MinSampleHeightCm, MaxSampleHeightCm)
		bmi := clamp(rng.NormFloat64()*bSD+bMean, MinSampleBMI, MaxSampleBMI)
		out = append(out, fromHeightBMI(sex, h, bmi, f))
	}
	return out, nil
}

// SampleRealisticAuto is SampleRealistic with a time-derived seed, for
// interactive callers that do not care about reproducibility. Tests must
// not assume anything about its output beyond the clamps.
func SampleRealisticAuto(sex measure.Sex, n int, f Formulas) ([]Characteristics, error) {
	return SampleRealistic(sex, n, time.Now().UnixNano(), f)
}
