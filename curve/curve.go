package curve

import (
	"fmt"
	"sort"

	"github.com/alloscale/alloscale/backcalc"
	"github.com/alloscale/alloscale/coeff"
	"github.com/alloscale/alloscale/measure"
	"github.com/alloscale/alloscale/population"
)

// Options tunes curve generation. The zero value is not meaningful; start
// from DefaultOptions.
type Options struct {
	// FixedBMI is held constant during the height sweep that produces the
	// biological samples.
	FixedBMI float64
	// HeightStepCm is the internal sweep resolution.
	HeightStepCm float64
	// BMIStep is the internal sweep resolution used when the axis index is
	// BMI (the sweep then runs over BMI at the canonical height).
	BMIStep float64
	// Tolerance is the maximum axis distance to the nearest sample for
	// which a boundary value is still reported; anything farther is absent.
	Tolerance float64
}

// DefaultOptions returns the canonical sweep configuration.
func DefaultOptions() Options {
	return Options{
		FixedBMI:     population.CanonicalBMI,
		HeightStepCm: 1,
		BMIStep:      0.5,
		Tolerance:    0.01,
	}
}

func (o Options) validate() error {
	if o.FixedBMI <= 0 || o.HeightStepCm <= 0 || o.BMIStep <= 0 {
		return fmt.Errorf("%w: steps and fixed BMI must be > 0", ErrBadOptions)
	}
	if o.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance must be >= 0", ErrBadOptions)
	}
	return nil
}

// Point is one axis position of the comparison curve. Biological values
// are nil outside the sampled population's achievable index range, and the
// ratiometric value of a sex is nil when that sex has no published
// statistic for the axis index — absence is always explicit, never zero.
type Point struct {
	// X is the body-size-index value on the requested axis.
	X float64
	// BiologicalMale and BiologicalFemale are the universal-model
	// predictions k·LBM^exp aligned onto X.
	BiologicalMale   *float64
	BiologicalFemale *float64
	// RatiometricMale and RatiometricFemale are the legacy straight lines
	// indexedUpperLimit·X, defined for every X they exist at all.
	RatiometricMale   *float64
	RatiometricFemale *float64
}

// axisIndexFor picks the axis index type: the first type, in canonical
// order, published for either sex.
func axisIndexFor(def measure.Definition) (measure.IndexType, bool) {
	for _, idx := range measure.IndexTypes() {
		if _, ok := def.Male[idx]; ok {
			return idx, true
		}
		if _, ok := def.Female[idx]; ok {
			return idx, true
		}
	}
	return "", false
}

// biologicalSamples sweeps a sex's population and projects each individual
// to (index value, universal-model prediction), sorted ascending in x.
func biologicalSamples(res coeff.Result, sex measure.Sex, idx measure.IndexType, o Options) ([]sample, error) {
	var (
		pops []population.Characteristics
		err  error
	)
	if idx == measure.IndexBMI {
		// A height sweep at fixed BMI cannot move a BMI axis; sweep BMI at
		// the canonical height instead.
		height := population.CanonicalMaleHeightCm
		if sex == measure.Female {
			height = population.CanonicalFemaleHeightCm
		}
		pops, err = population.SweepByBMI(sex, height,
			population.Range{Min: population.MinSampleBMI, Max: population.MaxSampleBMI, Step: o.BMIStep},
			res.Formulas)
	} else {
		pops, err = population.SweepByHeight(sex, o.FixedBMI,
			population.Range{Min: population.MinSampleHeightCm, Max: population.MaxSampleHeightCm, Step: o.HeightStepCm},
			res.Formulas)
	}
	if err != nil {
		return nil, err
	}

	samples := make([]sample, 0, len(pops))
	for _, pop := range pops {
		if pop.LBM <= 0 {
			continue
		}
		samples = append(samples, sample{
			x: backcalc.ScaleFor(idx, pop),
			y: coeff.Predict(res, pop.LBM),
		})
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].x < samples[j].x })
	return samples, nil
}

// Comparison builds the comparison curve for a measurement over the
// requested axis grid. The axis is the measurement's primary published
// index (first present in canonical order); opts may be nil for defaults.
func Comparison(def measure.Definition, res coeff.Result, axis population.Range, opts *Options) ([]Point, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if err := axis.Validate(); err != nil {
		return nil, err
	}

	idx, ok := axisIndexFor(def)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoIndexedStatistic, def.ID)
	}

	maleSamples, err := biologicalSamples(res, measure.Male, idx, o)
	if err != nil {
		return nil, err
	}
	femaleSamples, err := biologicalSamples(res, measure.Female, idx, o)
	if err != nil {
		return nil, err
	}

	maleStat, maleOK := def.Stat(measure.Male, idx)
	femaleStat, femaleOK := def.Stat(measure.Female, idx)

	values := axis.Values()
	points := make([]Point, 0, len(values))
	for _, x := range values {
		p := Point{X: x}
		p.BiologicalMale = interpolate(maleSamples, x, o.Tolerance)
		p.BiologicalFemale = interpolate(femaleSamples, x, o.Tolerance)
		if maleOK {
			p.RatiometricMale = Ratiometric(maleStat, x)
		}
		if femaleOK {
			p.RatiometricFemale = Ratiometric(femaleStat, x)
		}
		points = append(points, p)
	}
	return points, nil
}

// Ratiometric evaluates the legacy straight-line model at an axis value:
// the published indexed upper limit times the index. Exported for renderers
// that plot the line beyond the comparison grid.
func Ratiometric(stat measure.Stat, x float64) *float64 {
	v := stat.UpperLimit() * x
	return &v
}
