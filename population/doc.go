// Package population models the reference populations that published
// indexed statistics describe: the canonical male/female anthropometrics,
// deterministic sweeps over height or BMI, and a seeded realistic sampler.
//
// 🚀 Why populations?
//
//	Back-calculating an absolute measurement from an indexed statistic needs
//	to know the body of the population the statistic was published for.
//	The canonical references (male 178 cm / BMI 25, female 164 cm / BMI 25)
//	are the literature-standard anchors; the sweeps and the sampler feed
//	the comparison-curve generator.
//
// ✨ Invariants:
//   - Characteristics are values: BSA and LBM are always derived from the
//     selected formulas at construction, never asserted independently, and
//     a formula change means building a new value (Recompute), never
//     mutating an existing one.
//   - Everything is deterministic except SampleRealistic, which is the one
//     stochastic operation of the whole core and therefore takes an
//     explicit seed. SampleRealisticAuto exists for interactive use and
//     promises nothing about reproducibility.
//
// ⚙️ Usage:
//
//	f := population.DefaultFormulas()
//	male := population.CanonicalReference(measure.Male, f)
//
//	sweep, err := population.SweepByHeight(measure.Male, 25,
//	    population.Range{Min: 150, Max: 200, Step: 2}, f)
//
//	cohort, err := population.SampleRealistic(measure.Female, 500, 42, f)
package population
