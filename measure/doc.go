// Package measure defines the data model for published cardiac reference
// measurements: the measurement definitions, their per-sex indexed
// statistics, and the derivation of a measurement's dimensional type from
// its absolute unit.
//
// 🚀 What is a measurement here?
//
//	A published reference value is almost never reported as an absolute
//	number; it is indexed — divided by a body-size variable such as BSA
//	(m²), height (m), height² or BMI. A Definition therefore carries, per
//	sex, a sparse map from IndexType to the published (mean, SD) pair.
//	Absent index types are simply not present in the map; there are no
//	sentinel entries.
//
// ✨ Key invariants:
//   - A measurement's dimensional type (Linear/Area/Mass/Volume) is derived
//     from its absolute unit through a fixed unit table — it is never stored
//     redundantly. An unrecognized unit is the one hard failure in the whole
//     pipeline (ErrUnknownUnit): every downstream computation depends on a
//     valid dimension, so classification must fail loudly.
//   - Wherever a published indexed statistic is consumed, the value used is
//     the upper reference limit mean + 1.65·SD (one-sided 95th percentile),
//     exposed as Stat.UpperLimit.
//   - Registry is an immutable, ordered lookup constructed once at startup;
//     an unknown measurement id is a soft miss (ok=false), never an error.
//
// ⚙️ Usage:
//
//	reg, err := measure.NewRegistry(measure.BuiltinDefinitions())
//	if err != nil { ... }
//
//	def, ok := reg.Get("lvdd")
//	if !ok { ... }
//	dim, err := def.Dimension() // Linear, from unit "cm"
//
// See backcalc and coeff for the consumers of this model.
package measure
