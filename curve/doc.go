// Package curve generates the comparison curves a renderer plots: the
// biological (allometric, LBM-based) prediction against the legacy
// ratiometric line, per sex, on a shared body-size-index axis.
//
// 🚀 The two models
//
//	Ratiometric: value = published indexed upper limit × index. A straight
//	line through the origin, defined for every axis value — even absurd
//	ones, which is exactly its weakness.
//
//	Biological: value = k · LBM^exp, sampled over a realistic population
//	sweep (height at fixed BMI). LBM is only achievable inside the sampled
//	population, so outside that range the biological curve is UNDEFINED and
//	reported as an explicit absence (nil), never as zero and never by
//	extrapolation.
//
// ✨ Axis alignment:
//
//	Population samples rarely land exactly on the externally requested axis
//	grid. Values are aligned by linear interpolation between the two
//	nearest samples; a requested point farther than Options.Tolerance from
//	the nearest sample stays absent.
//
// ⚙️ Usage:
//
//	res, _ := coeff.Derive(reg, "lvdd", population.DefaultFormulas())
//	pts, err := curve.Comparison(def, res,
//	    population.Range{Min: 1.2, Max: 2.6, Step: 0.05}, nil)
//
//	for _, p := range pts {
//	    // p.X, p.BiologicalMale (nil outside range), p.RatiometricMale, ...
//	}
package curve
