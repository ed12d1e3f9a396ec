// Package coeff derives the universal scaling coefficients that tie an
// absolute cardiac measurement to lean body mass, and validates them.
//
// 🚀 The hypothesis
//
//	Once a biologically matched size variable (LBM) and the dimensionally
//	correct exponent are used, one coefficient should explain both sexes:
//
//	    measurement = k · LBM^exponent
//
//	Derive back-calculates the male and female absolute values from the
//	published indexed statistics, divides each by LBM^exp, and averages the
//	two per-sex coefficients into the universal k. How close the two sexes
//	land (sex similarity ∈ [0,1]) is itself the test of the hypothesis.
//
// ✨ Result anatomy:
//   - UniversalLBM — the single k above (prediction path).
//   - Per-sex BSA coefficients — retained for comparison and reporting
//     only; they never blend into the prediction.
//   - Back-calculation traces per sex — every per-index estimate that
//     contributed.
//   - Validation — warnings (coefficient outside the documented
//     per-dimension bounds, low sex similarity, degenerate sides) collected
//     as data; Valid is true only when no warning fired. Soft by design:
//     one suspect measurement never blocks a batch.
//
// ⚙️ Usage:
//
//	reg, _ := measure.NewRegistry(measure.BuiltinDefinitions())
//	res, err := coeff.Derive(reg, "lvdd", population.DefaultFormulas())
//	if err != nil { ... }                          // unknown id, unknown unit
//	y := coeff.Predict(res, pop.LBM)               // k · LBM^exp
//
// Derive is pure; results are cheap to recompute. Memo adds optional
// memoization keyed by (measurement, BSA formula, LBM formula) for
// presentation responsiveness — an optimization, never a correctness
// requirement.
package coeff
