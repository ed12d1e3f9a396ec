// Package backcalc recovers absolute measurement values from published,
// indexed reference statistics and a reference population.
//
// 🚀 The inversion
//
//	A paper reports LVDD/BSA = 2.3 ± 0.3 cm/m² for men. For the canonical
//	male (BSA ≈ 1.97 m²), the absolute upper-normal diameter is
//	(2.3 + 1.65·0.3) · 1.97 ≈ 5.51 cm. Each index type present for a sex
//	contributes one such estimate; the absolute value is the arithmetic
//	mean of all of them.
//
// ✨ Contract:
//   - The indexed value consumed is always the upper reference limit
//     mean + 1.65·SD (Stat.UpperLimit), never the raw mean.
//   - Each index type scales by its own population factor: bsa→BSA (m²),
//     bmi→BMI, height→H (m), height^1.6/height^2.7/height²→the matching
//     power of H in meters.
//   - Zero available indices is degenerate, not an error: Absolute returns
//     0 with an empty trace, and the validation layer downstream flags it.
//   - Pure and deterministic: identical inputs, bit-identical outputs.
//
// ⚙️ Usage:
//
//	pop := population.CanonicalReference(measure.Male, f)
//	res := backcalc.Absolute(def, measure.Male, pop)
//	// res.Absolute — averaged absolute value
//	// res.Estimates — the per-index trace that produced it
package backcalc
