// Package bodycomp estimates body composition — body surface area (BSA) and
// lean body mass (LBM) — from weight, height and sex, through a registry of
// named, published formulas.
//
// 🚀 Why a registry?
//
//	Reference papers index their statistics against BSA or LBM computed with
//	whichever formula the authors favored. Recovering absolute values
//	therefore needs the same pluggable choice: seven BSA variants (DuBois,
//	Mosteller, Haycock, Gehan–George, Boyd, Dreyer, Livingston–Lee) and six
//	LBM variants (Boer, Hume–Weyers, Yu, Lee, Kuch, Janmahasatian).
//
// ✨ Contract:
//   - Every formula is a pure function of its inputs; no state, no I/O.
//   - Weight (kg) and height (cm) must be strictly positive; ValidateInputs
//     checks external input before it reaches a formula.
//   - An unrecognized formula id does NOT fail: it silently falls back to
//     the default formula (DuBois for BSA, Boer for LBM). This permissive
//     behavior is intentional, centralized in one resolver per registry, and
//     pinned by tests — do not "fix" it to an error.
//   - Age defaults to 50 years; ethnicity defaults to "white" and is
//     normalized case-insensitively through an alias table, with unknown
//     strings mapped to "other".
//
// ⚙️ Usage:
//
//	bsa := bodycomp.BSA(bodycomp.BSAMosteller, 79.1, 178)       // ≈ 1.98 m²
//	lbm := bodycomp.LBM(bodycomp.LBMBoer, 79.1, 178, measure.Male)
//
//	// Lee uses age and ethnicity; both arrive as options.
//	sm := bodycomp.LBM(bodycomp.LBMLee, 79.1, 178, measure.Male,
//	    bodycomp.WithAge(40), bodycomp.WithEthnicity("Asian"))
package bodycomp
