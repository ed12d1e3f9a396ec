// Package scaling holds the dimensional-analysis exponent tables relating a
// cardiac measurement to the body-size variables (LBM, BSA, height), and the
// ratiometric/allometric classifier built on them.
//
// 🚀 The idea
//
//	A 1-D structure (a diameter) should scale with mass^(1/3); a 2-D
//	structure with mass^(2/3); mass and volume scale with mass itself.
//	Because BSA is itself a ~2/3 power of body mass, the BSA exponents are
//	the LBM exponents × 3/2. Height exponents for mass/volume are empirical.
//
// ✨ Tables
//
//	Two exponent tables ship here. ExponentsFor returns the canonical
//	empirical table (mass/volume height exponent 2.1, as observed in
//	population studies). TheoreticalExponentsFor returns the alternative
//	with the geometric height exponent 3.0 for mass/volume; it is retained
//	as a documented alternative only and is never consulted by the
//	derivation pipeline. The two are deliberately not merged.
//
// ⚙️ Usage:
//
//	exp := scaling.ExponentsFor(measure.Mass)     // {LBM:1.0 BSA:1.5 Height:2.1}
//	cls := scaling.Classify(measure.Mass, scaling.VarLBM) // Ratiometric
//
// Classify returns Ratiometric exactly when the exponent is 1.0 AND the
// variable is dimensionally matched to the measurement (height↔linear,
// bsa↔area, lbm↔mass|volume); every other pairing is Allometric.
package scaling
