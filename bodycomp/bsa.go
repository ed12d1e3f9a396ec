package bodycomp

import "math"

// bsaFn computes body surface area (m²) from weight (kg) and height (cm).
type bsaFn func(weightKg, heightCm float64) float64

// bsaRegistry maps formula ids to their implementations. Resolution, and
// the documented silent fallback, lives in resolveBSA only.
var bsaRegistry = map[BSAFormula]bsaFn{
	BSADuBois:        bsaDuBois,
	BSAMosteller:     bsaMosteller,
	BSAHaycock:       bsaHaycock,
	BSAGehanGeorge:   bsaGehanGeorge,
	BSABoyd:          bsaBoyd,
	BSADreyer:        bsaDreyer,
	BSALivingstonLee: bsaLivingstonLee,
}

// resolveBSA returns the implementation for the id, or the DuBois default
// when the id is unknown. The fallback is specified behavior (soft
// UnknownFormula), kept in this single resolver so it stays auditable.
func resolveBSA(f BSAFormula) bsaFn {
	if fn, ok := bsaRegistry[f]; ok {
		return fn
	}
	return bsaDuBois
}

// BSA computes body surface area (m²) with the named formula.
// Inputs must be strictly positive (see ValidateInputs); an unrecognized
// formula id silently falls back to DuBois.
func BSA(f BSAFormula, weightKg, heightCm float64) float64 {
	return resolveBSA(f)(weightKg, heightCm)
}

// bsaDuBois: 0.007184 · W^0.425 · H^0.725.
func bsaDuBois(w, h float64) float64 {
	return 0.007184 * math.Pow(w, 0.425) * math.Pow(h, 0.725)
}

// bsaMosteller: √(W·H/3600).
func bsaMosteller(w, h float64) float64 {
	return math.Sqrt(w * h / 3600)
}

// bsaHaycock: 0.024265 · W^0.5378 · H^0.3964.
func bsaHaycock(w, h float64) float64 {
	return 0.024265 * math.Pow(w, 0.5378) * math.Pow(h, 0.3964)
}

// bsaGehanGeorge: 0.0235 · W^0.51456 · H^0.42246.
func bsaGehanGeorge(w, h float64) float64 {
	return 0.0235 * math.Pow(w, 0.51456) * math.Pow(h, 0.42246)
}

// bsaBoyd: 0.0003207 · H^0.3 · Wg^(0.7285 − 0.0188·log10(Wg)), weight in grams.
func bsaBoyd(w, h float64) float64 {
	wg := w * 1000
	exp := 0.7285 - 0.0188*math.Log10(wg)
	return 0.0003207 * math.Pow(h, 0.3) * math.Pow(wg, exp)
}

// bsaDreyer: 0.1 · W^(2/3), weight-only.
func bsaDreyer(w, _ float64) float64 {
	return 0.1 * math.Pow(w, 2.0/3.0)
}

// bsaLivingstonLee: 0.1173 · W^0.6466, weight-only.
func bsaLivingstonLee(w, _ float64) float64 {
	return 0.1173 * math.Pow(w, 0.6466)
}
