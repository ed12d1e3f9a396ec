package bodycomp

import (
	"math"

	"github.com/alloscale/alloscale/measure"
)

// lbmFn computes lean body mass (kg) from weight (kg), height (cm), sex and
// the optional covariates.
type lbmFn func(w, h float64, sex measure.Sex, c config) float64

// lbmRegistry maps formula ids to their implementations. As with BSA, the
// silent unknown-id fallback lives in resolveLBM only.
var lbmRegistry = map[LBMFormula]lbmFn{
	LBMBoer:          lbmBoer,
	LBMHumeWeyers:    lbmHumeWeyers,
	LBMYu:            lbmYu,
	LBMLee:           lbmLee,
	LBMKuch:          lbmKuch,
	LBMJanmahasatian: lbmJanmahasatian,
}

// resolveLBM returns the implementation for the id, or the Boer default
// when the id is unknown (soft UnknownFormula, specified behavior).
func resolveLBM(f LBMFormula) lbmFn {
	if fn, ok := lbmRegistry[f]; ok {
		return fn
	}
	return lbmBoer
}

// LBM computes lean body mass (kg) with the named formula.
// Inputs must be strictly positive (see ValidateInputs). Age defaults to
// DefaultAge and ethnicity to white unless overridden via options; an
// unrecognized formula id silently falls back to Boer.
func LBM(f LBMFormula, weightKg, heightCm float64, sex measure.Sex, opts ...Option) float64 {
	return resolveLBM(f)(weightKg, heightCm, sex, newConfig(opts...))
}

// lbmBoer — Boer (1984):
//
//	male:   0.407·W + 0.267·H − 19.2
//	female: 0.252·W + 0.473·H − 48.3
func lbmBoer(w, h float64, sex measure.Sex, _ config) float64 {
	if sex == measure.Female {
		return 0.252*w + 0.473*h - 48.3
	}
	return 0.407*w + 0.267*h - 19.2
}

// lbmHumeWeyers — Hume & Weyers (1971):
//
//	male:   0.32810·W + 0.33929·H − 29.5336
//	female: 0.29569·W + 0.41813·H − 43.2933
func lbmHumeWeyers(w, h float64, sex measure.Sex, _ config) float64 {
	if sex == measure.Female {
		return 0.29569*w + 0.41813*h - 43.2933
	}
	return 0.32810*w + 0.33929*h - 29.5336
}

// lbmYu — Yu et al. (2013), age-adjusted linear model.
func lbmYu(w, h float64, sex measure.Sex, c config) float64 {
	if sex == measure.Female {
		return -17.6 + 0.222*w + 0.295*h - 0.044*c.age
	}
	return -18.4 + 0.332*w + 0.331*h - 0.044*c.age
}

// lbmLee — Lee et al. (2000) total-body skeletal muscle prediction, used as
// a fat-free-mass proxy. Height enters in meters; sex and ethnicity enter
// as published adjustment terms (Asian −1.2, Black +1.4, otherwise 0).
func lbmLee(w, h float64, sex measure.Sex, c config) float64 {
	hm := h / 100
	sexTerm := 1.0
	if sex == measure.Female {
		sexTerm = 0.0
	}

	race := 0.0
	switch c.ethnicity {
	case EthnicityAsian:
		race = -1.2
	case EthnicityBlack:
		race = 1.4
	}

	return 0.244*w + 7.80*hm - 0.098*c.age + 6.6*sexTerm + race - 3.3
}

// lbmKuch — Kuch et al. (2001) allometric power law, height in meters:
//
//	male:   5.1 · Hm^1.14 · W^0.41
//	female: 4.04 · Hm^1.07 · W^0.42
func lbmKuch(w, h float64, sex measure.Sex, _ config) float64 {
	hm := h / 100
	if sex == measure.Female {
		return 4.04 * math.Pow(hm, 1.07) * math.Pow(w, 0.42)
	}
	return 5.1 * math.Pow(hm, 1.14) * math.Pow(w, 0.41)
}

// lbmJanmahasatian — Janmahasatian et al. (2005), BMI-based fat-free mass:
//
//	male:   9270·W / (6680 + 216·BMI)
//	female: 9270·W / (8780 + 244·BMI)
func lbmJanmahasatian(w, h float64, sex measure.Sex, _ config) float64 {
	hm := h / 100
	bmi := w / (hm * hm)
	if sex == measure.Female {
		return 9270 * w / (8780 + 244*bmi)
	}
	return 9270 * w / (6680 + 216*bmi)
}
