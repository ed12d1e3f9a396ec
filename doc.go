// Package alloscale derives body-size-independent scaling coefficients for
// cardiac measurements from published, sex-specific, indexed reference
// statistics.
//
// 🚀 What is alloscale?
//
//	Reference papers publish cardiac normal values divided by a body-size
//	index (BSA, height, BMI…). alloscale inverts that indexing against the
//	canonical reference populations, re-derives the absolute values, and
//	tests whether one allometric coefficient on lean body mass explains
//	both sexes:
//		• bodycomp/   — BSA and LBM formula registry (7 + 6 published variants)
//		• measure/    — measurement definitions, indexed statistics, unit→dimension
//		• scaling/    — dimensional exponent tables + ratiometric/allometric classifier
//		• population/ — canonical references, sweeps, seeded realistic sampler
//		• backcalc/   — indexed statistic → absolute value inversion
//		• coeff/      — universal LBM coefficient derivation + validation
//		• curve/      — biological vs ratiometric comparison curves
//
// ✨ Why alloscale?
//
//   - Pure & deterministic — every operation is a function of its explicit
//     inputs; the one stochastic sampler takes an explicit seed
//   - No I/O — the dataset is an in-memory constant table; results are
//     plain structs for an external renderer
//   - Soft by default — unknown formulas fall back, suspect coefficients
//     warn; only an unclassifiable unit fails hard
//
// Quick sketch:
//
//	registry ──▶ back-calculation ──▶ universal coefficient ──▶ curves
//	   ▲               ▲
//	bodycomp      population
//
// Dive into the per-package docs and the runnable demos under examples/.
//
//	go get github.com/alloscale/alloscale
package alloscale
