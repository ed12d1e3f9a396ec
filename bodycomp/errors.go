package bodycomp

import "errors"

var (
	// ErrNonPositiveWeight indicates weight <= 0 kg.
	ErrNonPositiveWeight = errors.New("bodycomp: weight must be > 0 kg")
	// ErrNonPositiveHeight indicates height <= 0 cm.
	ErrNonPositiveHeight = errors.New("bodycomp: height must be > 0 cm")
)

// ValidateInputs checks the strict-positivity contract shared by every
// formula. Callers accepting external anthropometrics run this before
// computing; the formulas themselves assume it holds.
func ValidateInputs(weightKg, heightCm float64) error {
	if weightKg <= 0 {
		return ErrNonPositiveWeight
	}
	if heightCm <= 0 {
		return ErrNonPositiveHeight
	}
	return nil
}
