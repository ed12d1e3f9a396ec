package population

import "errors"

var (
	// ErrBadStep indicates a sweep range with step <= 0.
	ErrBadStep = errors.New("population: range step must be > 0")
	// ErrBadRange indicates a sweep range with max < min.
	ErrBadRange = errors.New("population: range max must be >= min")
	// ErrBadCount indicates a sample request with n <= 0.
	ErrBadCount = errors.New("population: sample count must be > 0")
	// ErrBadFixedValue indicates a non-positive fixed BMI or height.
	ErrBadFixedValue = errors.New("population: fixed sweep value must be > 0")
)
