package curve

import "errors"

var (
	// ErrNoIndexedStatistic indicates a measurement with no published index
	// for either sex; there is no axis to plot against.
	ErrNoIndexedStatistic = errors.New("curve: measurement has no indexed statistic")
	// ErrBadOptions indicates non-positive FixedBMI/step or negative tolerance.
	ErrBadOptions = errors.New("curve: invalid options")
)
