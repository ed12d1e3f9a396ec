package measure

import "fmt"

// Dimension is the dimensional type of a measurement, derived from its
// absolute unit. It decides which scaling exponents apply.
type Dimension int

const (
	// Linear — one-dimensional measurements (diameters, wall thickness).
	Linear Dimension = iota
	// Area — two-dimensional measurements (chamber and valve areas).
	Area
	// Mass — myocardial mass.
	Mass
	// Volume — chamber volumes and flows.
	Volume
)

// String implements fmt.Stringer.
func (d Dimension) String() string {
	switch d {
	case Linear:
		return "linear"
	case Area:
		return "area"
	case Mass:
		return "mass"
	case Volume:
		return "volume"
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

// unitDimensions is the fixed mapping from absolute unit to dimensional
// type. It is the single source of truth: dimensions are derived on demand,
// never stored on a Definition.
var unitDimensions = map[string]Dimension{
	"cm": Linear,
	"mm": Linear,
	"m":  Linear,

	"cm²": Area,
	"mm²": Area,

	"g":  Mass,
	"kg": Mass,

	"mL":    Volume,
	"L":     Volume,
	"L/min": Volume,
}

// DimensionOf classifies an absolute unit. An unrecognized unit returns
// ErrUnknownUnit: this is the one hard failure of the pipeline, and it
// aborts only the record whose unit could not be classified.
func DimensionOf(unit string) (Dimension, error) {
	d, ok := unitDimensions[unit]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	return d, nil
}
