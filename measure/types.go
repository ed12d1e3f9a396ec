package measure

// Sex identifies which reference population a statistic describes.
type Sex string

const (
	// Male selects the male reference population.
	Male Sex = "male"
	// Female selects the female reference population.
	Female Sex = "female"
)

// IndexType names the body-size variable a published statistic was divided
// by. The set is closed: iteration happens only over entries actually
// present on a Definition, in the canonical order of IndexTypes().
type IndexType string

const (
	// IndexBSA — measurement divided by body surface area (per m²).
	IndexBSA IndexType = "bsa"
	// IndexBMI — measurement divided by body mass index (per kg/m²).
	IndexBMI IndexType = "bmi"
	// IndexHeight — measurement divided by height in meters (per m).
	IndexHeight IndexType = "height"
	// IndexHeight16 — measurement divided by height^1.6 (per m^1.6).
	IndexHeight16 IndexType = "height^1.6"
	// IndexHeight27 — measurement divided by height^2.7 (per m^2.7).
	IndexHeight27 IndexType = "height^2.7"
	// IndexHeight2 — measurement divided by height² (per m²).
	IndexHeight2 IndexType = "height^2"
)

// IndexTypes returns the closed set of index types in canonical order.
// Consumers iterate this order so that multi-index traversal stays
// deterministic regardless of map iteration order.
func IndexTypes() []IndexType {
	return []IndexType{
		IndexBSA,
		IndexBMI,
		IndexHeight,
		IndexHeight16,
		IndexHeight27,
		IndexHeight2,
	}
}

// UpperLimitZ is the one-sided z-score used to turn a published (mean, SD)
// pair into the upper reference limit (95th percentile).
const UpperLimitZ = 1.65

// Stat is one published indexed statistic: the mean and standard deviation
// of measurement/index for one (sex, index-type) pair.
type Stat struct {
	Mean float64
	SD   float64
}

// UpperLimit returns mean + 1.65·SD, the normal upper limit used uniformly
// wherever a published indexed statistic is consumed.
func (s Stat) UpperLimit() float64 {
	return s.Mean + UpperLimitZ*s.SD
}

// Definition describes one cardiac measurement and its published, per-sex
// indexed statistics. The maps are sparse: an index type that was never
// published for a sex is simply absent.
type Definition struct {
	// ID is the stable lookup key, e.g. "lvdd".
	ID string
	// Name is the human-readable display name.
	Name string
	// Unit is the absolute unit of the raw measurement (e.g. "cm", "g",
	// "mL"). It is the sole source of the measurement's dimensional type;
	// see Dimension.
	Unit string
	// Male and Female map index types to published statistics.
	Male   map[IndexType]Stat
	Female map[IndexType]Stat
}

// Stats returns the statistics map for the given sex. The returned map is
// the definition's own; callers must not mutate it.
func (d Definition) Stats(sex Sex) map[IndexType]Stat {
	if sex == Female {
		return d.Female
	}
	return d.Male
}

// Stat returns the published statistic for (sex, index type), if present.
func (d Definition) Stat(sex Sex, idx IndexType) (Stat, bool) {
	s, ok := d.Stats(sex)[idx]
	return s, ok
}

// Dimension derives the measurement's dimensional type from its absolute
// unit. It returns ErrUnknownUnit (wrapped with the offending unit) when the
// unit is not in the fixed table — constructing and storing a Definition
// never raises; only deriving its dimension can.
func (d Definition) Dimension() (Dimension, error) {
	return DimensionOf(d.Unit)
}
