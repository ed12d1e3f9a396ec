package bodycomp

import "strings"

// Ethnicity is the normalized ethnicity category consumed by the formulas
// that adjust for it (currently Lee).
type Ethnicity string

const (
	EthnicityWhite    Ethnicity = "white"
	EthnicityBlack    Ethnicity = "black"
	EthnicityHispanic Ethnicity = "hispanic"
	EthnicityMexican  Ethnicity = "mexican"
	EthnicityAsian    Ethnicity = "asian"
	EthnicityOther    Ethnicity = "other"
)

// ethnicityAliases maps lower-cased free-form inputs onto the closed
// category set. Lookups are case-insensitive and whitespace-trimmed.
var ethnicityAliases = map[string]Ethnicity{
	"white":     EthnicityWhite,
	"caucasian": EthnicityWhite,
	"european":  EthnicityWhite,

	"black":            EthnicityBlack,
	"african american": EthnicityBlack,
	"african-american": EthnicityBlack,
	"afro-caribbean":   EthnicityBlack,

	"hispanic": EthnicityHispanic,
	"latino":   EthnicityHispanic,
	"latina":   EthnicityHispanic,

	"mexican":          EthnicityMexican,
	"mexican american": EthnicityMexican,
	"mexican-american": EthnicityMexican,

	"asian":        EthnicityAsian,
	"east asian":   EthnicityAsian,
	"south asian":  EthnicityAsian,
	"chinese":      EthnicityAsian,
	"japanese":     EthnicityAsian,
	"korean":       EthnicityAsian,

	"other": EthnicityOther,
	"mixed": EthnicityOther,
}

// NormalizeEthnicity resolves a free-form ethnicity string to one of the
// closed categories. Unknown strings normalize to EthnicityOther — a soft,
// documented default, mirroring the formula registries' permissiveness.
func NormalizeEthnicity(s string) Ethnicity {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return EthnicityWhite
	}
	if e, ok := ethnicityAliases[key]; ok {
		return e
	}
	return EthnicityOther
}
