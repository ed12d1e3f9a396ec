package bodycomp

// BSAFormula names a published body-surface-area formula.
type BSAFormula string

const (
	// BSADuBois — Du Bois & Du Bois (1916). The registry default.
	BSADuBois BSAFormula = "dubois"
	// BSAMosteller — Mosteller (1987).
	BSAMosteller BSAFormula = "mosteller"
	// BSAHaycock — Haycock, Schwartz & Wisotsky (1978).
	BSAHaycock BSAFormula = "haycock"
	// BSAGehanGeorge — Gehan & George (1970).
	BSAGehanGeorge BSAFormula = "gehan-george"
	// BSABoyd — Boyd (1935).
	BSABoyd BSAFormula = "boyd"
	// BSADreyer — Dreyer (1915), weight-only.
	BSADreyer BSAFormula = "dreyer"
	// BSALivingstonLee — Livingston & Lee (2001), weight-only.
	BSALivingstonLee BSAFormula = "livingston-lee"
)

// LBMFormula names a published lean-body-mass formula.
type LBMFormula string

const (
	// LBMBoer — Boer (1984). The registry default.
	LBMBoer LBMFormula = "boer"
	// LBMHumeWeyers — Hume & Weyers (1971).
	LBMHumeWeyers LBMFormula = "hume-weyers"
	// LBMYu — Yu et al. (2013), age-adjusted.
	LBMYu LBMFormula = "yu"
	// LBMLee — Lee et al. (2000), age- and ethnicity-adjusted skeletal
	// muscle prediction used as a fat-free-mass proxy.
	LBMLee LBMFormula = "lee"
	// LBMKuch — Kuch et al. (2001), allometric power law.
	LBMKuch LBMFormula = "kuch"
	// LBMJanmahasatian — Janmahasatian et al. (2005), BMI-based.
	LBMJanmahasatian LBMFormula = "janmahasatian"
)

// DefaultAge is the age (years) assumed when a caller does not supply one.
const DefaultAge = 50.0

// Option adjusts the optional covariates of an LBM formula.
// Option constructors validate and panic on meaningless input (programmer
// error); the formulas themselves never panic.
type Option func(*config)

type config struct {
	age       float64
	ethnicity Ethnicity
}

func newConfig(opts ...Option) config {
	c := config{age: DefaultAge, ethnicity: EthnicityWhite}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// WithAge sets the subject's age in years. Panics if years <= 0.
func WithAge(years float64) Option {
	if years <= 0 {
		panic("bodycomp: WithAge(years<=0)")
	}
	return func(c *config) {
		c.age = years
	}
}

// WithEthnicity sets the subject's ethnicity from a free-form string,
// normalized through the alias table (unknown → EthnicityOther). Never
// panics: unknown ethnicity is a documented soft condition.
func WithEthnicity(s string) Option {
	e := NormalizeEthnicity(s)
	return func(c *config) {
		c.ethnicity = e
	}
}

// FormulaInfo describes one registered formula for presentation pickers.
type FormulaInfo struct {
	ID       string
	Name     string
	Citation string
}

// BSAFormulas enumerates the registered BSA formulas in stable order.
func BSAFormulas() []FormulaInfo {
	return []FormulaInfo{
		{ID: string(BSADuBois), Name: "Du Bois", Citation: "Du Bois & Du Bois, Arch Intern Med 1916"},
		{ID: string(BSAMosteller), Name: "Mosteller", Citation: "Mosteller, N Engl J Med 1987"},
		{ID: string(BSAHaycock), Name: "Haycock", Citation: "Haycock et al., J Pediatr 1978"},
		{ID: string(BSAGehanGeorge), Name: "Gehan–George", Citation: "Gehan & George, Cancer Chemother Rep 1970"},
		{ID: string(BSABoyd), Name: "Boyd", Citation: "Boyd, Univ Minnesota Press 1935"},
		{ID: string(BSADreyer), Name: "Dreyer", Citation: "Dreyer & Ray, Phil Trans R Soc 1912"},
		{ID: string(BSALivingstonLee), Name: "Livingston–Lee", Citation: "Livingston & Lee, Am J Physiol 2001"},
	}
}

// LBMFormulas enumerates the registered LBM formulas in stable order.
func LBMFormulas() []FormulaInfo {
	return []FormulaInfo{
		{ID: string(LBMBoer), Name: "Boer", Citation: "Boer, Am J Physiol 1984"},
		{ID: string(LBMHumeWeyers), Name: "Hume–Weyers", Citation: "Hume & Weyers, J Clin Pathol 1971"},
		{ID: string(LBMYu), Name: "Yu", Citation: "Yu et al., 2013"},
		{ID: string(LBMLee), Name: "Lee", Citation: "Lee et al., Am J Clin Nutr 2000"},
		{ID: string(LBMKuch), Name: "Kuch", Citation: "Kuch et al., 2001"},
		{ID: string(LBMJanmahasatian), Name: "Janmahasatian", Citation: "Janmahasatian et al., Clin Pharmacokinet 2005"},
	}
}
