package measure

// BuiltinDefinitions returns the built-in reference dataset: the published,
// sex-specific indexed statistics this process works from. The external
// data-loading collaborator would normally supply this sequence; shipping it
// as an in-memory constant table keeps the core free of I/O.
//
// Values follow the echocardiographic reference literature (means ± SD of
// measurement/index). Absent (sex, index) pairs were not published and are
// simply omitted.
func BuiltinDefinitions() []Definition {
	return []Definition{
		// ===== LINEAR (cm) =====
		{
			ID: "lvdd", Name: "LV end-diastolic diameter", Unit: "cm",
			Male: map[IndexType]Stat{
				IndexBSA:    {Mean: 2.3, SD: 0.3},
				IndexHeight: {Mean: 2.57, SD: 0.29},
			},
			Female: map[IndexType]Stat{
				IndexBSA:    {Mean: 2.5, SD: 0.3},
				IndexHeight: {Mean: 2.72, SD: 0.30},
			},
		},
		{
			ID: "aorticroot", Name: "Aortic root diameter (sinus of Valsalva)", Unit: "cm",
			Male: map[IndexType]Stat{
				IndexBSA: {Mean: 1.68, SD: 0.18},
			},
			Female: map[IndexType]Stat{
				IndexBSA: {Mean: 1.78, SD: 0.18},
			},
		},
		{
			ID: "rvbasal", Name: "RV basal diameter", Unit: "cm",
			Male: map[IndexType]Stat{
				IndexBSA: {Mean: 1.70, SD: 0.25},
			},
			Female: map[IndexType]Stat{
				IndexBSA: {Mean: 1.78, SD: 0.25},
			},
		},
		{
			ID: "lvotdiam", Name: "LVOT diameter", Unit: "cm",
			Male: map[IndexType]Stat{
				IndexHeight: {Mean: 1.18, SD: 0.08},
			},
			Female: map[IndexType]Stat{
				IndexHeight: {Mean: 1.15, SD: 0.08},
			},
		},

		// ===== AREA (cm²) =====
		// RV end-diastolic area was published for men only; the female side
		// stays absent and back-calculation degenerates gracefully.
		{
			ID: "rvarea", Name: "RV end-diastolic area", Unit: "cm²",
			Male: map[IndexType]Stat{
				IndexBSA: {Mean: 8.8, SD: 1.9},
			},
		},

		// ===== MASS (g) =====
		{
			ID: "lvmass", Name: "LV mass", Unit: "g",
			Male: map[IndexType]Stat{
				IndexBSA:      {Mean: 76, SD: 13},
				IndexHeight27: {Mean: 36, SD: 7},
			},
			Female: map[IndexType]Stat{
				IndexBSA:      {Mean: 66, SD: 11},
				IndexHeight27: {Mean: 34, SD: 6},
			},
		},

		// ===== VOLUME (mL, L/min) =====
		{
			ID: "lvedv", Name: "LV end-diastolic volume", Unit: "mL",
			Male: map[IndexType]Stat{
				IndexBSA: {Mean: 54, SD: 10},
			},
			Female: map[IndexType]Stat{
				IndexBSA: {Mean: 49, SD: 9},
			},
		},
		{
			ID: "lavol", Name: "LA maximal volume", Unit: "mL",
			Male: map[IndexType]Stat{
				IndexBSA: {Mean: 24, SD: 6},
			},
			Female: map[IndexType]Stat{
				IndexBSA: {Mean: 24, SD: 6},
			},
		},
		{
			ID: "cardiacoutput", Name: "Cardiac output", Unit: "L/min",
			Male: map[IndexType]Stat{
				IndexBSA: {Mean: 3.0, SD: 0.6},
			},
			Female: map[IndexType]Stat{
				IndexBSA: {Mean: 3.0, SD: 0.6},
			},
		},
	}
}
