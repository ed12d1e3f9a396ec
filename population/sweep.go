package population

import "github.com/alloscale/alloscale/measure"

// SweepByHeight returns one Characteristics per height in the range, BMI
// held fixed. The sequence is ascending in height and fully deterministic.
func SweepByHeight(sex measure.Sex, fixedBMI float64, heights Range, f Formulas) ([]Characteristics, error) {
	if fixedBMI <= 0 {
		return nil, ErrBadFixedValue
	}
	if err := heights.Validate(); err != nil {
		return nil, err
	}

	values := heights.Values()
	out := make([]Characteristics, 0, len(values))
	for _, h := range values {
		out = append(out, fromHeightBMI(sex, h, fixedBMI, f))
	}
	return out, nil
}

// SweepByBMI returns one Characteristics per BMI in the range, height held
// fixed. The sequence is ascending in BMI and fully deterministic.
func SweepByBMI(sex measure.Sex, fixedHeightCm float64, bmis Range, f Formulas) ([]Characteristics, error) {
	if fixedHeightCm <= 0 {
		return nil, ErrBadFixedValue
	}
	if err := bmis.Validate(); err != nil {
		return nil, err
	}

	values := bmis.Values()
	out := make([]Characteristics, 0, len(values))
	for _, bmi := range values {
		out = append(out, fromHeightBMI(sex, fixedHeightCm, bmi, f))
	}
	return out, nil
}
