package coeff_test

import (
	"fmt"

	"github.com/alloscale/alloscale/coeff"
	"github.com/alloscale/alloscale/measure"
	"github.com/alloscale/alloscale/population"
)

// ExampleDerive derives the universal LVDD coefficient under the default
// formulas and prints the verdict.
func ExampleDerive() {
	reg, err := measure.NewRegistry(measure.BuiltinDefinitions())
	if err != nil {
		fmt.Println("registry:", err)
		return
	}

	res, err := coeff.Derive(reg, "lvdd", population.DefaultFormulas())
	if err != nil {
		fmt.Println("derive:", err)
		return
	}

	fmt.Printf("%s = %.2f · LBM^%.2f %s\n",
		res.Name, res.UniversalLBM, res.Exponents.LBM, res.Unit)
	fmt.Printf("sex similarity: %.2f, valid: %v\n",
		res.Validation.SexSimilarity, res.Validation.Valid)
	// Output:
	// LV end-diastolic diameter = 1.44 · LBM^0.33 cm
	// sex similarity: 0.96, valid: true
}
