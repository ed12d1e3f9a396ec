package coeff_test

import (
	"testing"

	"github.com/alloscale/alloscale/coeff"
	"github.com/alloscale/alloscale/measure"
	"github.com/alloscale/alloscale/population"
)

// BenchmarkDerive measures one full derivation (both sexes, validation).
func BenchmarkDerive(b *testing.B) {
	reg, err := measure.NewRegistry(measure.BuiltinDefinitions())
	if err != nil {
		b.Fatal(err)
	}
	f := population.DefaultFormulas()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := coeff.Derive(reg, "lvdd", f); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMemoDerive measures the memoized hot path.
func BenchmarkMemoDerive(b *testing.B) {
	reg, err := measure.NewRegistry(measure.BuiltinDefinitions())
	if err != nil {
		b.Fatal(err)
	}
	memo := coeff.NewMemo(reg)
	f := population.DefaultFormulas()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := memo.Derive("lvdd", f); err != nil {
			b.Fatal(err)
		}
	}
}
