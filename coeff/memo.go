package coeff

import (
	"sync"

	"github.com/alloscale/alloscale/measure"
	"github.com/alloscale/alloscale/population"
)

// memoKey identifies one derivation: measurement id plus the two formula
// selections. Nothing else influences a Result.
type memoKey struct {
	id       string
	formulas population.Formulas
}

// Memo caches successful derivations for repeated identical requests from
// a presentation layer. Derive itself stays pure; the memoizer is a wrapper
// and purely an optimization — dropping it never changes any output.
type Memo struct {
	reg *measure.Registry

	mu    sync.RWMutex
	cache map[memoKey]Result
}

// NewMemo wraps a registry with a derivation cache.
func NewMemo(reg *measure.Registry) *Memo {
	return &Memo{
		reg:   reg,
		cache: make(map[memoKey]Result),
	}
}

// Derive returns the cached result for (id, formulas) or computes and
// stores it. Errors (unknown id, unknown unit) are never cached; a fixed
// registry would return the identical error each time anyway.
func (m *Memo) Derive(id string, f population.Formulas) (Result, error) {
	key := memoKey{id: id, formulas: f}

	m.mu.RLock()
	res, ok := m.cache[key]
	m.mu.RUnlock()
	if ok {
		return res, nil
	}

	res, err := Derive(m.reg, id, f)
	if err != nil {
		return Result{}, err
	}

	m.mu.Lock()
	m.cache[key] = res
	m.mu.Unlock()
	return res, nil
}

// Len reports the number of cached derivations.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cache)
}
