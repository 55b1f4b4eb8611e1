package divitrack

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.0f%%", p)
}

// Of returns the given fraction of m, exact.
func (p Percent) Of(m Money) Money {
	rate := decimal.NewFromFloat(float64(p)).Div(decimal.NewFromInt(100))
	return Money{value: m.value.Mul(rate), cur: m.cur}
}

// Slabs are the income tax slab rates the estimator accepts.
var Slabs = []Percent{0, 10, 20, 30}

// ParseSlab validates a slab percentage against the accepted rates.
func ParseSlab(v int) (Percent, error) {
	for _, s := range Slabs {
		if s.Equal(Percent(v)) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("invalid tax slab %d%%: want one of 0, 10, 20 or 30", v)
}
