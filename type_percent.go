package wealthplan

import "github.com/shopspring/decimal"

// Percent represents a percentage value (50 means 50%).
type Percent struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	precision := decimal.New(1, -4)
	return p.value.Sub(q.value).Abs().LessThan(precision)
}

func (p Percent) IsZero() bool               { return p.value.IsZero() }
func (p Percent) IsNegative() bool           { return p.value.IsNegative() }
func (p Percent) Abs() Percent               { return Percent{value: p.value.Abs()} }
func (p Percent) GreaterThan(q Percent) bool { return p.value.GreaterThan(q.value) }
func (p Percent) LessThan(q Percent) bool    { return p.value.LessThan(q.value) }
func (p Percent) Value() decimal.Decimal     { return p.value }

func (p Percent) String() string {
	return p.value.StringFixed(2) + "%"
}

func (p Percent) SignedString() string {
	if p.value.IsZero() {
		return "-"
	}
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}

func (p Percent) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

func (p *Percent) UnmarshalJSON(data []byte) error {
	return p.value.UnmarshalJSON(data)
}
