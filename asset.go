package wealthplan

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Mode defines how an asset's planned value is interpreted.
type Mode int

const (
	// Percentage plans the asset as a percentage of the total investment.
	Percentage Mode = iota
	// Amount plans the asset as a fixed amount, independent of the total.
	Amount
)

func (m Mode) String() string {
	switch m {
	case Percentage:
		return "percentage"
	case Amount:
		return "amount"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "percentage":
		return Percentage, nil
	case "amount":
		return Amount, nil
	default:
		return 0, fmt.Errorf("unknown planning mode: %q", s)
	}
}

// Asset is a single line of the allocation plan: a named position with a
// planned target and the actually held amount. Assets are identified by id;
// all mutations go through the owning Portfolio.
type Asset struct {
	id      int64
	name    string
	mode    Mode
	planned decimal.Decimal // percent in [0,100] or amount, per mode
	actual  decimal.Decimal // held amount, always in currency units
}

func (a Asset) ID() int64    { return a.id }
func (a Asset) Name() string { return a.name }
func (a Asset) Mode() Mode   { return a.mode }

// Planned returns the raw planned value. Its unit depends on Mode: a
// percentage of the total investment, or a currency amount.
func (a Asset) Planned() decimal.Decimal { return a.planned }

// Actual returns the currently held amount in currency units.
func (a Asset) Actual() decimal.Decimal { return a.actual }
