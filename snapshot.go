package wealthplan

import "github.com/shopspring/decimal"

// This file is the allocation calculator: pure, deterministic queries over
// the current portfolio state. Derived values are cheap to recompute, so they
// are recomputed on every read instead of being cached.

// unallocatedTolerance absorbs floating-point noise when classifying the
// unallocated amount.
var unallocatedTolerance = decimal.New(1, -2) // 0.01

// balancedShare is the fixed business rule for "close enough to plan":
// an asset within 1% of its planned amount needs no action.
var balancedShare = decimal.New(1, -2) // 0.01

// emphasis bounds: actual share more than 5% off the planned share is
// highlighted for display.
var (
	emphasisHigh = decimal.New(105, -2) // 1.05
	emphasisLow  = decimal.New(95, -2)  // 0.95
)

// AllocationStatus classifies the unallocated amount of a portfolio.
type AllocationStatus int

const (
	// Allocated means the planned total matches the total investment within
	// tolerance.
	Allocated AllocationStatus = iota
	// UnderAllocated means part of the total investment is not planned yet.
	UnderAllocated
	// OverAllocated means the planned total exceeds the total investment.
	OverAllocated
)

func (s AllocationStatus) String() string {
	switch s {
	case Allocated:
		return "allocated"
	case UnderAllocated:
		return "under-allocated"
	case OverAllocated:
		return "over-allocated"
	default:
		return "unknown"
	}
}

// Action is the advice attached to an asset by the calculator.
type Action int

const (
	// Hold means the asset is within 1% of its planned amount.
	Hold Action = iota
	// Buy means the asset is under-held by the suggested amount.
	Buy
	// Sell means the asset is over-held by the suggested amount.
	Sell
)

func (a Action) String() string {
	switch a {
	case Hold:
		return "hold"
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// Emphasis classifies an asset's actual share relative to its planned share,
// for display purposes only.
type Emphasis int

const (
	// Neutral means the actual share is close to the planned share.
	Neutral Emphasis = iota
	// High means the actual share is more than 5% above the planned share.
	High
	// Low means the actual share is more than 5% below the planned share.
	Low
)

// plannedAmount converts an asset's planned value to currency units.
func (p *Portfolio) plannedAmount(a Asset) decimal.Decimal {
	if a.mode == Percentage {
		return a.planned.Div(hundred).Mul(p.totalInvestment)
	}
	return a.planned
}

// PlannedAmount returns the asset's planned amount in currency units.
func (p *Portfolio) PlannedAmount(a Asset) Money {
	return M(p.plannedAmount(a), p.currency)
}

// PlannedPercent returns the asset's planned share of the total investment.
// For an amount-mode asset with a zero total investment, the share is 0.
func (p *Portfolio) PlannedPercent(a Asset) Percent {
	if a.mode == Percentage {
		return P(a.planned)
	}
	if !p.totalInvestment.IsPositive() {
		return P(0)
	}
	return P(a.planned.Div(p.totalInvestment).Mul(hundred))
}

// ActualValue returns the asset's held amount in currency units.
func (p *Portfolio) ActualValue(a Asset) Money {
	return M(a.actual, p.currency)
}

// ActualPercent returns the asset's actual share of the total investment,
// or 0 when the total investment is 0.
func (p *Portfolio) ActualPercent(a Asset) Percent {
	if !p.totalInvestment.IsPositive() {
		return P(0)
	}
	return P(a.actual.Div(p.totalInvestment).Mul(hundred))
}

// Deviation returns actual minus planned amount. Positive means over-held
// (candidate to sell), negative means under-held (candidate to buy).
func (p *Portfolio) Deviation(a Asset) Money {
	return M(a.actual.Sub(p.plannedAmount(a)), p.currency)
}

// DeviationPercent returns the deviation relative to the planned amount,
// or 0 when nothing is planned for this asset.
func (p *Portfolio) DeviationPercent(a Asset) Percent {
	planned := p.plannedAmount(a)
	if !planned.IsPositive() {
		return P(0)
	}
	return P(a.actual.Sub(planned).Div(planned).Mul(hundred))
}

// offPlan reports whether the asset's deviation exceeds 1% of its planned
// amount. This single rule backs both the per-asset advice and the rebalance
// suggestion list.
func (p *Portfolio) offPlan(a Asset) bool {
	planned := p.plannedAmount(a)
	dev := a.actual.Sub(planned)
	return dev.Abs().GreaterThan(planned.Mul(balancedShare))
}

// Advise classifies an asset into hold, buy or sell, with the amount to
// trade. Within 1% of the planned amount the asset is left alone.
func (p *Portfolio) Advise(a Asset) (Action, Money) {
	dev := a.actual.Sub(p.plannedAmount(a))
	if !p.offPlan(a) {
		return Hold, M(decimal.Zero, p.currency)
	}
	if dev.IsPositive() {
		return Sell, M(dev, p.currency)
	}
	return Buy, M(dev.Abs(), p.currency)
}

// ActualEmphasis classifies the asset's actual share against its planned
// share: High above 105% of plan, Low below 95%. Display emphasis only.
func (p *Portfolio) ActualEmphasis(a Asset) Emphasis {
	actual := p.ActualPercent(a).value
	planned := p.PlannedPercent(a).value
	switch {
	case actual.GreaterThan(planned.Mul(emphasisHigh)):
		return High
	case actual.LessThan(planned.Mul(emphasisLow)):
		return Low
	default:
		return Neutral
	}
}

// plannedTotal sums the planned amounts of all assets in currency units.
func (p *Portfolio) plannedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.assets {
		total = total.Add(p.plannedAmount(a))
	}
	return total
}

// PlannedTotal returns the sum of all planned amounts.
func (p *Portfolio) PlannedTotal() Money {
	return M(p.plannedTotal(), p.currency)
}

// Unallocated returns the part of the total investment not covered by the
// plan, with its classification. The amount is negative when the plan is
// over-allocated.
func (p *Portfolio) Unallocated() (Money, AllocationStatus) {
	u := p.totalInvestment.Sub(p.plannedTotal())
	switch {
	case u.Abs().LessThan(unallocatedTolerance):
		return M(u, p.currency), Allocated
	case u.LessThan(unallocatedTolerance.Neg()):
		return M(u, p.currency), OverAllocated
	default:
		return M(u, p.currency), UnderAllocated
	}
}

// OverallDeviation returns the portfolio-level deviation between the total
// investment and the planned total, relative to the planned total. It is 0
// when nothing is planned.
func (p *Portfolio) OverallDeviation() Percent {
	planned := p.plannedTotal()
	if !planned.IsPositive() {
		return P(0)
	}
	return P(p.totalInvestment.Sub(planned).Div(planned).Mul(hundred))
}

// OffTarget reports whether the overall deviation exceeds the user-set
// threshold. It only drives display emphasis.
func (p *Portfolio) OffTarget() bool {
	return p.OverallDeviation().value.Abs().GreaterThan(p.deviationThreshold)
}
