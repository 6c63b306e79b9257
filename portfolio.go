package wealthplan

import (
	"fmt"
	"iter"
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Portfolio holds the allocation plan: the total investment, the assets in
// display order, and the user settings stored alongside them.
//
// There is exactly one logical writer (the local user), so all cross-asset
// invariants are maintained by having each mutator read, clamp and write
// within a single synchronous call.
type Portfolio struct {
	totalInvestment    decimal.Decimal
	assets             []Asset
	currency           string
	deviationThreshold decimal.Decimal
	nextID             int64
}

// NewPortfolio creates an empty portfolio with default settings.
func NewPortfolio() *Portfolio {
	return &Portfolio{
		currency:           CNY,
		deviationThreshold: decimal.NewFromInt(5),
		nextID:             1,
	}
}

// DefaultPortfolio creates the portfolio a first-time user starts with:
// a classic four-way split of a 380,000 CNY investment.
func DefaultPortfolio() *Portfolio {
	p := NewPortfolio()
	p.totalInvestment = decimal.NewFromInt(380000)
	seed := []struct {
		name    string
		planned int64
		actual  int64
	}{
		{"Stocks", 40, 150000},
		{"Bonds", 30, 100000},
		{"Gold", 15, 50000},
		{"Cash", 15, 80000},
	}
	for _, s := range seed {
		p.assets = append(p.assets, Asset{
			id:      p.nextID,
			name:    s.name,
			mode:    Percentage,
			planned: decimal.NewFromInt(s.planned),
			actual:  decimal.NewFromInt(s.actual),
		})
		p.nextID++
	}
	return p
}

// TotalInvestment returns the total investment as a monetary value.
func (p *Portfolio) TotalInvestment() Money { return M(p.totalInvestment, p.currency) }

// Currency returns the portfolio display currency.
func (p *Portfolio) Currency() string { return p.currency }

// DeviationThreshold returns the user-set threshold used to flag the overall
// portfolio deviation. It never affects calculations.
func (p *Portfolio) DeviationThreshold() Percent { return P(p.deviationThreshold) }

// NumAssets returns the number of assets in the portfolio.
func (p *Portfolio) NumAssets() int { return len(p.assets) }

// Assets iterates over the assets in display (insertion) order.
func (p *Portfolio) Assets() iter.Seq[Asset] {
	return func(yield func(Asset) bool) {
		for _, a := range p.assets {
			if !yield(a) {
				return
			}
		}
	}
}

// Asset returns the asset with the given id, or false if unknown.
func (p *Portfolio) Asset(id int64) (Asset, bool) {
	if a := p.find(id); a != nil {
		return *a, true
	}
	return Asset{}, false
}

func (p *Portfolio) find(id int64) *Asset {
	for i := range p.assets {
		if p.assets[i].id == id {
			return &p.assets[i]
		}
	}
	return nil
}

func (p *Portfolio) nameTaken(name string, except int64) bool {
	for _, a := range p.assets {
		if a.id != except && a.name == name {
			return true
		}
	}
	return false
}

// finite rejects the float64 values that have no decimal representation.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SetTotalInvestment replaces the total investment. Amount-mode assets keep
// their literal planned values; percentage-mode assets' effective planned
// amounts follow the new total because they are computed on demand.
func (p *Portfolio) SetTotalInvestment(value float64) error {
	if !finite(value) || value < 0 {
		return errInvalidValue("total investment %v", value)
	}
	p.totalInvestment = decimal.NewFromFloat(value)
	return nil
}

// SetCurrency replaces the display currency.
func (p *Portfolio) SetCurrency(currency string) error {
	c, err := ParseCurrency(currency)
	if err != nil {
		return err
	}
	p.currency = c
	return nil
}

// SetDeviationThreshold replaces the overall deviation warning threshold.
func (p *Portfolio) SetDeviationThreshold(value float64) error {
	if !finite(value) || value < 0 {
		return errInvalidValue("deviation threshold %v", value)
	}
	p.deviationThreshold = decimal.NewFromFloat(value)
	return nil
}

// AddAsset creates a new percentage-mode asset planned at 0 and returns it.
// The name is the lowest-numbered unused "New Asset {n}".
func (p *Portfolio) AddAsset() Asset {
	name := ""
	for n := 1; ; n++ {
		name = fmt.Sprintf("New Asset %d", n)
		if !p.nameTaken(name, 0) {
			break
		}
	}
	a := Asset{id: p.nextID, name: name, mode: Percentage}
	p.nextID++
	p.assets = append(p.assets, a)
	return a
}

// DeleteAsset removes the asset with the given id. Removal is immediate and
// irreversible within the model.
func (p *Portfolio) DeleteAsset(id int64) error {
	for i := range p.assets {
		if p.assets[i].id == id {
			p.assets = append(p.assets[:i], p.assets[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete asset %d: %w", id, ErrNotFound)
}

// RenameAsset updates an asset's name. Names are unique across the portfolio
// (case-sensitive exact match): a clashing rename is rejected, not corrected.
func (p *Portfolio) RenameAsset(id int64, name string) error {
	a := p.find(id)
	if a == nil {
		return fmt.Errorf("rename asset %d: %w", id, ErrNotFound)
	}
	if name == "" {
		return errInvalidValue("rename asset %d: empty name", id)
	}
	if p.nameTaken(name, id) {
		return fmt.Errorf("rename asset %d to %q: %w", id, name, ErrDuplicateName)
	}
	a.name = name
	return nil
}

// SetAssetMode switches an asset between percentage and amount planning,
// converting the planned value so the effective planned amount is preserved.
// Converting an amount back to a percentage of a zero total yields 0.
func (p *Portfolio) SetAssetMode(id int64, mode Mode) error {
	a := p.find(id)
	if a == nil {
		return fmt.Errorf("set mode of asset %d: %w", id, ErrNotFound)
	}
	if a.mode == mode {
		return nil
	}
	switch mode {
	case Amount:
		a.planned = a.planned.Div(hundred).Mul(p.totalInvestment)
	case Percentage:
		if p.totalInvestment.IsPositive() {
			a.planned = a.planned.Div(p.totalInvestment).Mul(hundred)
		} else {
			a.planned = decimal.Zero
		}
	default:
		return fmt.Errorf("set mode of asset %d to %v: %w", id, mode, ErrInvalidMode)
	}
	a.mode = mode
	return nil
}

// SetPlannedPercentage sets the planned percentage of a percentage-mode
// asset. The stored value is capped so that percentage-mode assets never sum
// above 100: when the requested value exceeds the still-available share, the
// maximum is stored instead and adjusted is true. This clamp-rather-than-
// reject policy is deliberate; the caller should surface the substituted
// value as a warning.
func (p *Portfolio) SetPlannedPercentage(id int64, value float64) (adjusted bool, err error) {
	a := p.find(id)
	if a == nil {
		return false, fmt.Errorf("set planned percentage of asset %d: %w", id, ErrNotFound)
	}
	if a.mode != Percentage {
		return false, fmt.Errorf("set planned percentage of amount-mode asset %d: %w", id, ErrInvalidMode)
	}
	if !finite(value) || value < 0 {
		return false, errInvalidValue("planned percentage %v", value)
	}
	requested := decimal.NewFromFloat(value)

	v := requested
	if v.GreaterThan(hundred) {
		v = hundred
	}
	other := decimal.Zero
	for _, b := range p.assets {
		if b.id != id && b.mode == Percentage {
			other = other.Add(b.planned)
		}
	}
	// The plan may already be over-allocated from earlier edits; the clamp
	// floor is 0, the over-allocation itself is not corrected here.
	max := hundred.Sub(other)
	if max.IsNegative() {
		max = decimal.Zero
	}
	if v.GreaterThan(max) {
		v = max
	}
	a.planned = v
	return !v.Equal(requested), nil
}

// SetPlannedAmount sets the planned amount of an amount-mode asset, clamped
// to the share of the total investment not already planned by the other
// assets. Symmetric to SetPlannedPercentage.
func (p *Portfolio) SetPlannedAmount(id int64, value float64) (adjusted bool, err error) {
	a := p.find(id)
	if a == nil {
		return false, fmt.Errorf("set planned amount of asset %d: %w", id, ErrNotFound)
	}
	if a.mode != Amount {
		return false, fmt.Errorf("set planned amount of percentage-mode asset %d: %w", id, ErrInvalidMode)
	}
	if !finite(value) || value < 0 {
		return false, errInvalidValue("planned amount %v", value)
	}
	requested := decimal.NewFromFloat(value)

	other := decimal.Zero
	for _, b := range p.assets {
		if b.id != id {
			other = other.Add(p.plannedAmount(b))
		}
	}
	max := p.totalInvestment.Sub(other)
	if max.IsNegative() {
		max = decimal.Zero
	}
	v := requested
	if v.GreaterThan(max) {
		v = max
	}
	a.planned = v
	return !v.Equal(requested), nil
}

// SetActualValue records the currently held amount for an asset. Actual
// holdings are independent observations, not a partition of a fixed total,
// so there is no cross-asset constraint.
func (p *Portfolio) SetActualValue(id int64, value float64) error {
	a := p.find(id)
	if a == nil {
		return fmt.Errorf("set actual value of asset %d: %w", id, ErrNotFound)
	}
	if !finite(value) || value < 0 {
		return errInvalidValue("actual value %v", value)
	}
	a.actual = decimal.NewFromFloat(value)
	return nil
}
