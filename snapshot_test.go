package wealthplan

import (
	"testing"

	"github.com/shopspring/decimal"
)

// demoPortfolio returns the starter plan with Stocks replanned to 152000 by
// amount, so that its 150000 actual drifts 1.3% below plan.
func demoPortfolio(t *testing.T) *Portfolio {
	t.Helper()
	p := DefaultPortfolio()
	if err := p.SetAssetMode(1, Amount); err != nil {
		t.Fatalf("SetAssetMode() error = %v", err)
	}
	if _, err := p.SetPlannedAmount(1, 152000); err != nil {
		t.Fatalf("SetPlannedAmount() error = %v", err)
	}
	return p
}

func TestPlannedAmounts(t *testing.T) {
	p := DefaultPortfolio()

	// Percentage-mode assets derive their planned amount from the total.
	wants := map[string]int64{
		"Stocks": 152000, // 40% of 380000
		"Bonds":  114000, // 30%
		"Gold":   57000,  // 15%
		"Cash":   57000,  // 15%
	}
	for a := range p.Assets() {
		want := decimal.NewFromInt(wants[a.Name()])
		if got := p.plannedAmount(a); !got.Equal(want) {
			t.Errorf("plannedAmount(%s) = %s, want %s", a.Name(), got, want)
		}
	}

	if got, want := p.PlannedTotal(), M(decimal.NewFromInt(380000), CNY); !got.Equal(want) {
		t.Errorf("PlannedTotal() = %s, want %s", got, want)
	}
	if _, status := p.Unallocated(); status != Allocated {
		t.Errorf("Unallocated() status = %v, want allocated", status)
	}
}

func TestAdvise(t *testing.T) {
	p := demoPortfolio(t)

	t.Run("under-held beyond 1% of plan", func(t *testing.T) {
		// Stocks: planned 152000, actual 150000. The 2000 gap is 1.3% of
		// the plan, beyond the 1% dead band.
		a, _ := p.Asset(1)
		action, amount := p.Advise(a)
		if action != Buy {
			t.Fatalf("Advise(Stocks) = %v, want buy", action)
		}
		if want := M(decimal.NewFromInt(2000), CNY); !amount.Equal(want) {
			t.Errorf("Advise(Stocks) amount = %s, want %s", amount, want)
		}
	})

	t.Run("over-held", func(t *testing.T) {
		// Cash: planned 57000, actual 80000.
		a, _ := p.Asset(4)
		action, amount := p.Advise(a)
		if action != Sell {
			t.Fatalf("Advise(Cash) = %v, want sell", action)
		}
		if want := M(decimal.NewFromInt(23000), CNY); !amount.Equal(want) {
			t.Errorf("Advise(Cash) amount = %s, want %s", amount, want)
		}
	})

	t.Run("within the dead band", func(t *testing.T) {
		// Move Stocks actual within 1% of the 152000 plan.
		if err := p.SetActualValue(1, 151000); err != nil {
			t.Fatalf("SetActualValue() error = %v", err)
		}
		a, _ := p.Asset(1)
		if action, _ := p.Advise(a); action != Hold {
			t.Errorf("Advise(Stocks) = %v, want hold", action)
		}
	})

	t.Run("zero plan and zero actual", func(t *testing.T) {
		q := NewPortfolio()
		a := q.AddAsset()
		if action, _ := q.Advise(a); action != Hold {
			t.Errorf("Advise(new asset) = %v, want hold", action)
		}
	})
}

func TestSnapshot_ZeroTotalInvestment(t *testing.T) {
	p := NewPortfolio()
	a := p.AddAsset()
	if _, err := p.SetPlannedPercentage(a.ID(), 100); err != nil {
		t.Fatalf("SetPlannedPercentage() error = %v", err)
	}
	if err := p.SetActualValue(a.ID(), 5000); err != nil {
		t.Fatalf("SetActualValue() error = %v", err)
	}
	a, _ = p.Asset(a.ID())

	// With a zero total, 100% of nothing is nothing.
	if got := p.PlannedAmount(a); !got.IsZero() {
		t.Errorf("PlannedAmount() = %s, want 0", got)
	}
	if got := p.ActualPercent(a); !got.Equal(P(0)) {
		t.Errorf("ActualPercent() = %s, want 0", got)
	}
	// The deviation is entirely the held amount, a sell candidate.
	if action, amount := p.Advise(a); action != Sell || !amount.Equal(M(decimal.NewFromInt(5000), CNY)) {
		t.Errorf("Advise() = %v %s, want sell %s", action, amount, M(decimal.NewFromInt(5000), CNY))
	}
	// Relative metrics degrade to 0 rather than dividing by zero.
	if got := p.DeviationPercent(a); !got.Equal(P(0)) {
		t.Errorf("DeviationPercent() = %s, want 0", got)
	}
	if got := p.OverallDeviation(); !got.Equal(P(0)) {
		t.Errorf("OverallDeviation() = %s, want 0", got)
	}
}

func TestUnallocated(t *testing.T) {
	p := DefaultPortfolio()

	t.Run("under-allocated", func(t *testing.T) {
		if _, err := p.SetPlannedPercentage(1, 30); err != nil {
			t.Fatalf("SetPlannedPercentage() error = %v", err)
		}
		u, status := p.Unallocated()
		if status != UnderAllocated {
			t.Fatalf("Unallocated() status = %v, want under-allocated", status)
		}
		if want := M(decimal.NewFromInt(38000), CNY); !u.Equal(want) {
			t.Errorf("Unallocated() = %s, want %s", u, want)
		}
	})

	t.Run("over-allocated after the total shrinks", func(t *testing.T) {
		q := DefaultPortfolio()
		if err := q.SetAssetMode(4, Amount); err != nil {
			t.Fatalf("SetAssetMode() error = %v", err)
		}
		// Cash is now a literal 57000. Shrinking the total leaves the plan
		// above it: 85% of 300000 plus 57000 is 312000.
		if err := q.SetTotalInvestment(300000); err != nil {
			t.Fatalf("SetTotalInvestment() error = %v", err)
		}
		u, status := q.Unallocated()
		if status != OverAllocated {
			t.Fatalf("Unallocated() status = %v, want over-allocated", status)
		}
		if want := M(decimal.NewFromInt(-12000), CNY); !u.Equal(want) {
			t.Errorf("Unallocated() = %s, want %s", u, want)
		}
	})
}

func TestOffTarget(t *testing.T) {
	p := DefaultPortfolio()
	if p.OffTarget() {
		t.Error("OffTarget() = true for a fully allocated plan")
	}

	// Plan only 93% of the total: the 26600 gap is 7.5% of the 353400
	// planned total, above the default 5% threshold.
	if _, err := p.SetPlannedPercentage(4, 8); err != nil {
		t.Fatalf("SetPlannedPercentage() error = %v", err)
	}
	if !p.OffTarget() {
		t.Error("OffTarget() = false, want true")
	}

	// Raising the threshold silences the warning without changing anything else.
	if err := p.SetDeviationThreshold(10); err != nil {
		t.Fatalf("SetDeviationThreshold() error = %v", err)
	}
	if p.OffTarget() {
		t.Error("OffTarget() = true with a 10% threshold")
	}
}

func TestActualEmphasis(t *testing.T) {
	p := DefaultPortfolio()

	cases := []struct {
		name   string
		actual float64
		want   Emphasis
	}{
		// Stocks planned share is 40%. 105% of it is 42%, 95% is 38%.
		{"far above plan", 170000, High},   // 44.7%
		{"close to plan", 152000, Neutral}, // 40%
		{"far below plan", 140000, Low},    // 36.8%
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := p.SetActualValue(1, c.actual); err != nil {
				t.Fatalf("SetActualValue() error = %v", err)
			}
			a, _ := p.Asset(1)
			if got := p.ActualEmphasis(a); got != c.want {
				t.Errorf("ActualEmphasis() = %v, want %v", got, c.want)
			}
		})
	}
}
