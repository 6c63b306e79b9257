package wealthplan

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultPortfolio(t *testing.T) {
	p := DefaultPortfolio()

	if p.Currency() != CNY {
		t.Errorf("Currency() = %q, want %q", p.Currency(), CNY)
	}
	if got, want := p.TotalInvestment().String(), M(decimal.NewFromInt(380000), CNY).String(); got != want {
		t.Errorf("TotalInvestment() = %s, want %s", got, want)
	}
	if p.NumAssets() != 4 {
		t.Fatalf("NumAssets() = %d, want 4", p.NumAssets())
	}

	wantNames := []string{"Stocks", "Bonds", "Gold", "Cash"}
	i := 0
	for a := range p.Assets() {
		if a.Name() != wantNames[i] {
			t.Errorf("asset %d name = %q, want %q", i, a.Name(), wantNames[i])
		}
		if a.Mode() != Percentage {
			t.Errorf("asset %q mode = %v, want percentage", a.Name(), a.Mode())
		}
		i++
	}

	// The starter plan allocates the full 100%.
	var sum decimal.Decimal
	for a := range p.Assets() {
		sum = sum.Add(a.planned)
	}
	if !sum.Equal(hundred) {
		t.Errorf("planned percentages sum to %s, want 100", sum)
	}
}

func TestAddAsset_NamesAreUnique(t *testing.T) {
	p := NewPortfolio()

	a1 := p.AddAsset()
	a2 := p.AddAsset()
	if a1.Name() != "New Asset 1" || a2.Name() != "New Asset 2" {
		t.Errorf("AddAsset() names = %q, %q, want New Asset 1, New Asset 2", a1.Name(), a2.Name())
	}
	if a1.ID() == a2.ID() {
		t.Errorf("AddAsset() reused id %d", a1.ID())
	}

	// Deleting the first asset frees its placeholder name for reuse, but
	// never its id.
	if err := p.DeleteAsset(a1.ID()); err != nil {
		t.Fatalf("DeleteAsset() error = %v", err)
	}
	a3 := p.AddAsset()
	if a3.Name() != "New Asset 1" {
		t.Errorf("AddAsset() after delete = %q, want New Asset 1", a3.Name())
	}
	if a3.ID() == a1.ID() {
		t.Errorf("AddAsset() reused id %d of a deleted asset", a1.ID())
	}
}

func TestDeleteAsset_Unknown(t *testing.T) {
	p := DefaultPortfolio()
	if err := p.DeleteAsset(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteAsset(42) error = %v, want ErrNotFound", err)
	}
}

func TestRenameAsset(t *testing.T) {
	p := DefaultPortfolio()

	if err := p.RenameAsset(1, "Equities"); err != nil {
		t.Fatalf("RenameAsset() error = %v", err)
	}
	a, _ := p.Asset(1)
	if a.Name() != "Equities" {
		t.Errorf("Asset(1).Name() = %q, want Equities", a.Name())
	}

	t.Run("duplicate name is rejected", func(t *testing.T) {
		if err := p.RenameAsset(2, "Equities"); !errors.Is(err, ErrDuplicateName) {
			t.Errorf("RenameAsset() error = %v, want ErrDuplicateName", err)
		}
	})
	t.Run("renaming to its own name is fine", func(t *testing.T) {
		if err := p.RenameAsset(1, "Equities"); err != nil {
			t.Errorf("RenameAsset() error = %v", err)
		}
	})
	t.Run("empty name is rejected", func(t *testing.T) {
		if err := p.RenameAsset(1, ""); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("RenameAsset() error = %v, want ErrInvalidValue", err)
		}
	})
}

func TestSetPlannedPercentage_Clamping(t *testing.T) {
	p := DefaultPortfolio()

	t.Run("within the available share", func(t *testing.T) {
		// Stocks can go from 40 to 30, freeing 10 points.
		adjusted, err := p.SetPlannedPercentage(1, 30)
		if err != nil {
			t.Fatalf("SetPlannedPercentage() error = %v", err)
		}
		if adjusted {
			t.Error("SetPlannedPercentage() adjusted = true, want false")
		}
	})

	t.Run("above the available share", func(t *testing.T) {
		// Others hold 30+15+15 = 60, so Stocks cannot exceed 40.
		adjusted, err := p.SetPlannedPercentage(1, 55)
		if err != nil {
			t.Fatalf("SetPlannedPercentage() error = %v", err)
		}
		if !adjusted {
			t.Error("SetPlannedPercentage() adjusted = false, want true")
		}
		a, _ := p.Asset(1)
		if !a.planned.Equal(decimal.NewFromInt(40)) {
			t.Errorf("planned = %s, want 40", a.planned)
		}
	})

	t.Run("over-allocated history is not auto-corrected", func(t *testing.T) {
		// A plan can hold 60+50 from past edits. Editing one asset clamps
		// against the others as they are, it does not fix them.
		q := NewPortfolio()
		q.assets = []Asset{
			{id: 1, name: "A", mode: Percentage, planned: decimal.NewFromInt(60)},
			{id: 2, name: "B", mode: Percentage, planned: decimal.NewFromInt(50)},
		}
		q.nextID = 3
		adjusted, err := q.SetPlannedPercentage(1, 70)
		if err != nil {
			t.Fatalf("SetPlannedPercentage() error = %v", err)
		}
		if !adjusted {
			t.Error("SetPlannedPercentage() adjusted = false, want true")
		}
		a, _ := q.Asset(1)
		if !a.planned.Equal(decimal.NewFromInt(50)) {
			t.Errorf("planned = %s, want 50", a.planned)
		}
		b, _ := q.Asset(2)
		if !b.planned.Equal(decimal.NewFromInt(50)) {
			t.Errorf("other asset planned = %s, want untouched 50", b.planned)
		}
	})

	t.Run("above 100 is capped before clamping", func(t *testing.T) {
		q := NewPortfolio()
		a := q.AddAsset()
		adjusted, err := q.SetPlannedPercentage(a.ID(), 150)
		if err != nil {
			t.Fatalf("SetPlannedPercentage() error = %v", err)
		}
		if !adjusted {
			t.Error("SetPlannedPercentage() adjusted = false, want true")
		}
		stored, _ := q.Asset(a.ID())
		if !stored.planned.Equal(hundred) {
			t.Errorf("planned = %s, want 100", stored.planned)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		if _, err := p.SetPlannedPercentage(1, -5); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("SetPlannedPercentage(-5) error = %v, want ErrInvalidValue", err)
		}
		if _, err := p.SetPlannedPercentage(42, 10); !errors.Is(err, ErrNotFound) {
			t.Errorf("SetPlannedPercentage(unknown id) error = %v, want ErrNotFound", err)
		}
	})

	// Whatever the edits, percentage-mode assets never sum above 100.
	var sum decimal.Decimal
	for a := range p.Assets() {
		sum = sum.Add(a.planned)
	}
	if sum.GreaterThan(hundred) {
		t.Errorf("planned percentages sum to %s, want at most 100", sum)
	}
}

func TestSetPlannedAmount_Clamping(t *testing.T) {
	p := DefaultPortfolio()
	// Switch Cash (15% of 380000 = 57000) to amount mode.
	if err := p.SetAssetMode(4, Amount); err != nil {
		t.Fatalf("SetAssetMode() error = %v", err)
	}

	t.Run("within the unplanned share", func(t *testing.T) {
		// Others plan 40+30+15 = 85%, leaving 57000 unplanned.
		adjusted, err := p.SetPlannedAmount(4, 50000)
		if err != nil {
			t.Fatalf("SetPlannedAmount() error = %v", err)
		}
		if adjusted {
			t.Error("SetPlannedAmount() adjusted = true, want false")
		}
	})

	t.Run("above the unplanned share", func(t *testing.T) {
		adjusted, err := p.SetPlannedAmount(4, 90000)
		if err != nil {
			t.Fatalf("SetPlannedAmount() error = %v", err)
		}
		if !adjusted {
			t.Error("SetPlannedAmount() adjusted = false, want true")
		}
		a, _ := p.Asset(4)
		if !a.planned.Equal(decimal.NewFromInt(57000)) {
			t.Errorf("planned = %s, want 57000", a.planned)
		}
	})

	t.Run("wrong mode is rejected", func(t *testing.T) {
		if _, err := p.SetPlannedAmount(1, 1000); !errors.Is(err, ErrInvalidMode) {
			t.Errorf("SetPlannedAmount(percentage-mode) error = %v, want ErrInvalidMode", err)
		}
		if _, err := p.SetPlannedPercentage(4, 10); !errors.Is(err, ErrInvalidMode) {
			t.Errorf("SetPlannedPercentage(amount-mode) error = %v, want ErrInvalidMode", err)
		}
	})
}

func TestSetAssetMode_RoundTrip(t *testing.T) {
	p := DefaultPortfolio()
	before, _ := p.Asset(1)
	wantAmount := p.plannedAmount(before)

	if err := p.SetAssetMode(1, Amount); err != nil {
		t.Fatalf("SetAssetMode(Amount) error = %v", err)
	}
	a, _ := p.Asset(1)
	if a.Mode() != Amount {
		t.Fatalf("mode = %v, want amount", a.Mode())
	}
	if !p.plannedAmount(a).Equal(wantAmount) {
		t.Errorf("planned amount after switch = %s, want %s", p.plannedAmount(a), wantAmount)
	}

	if err := p.SetAssetMode(1, Percentage); err != nil {
		t.Fatalf("SetAssetMode(Percentage) error = %v", err)
	}
	a, _ = p.Asset(1)
	if !a.planned.Equal(decimal.NewFromInt(40)) {
		t.Errorf("planned after round trip = %s, want 40", a.planned)
	}

	t.Run("same mode is a no-op", func(t *testing.T) {
		if err := p.SetAssetMode(1, Percentage); err != nil {
			t.Errorf("SetAssetMode(same mode) error = %v", err)
		}
		a, _ := p.Asset(1)
		if !a.planned.Equal(decimal.NewFromInt(40)) {
			t.Errorf("planned = %s, want 40", a.planned)
		}
	})

	t.Run("amount to percentage of a zero total", func(t *testing.T) {
		q := NewPortfolio()
		added := q.AddAsset()
		if err := q.SetAssetMode(added.ID(), Amount); err != nil {
			t.Fatalf("SetAssetMode() error = %v", err)
		}
		if err := q.SetAssetMode(added.ID(), Percentage); err != nil {
			t.Fatalf("SetAssetMode() error = %v", err)
		}
		a, _ := q.Asset(added.ID())
		if !a.planned.IsZero() {
			t.Errorf("planned = %s, want 0", a.planned)
		}
	})
}

func TestSetters_RejectNonFinite(t *testing.T) {
	p := DefaultPortfolio()
	nan := math.NaN()

	if err := p.SetTotalInvestment(nan); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("SetTotalInvestment(NaN) error = %v, want ErrInvalidValue", err)
	}
	if err := p.SetDeviationThreshold(math.Inf(1)); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("SetDeviationThreshold(+Inf) error = %v, want ErrInvalidValue", err)
	}
	if err := p.SetActualValue(1, nan); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("SetActualValue(NaN) error = %v, want ErrInvalidValue", err)
	}
}
