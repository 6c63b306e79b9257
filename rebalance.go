package wealthplan

// Suggestion is one buy or sell action needed to bring an asset back to its
// planned amount.
type Suggestion struct {
	AssetID int64
	Name    string
	Action  Action
	Amount  Money
}

// RebalanceSuggestions computes the trades needed to bring actual holdings
// back to the plan. Assets within 1% of their planned amount are skipped;
// the list is empty when the portfolio is already balanced.
func (p *Portfolio) RebalanceSuggestions() []Suggestion {
	var suggestions []Suggestion
	for _, a := range p.assets {
		if !p.offPlan(a) {
			continue
		}
		action, amount := p.Advise(a)
		suggestions = append(suggestions, Suggestion{
			AssetID: a.id,
			Name:    a.name,
			Action:  action,
			Amount:  amount,
		})
	}
	return suggestions
}

// ApplyRebalance sets every asset's actual value to its planned amount,
// computed at the moment of application. The update covers all assets or
// none; it is the only bulk mutation of actual values.
func (p *Portfolio) ApplyRebalance() {
	for i := range p.assets {
		p.assets[i].actual = p.plannedAmount(p.assets[i])
	}
}
