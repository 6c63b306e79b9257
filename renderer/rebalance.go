package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/wealthplan"
)

// Rebalance renders the buy/sell actions needed to bring actual holdings
// back to the plan.
func Rebalance(suggestions []wealthplan.Suggestion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Rebalance\n\n")

	if len(suggestions) == 0 {
		fmt.Fprintln(&b, "The portfolio is already balanced, nothing to do.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Asset | Action | Amount |")
	fmt.Fprintln(&b, "|:---|:---|---:|")
	for _, s := range suggestions {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", s.Name, s.Action, s.Amount)
	}
	return b.String()
}

// Plans renders the list of saved plans, newest first.
func Plans(plans []wealthplan.PlanInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Saved Plans\n\n")

	if len(plans) == 0 {
		fmt.Fprintln(&b, "No saved plan yet. Use `wpl save -name <name>` to create one.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Plan | Last Saved |")
	fmt.Fprintln(&b, "|:---|:---|")
	for _, p := range plans {
		fmt.Fprintf(&b, "| %s | %s |\n", p.Name, p.LastModified.Format("2006-01-02 15:04"))
	}
	return b.String()
}
