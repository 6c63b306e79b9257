// Package renderer renders portfolio reports to markdown, to be printed on
// a terminal or piped to any markdown consumer.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/wealthplan"
)

// Planning renders the full planning view: the overview block followed by
// one row per asset.
func Planning(p *wealthplan.Portfolio) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Plan\n\n")
	writeOverview(&b, p)

	fmt.Fprintln(&b, "| Id | Asset | Mode | Planned | Planned Amount | Actual | Actual Share | Advice |")
	fmt.Fprintln(&b, "|---:|:---|:---|---:|---:|---:|---:|:---|")
	for a := range p.Assets() {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s |\n",
			a.ID(),
			a.Name(),
			a.Mode(),
			p.PlannedPercent(a),
			p.PlannedAmount(a),
			p.ActualValue(a),
			actualShareCell(p, a),
			adviceCell(p, a),
		)
	}
	return b.String()
}

// Overview renders only the portfolio-level figures.
func Overview(p *wealthplan.Portfolio) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Overview\n\n")
	writeOverview(&b, p)
	return b.String()
}

func writeOverview(b *strings.Builder, p *wealthplan.Portfolio) {
	fmt.Fprintf(b, "- Total investment: %s\n", p.TotalInvestment())
	fmt.Fprintf(b, "- Planned total: %s\n", p.PlannedTotal())

	deviation := p.OverallDeviation()
	if p.OffTarget() {
		fmt.Fprintf(b, "- Overall deviation: %s (above the %s threshold)\n", deviation, p.DeviationThreshold())
	} else {
		fmt.Fprintf(b, "- Overall deviation: %s\n", deviation)
	}

	// A balanced plan hides the unallocated line entirely.
	unallocated, status := p.Unallocated()
	switch status {
	case wealthplan.OverAllocated:
		fmt.Fprintf(b, "- Over-allocated: %s\n", unallocated.Abs())
	case wealthplan.UnderAllocated:
		fmt.Fprintf(b, "- Unallocated: %s\n", unallocated)
	}
	fmt.Fprintln(b)
}

func actualShareCell(p *wealthplan.Portfolio, a wealthplan.Asset) string {
	share := p.ActualPercent(a).String()
	switch p.ActualEmphasis(a) {
	case wealthplan.High:
		return "**" + share + "** (high)"
	case wealthplan.Low:
		return "**" + share + "** (low)"
	default:
		return share
	}
}

func adviceCell(p *wealthplan.Portfolio, a wealthplan.Asset) string {
	action, amount := p.Advise(a)
	if action == wealthplan.Hold {
		return "balanced"
	}
	return fmt.Sprintf("%s %s", action, amount)
}
