package commands

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/nsuurmey/apple-discount-planning/internal/scenario"
	"github.com/nsuurmey/apple-discount-planning/internal/simulation"
)

const histogramBarWidth = 40

// formatReport renders a completed run for the terminal: scenario header,
// summary statistics and an ASCII histogram of the savings distribution.
func formatReport(s *scenario.Scenario, res *simulation.Result) string {
	var b strings.Builder
	st := res.Stats

	b.WriteString(fmt.Sprintf("Apple purchase savings — %s\n", s.Name))
	b.WriteString(fmt.Sprintf("Trials: %s | Farms this year: %d-%d | Last year: %s across %d farms\n\n",
		humanize.Comma(int64(s.Trials)), s.MinNewFarms, s.MaxNewFarms,
		money(s.LastYearCost), s.LastYearFarms))

	b.WriteString(fmt.Sprintf("  Mean savings:      %s\n", money(st.Mean)))
	b.WriteString(fmt.Sprintf("  Median:            %s\n", money(st.Median)))
	b.WriteString(fmt.Sprintf("  P10 / P90:         %s / %s\n", money(st.P10), money(st.P90)))
	b.WriteString(fmt.Sprintf("  Std deviation:     %s\n", money(st.Std)))
	b.WriteString(fmt.Sprintf("  Range:             %s to %s\n", money(st.Min), money(st.Max)))
	b.WriteString(fmt.Sprintf("  Chance of saving:  %.1f%%\n\n", st.ProbPositive*100))

	b.WriteString("Savings distribution:\n")
	maxCount := 0
	for _, bin := range res.Histogram {
		if bin.Count > maxCount {
			maxCount = bin.Count
		}
	}
	for _, bin := range res.Histogram {
		bar := 0
		if maxCount > 0 {
			bar = bin.Count * histogramBarWidth / maxCount
		}
		b.WriteString(fmt.Sprintf("%14s | %-*s %d\n",
			humanize.Commaf(bin.Value), histogramBarWidth, strings.Repeat("█", bar), bin.Count))
	}

	return b.String()
}

func money(v float64) string {
	if v < 0 {
		return "-$" + humanize.CommafWithDigits(-v, 2)
	}
	return "$" + humanize.CommafWithDigits(v, 2)
}
