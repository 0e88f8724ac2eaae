// Package render produces the terminal views of a metrics report: the
// per-cluster listing with every metric aligned under its name, and the
// aggregation summary. The output is diagnostic display, not a
// machine-readable format.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-covermetrics/pkg/cover"
)

// nameWidth is the dotted padding column the values align under
const nameWidth = 40

var (
	clusterStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	dotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF00"))
)

// formatValue renders a metric value with fixed precision
func formatValue(v float64) string {
	return fmt.Sprintf("%.6f", v)
}

// Report renders every cluster's metric values, one block per cluster,
// each metric's value aligned under its dotted name.
func Report(rep *cover.Report, clusters int) string {
	var b strings.Builder
	for i := 0; i < clusters; i++ {
		b.WriteString(clusterStyle.Render(fmt.Sprintf("Cluster %d", i)))
		b.WriteString("\n")
		for _, name := range rep.Names() {
			results := rep.Metric(name).Results
			if i >= len(results) {
				continue
			}
			dots := nameWidth - len(name)
			if dots < 1 {
				dots = 1
			}
			b.WriteString(nameStyle.Render(name))
			b.WriteString(dotStyle.Render(strings.Repeat(".", dots)))
			b.WriteString(formatValue(results[i]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Summary renders the aggregation block: min, max, mean, median and
// standard deviation per metric.
func Summary(rep *cover.Report) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Aggregations"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-*s %12s %12s %12s %12s %12s\n",
		nameWidth, "Metric", "Min", "Max", "Mean", "Median", "StdDev"))
	for _, name := range rep.Names() {
		agg := rep.Metric(name).Aggregation
		if agg == nil {
			continue
		}
		b.WriteString(fmt.Sprintf("%-*s %12s %12s %12s %12s %12s\n",
			nameWidth, name,
			formatValue(agg.Min), formatValue(agg.Max), formatValue(agg.Mean),
			formatValue(agg.Median), formatValue(agg.StdDev)))
	}
	return b.String()
}
