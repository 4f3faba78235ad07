// Package report prints the intake history as a plain text table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/rezmoss/watertrackcli/internal/history"
)

const ruleWidth = 50

// Write prints one row per point followed by window totals.
func Write(w io.Writer, points []history.Point, days int) error {
	rule := strings.Repeat("-", ruleWidth)
	var b strings.Builder

	fmt.Fprintf(&b, "water intake for the last %d days\n", days)
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "%-12s | %-10s | %-10s | %s\n", "Date", "Intake", "Goal", "Progress")
	fmt.Fprintln(&b, rule)
	for _, p := range points {
		mark := ""
		if p.Goal > 0 && p.Intake >= float64(p.Goal) {
			mark = " ✓"
		}
		fmt.Fprintf(&b, "%-12s | %-10s | %-10s | %d%%%s\n",
			p.Date, ml(p.Intake), ml(float64(p.Goal)), history.Percent(p.Intake, p.Goal), mark)
	}
	fmt.Fprintln(&b, rule)

	t := history.Summarize(points)
	fmt.Fprintf(&b, "Total intake   : %s\n", ml(t.Intake))
	fmt.Fprintf(&b, "Daily average  : %s\n", ml(t.Average))
	fmt.Fprintf(&b, "Goal reached   : %d of %d days\n", t.GoalMet, t.Days)

	_, err := io.WriteString(w, b.String())
	return err
}

// Status is the one line summary of a single day.
func Status(date string, intake float64, goal int) string {
	return fmt.Sprintf("%s: %s/%s (%d%%)", date, volume(intake), ml(float64(goal)), history.Percent(intake, goal))
}

func volume(v float64) string {
	return humanize.CommafWithDigits(v, 1)
}

func ml(v float64) string {
	return volume(v) + " ml"
}
