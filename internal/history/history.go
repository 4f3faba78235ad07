// Package history projects the record store into chart-ready series.
package history

import (
	"fmt"

	"github.com/rezmoss/watertrackcli/internal/store"
)

// DefaultMargin is subtracted from the lowest intake to get the y-axis floor.
const DefaultMargin = 250

// DropLevels is the number of fill steps of the progress drop.
const DropLevels = 9

// Point is one day on the history chart.
type Point struct {
	Date   string
	Intake float64
	Goal   int
}

// Source is the read side of store.Store.
type Source interface {
	Recent(days int) ([]store.Record, error)
}

// Get returns the trailing window of days points, oldest first. It always
// holds at least today's point.
func Get(src Source, days int) ([]Point, error) {
	if days < 1 {
		days = 1
	}
	records, err := src.Recent(days)
	if err != nil {
		return nil, fmt.Errorf("history for %d days: %w", days, err)
	}
	points := make([]Point, 0, len(records))
	for _, r := range records {
		points = append(points, Point{Date: r.Date, Intake: r.Intake, Goal: r.Goal})
	}
	return points, nil
}

// Range is a y-axis span. Max is always greater than Min.
type Range struct {
	Min float64
	Max float64
}

// Bounds returns the y-axis range for points: the lowest intake minus margin
// up to the highest intake or goal.
func Bounds(points []Point, margin float64) Range {
	if len(points) == 0 {
		return Range{Min: -margin, Max: 1}
	}
	lo := points[0].Intake
	hi := points[0].Intake
	for _, p := range points {
		lo = min(lo, p.Intake)
		hi = max(hi, p.Intake, float64(p.Goal))
	}
	r := Range{Min: lo - margin, Max: hi}
	if r.Max <= r.Min {
		r.Max = r.Min + 1
	}
	return r
}

// Progress maps intake against goal onto 0..levels.
func Progress(intake float64, goal int, levels int) int {
	if goal <= 0 {
		return 0
	}
	lvl := int(intake / float64(goal) * float64(levels))
	return min(levels, max(0, lvl))
}

// Percent is intake as a whole percentage of goal, 0 when goal is not positive.
func Percent(intake float64, goal int) int {
	if goal <= 0 {
		return 0
	}
	return int(intake * 100 / float64(goal))
}

// Totals summarises a window of points.
type Totals struct {
	Days    int
	Intake  float64
	Average float64
	GoalMet int
}

func Summarize(points []Point) Totals {
	var t Totals
	for _, p := range points {
		t.Days++
		t.Intake += p.Intake
		if p.Goal > 0 && p.Intake >= float64(p.Goal) {
			t.GoalMet++
		}
	}
	if t.Days > 0 {
		t.Average = t.Intake / float64(t.Days)
	}
	return t
}
