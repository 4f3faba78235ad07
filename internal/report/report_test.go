package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rezmoss/watertrackcli/internal/history"
)

func TestWrite(t *testing.T) {
	points := []history.Point{
		{Date: "2026-10-16", Intake: 2250, Goal: 2000},
		{Date: "2026-10-17", Intake: 1062.5, Goal: 2000},
		{Date: "2026-10-18", Intake: 0, Goal: 2000},
	}
	var buf bytes.Buffer
	if err := Write(&buf, points, 7); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"water intake for the last 7 days",
		"2026-10-16   | 2,250 ml",
		"112% ✓",
		"1,062.5 ml",
		"Total intake   : 3,312.5 ml",
		"Goal reached   : 1 of 3 days",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in report:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 11 {
		t.Errorf("expected 11 lines, got %d:\n%s", got, out)
	}
}

func TestStatus(t *testing.T) {
	got := Status("2026-10-18", 1250, 2000)
	if got != "2026-10-18: 1,250/2,000 ml (62%)" {
		t.Errorf("unexpected status %q", got)
	}
}

func TestStatusZeroGoal(t *testing.T) {
	got := Status("2026-10-18", 250, 0)
	if !strings.HasSuffix(got, "(0%)") {
		t.Errorf("expected 0%% for a zero goal, got %q", got)
	}
}
