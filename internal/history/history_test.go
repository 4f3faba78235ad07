package history

import (
	"errors"
	"testing"

	"github.com/rezmoss/watertrackcli/internal/store"
)

type fakeSource struct {
	records []store.Record
	err     error
	asked   int
}

func (f *fakeSource) Recent(days int) ([]store.Record, error) {
	f.asked = days
	if f.err != nil {
		return nil, f.err
	}
	if days > len(f.records) {
		days = len(f.records)
	}
	return f.records[len(f.records)-days:], nil
}

func TestGetProjectsRecords(t *testing.T) {
	src := &fakeSource{records: []store.Record{
		{Date: "2026-10-16", Goal: 2000, GlassSize: 250, SipSize: 62.5, Intake: 1750},
		{Date: "2026-10-17", Goal: 2500, GlassSize: 300, SipSize: 62.5, Intake: 2600},
		{Date: "2026-10-18", Goal: 2500, GlassSize: 300, SipSize: 62.5, Intake: 300},
	}}

	points, err := Get(src, 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	want := Point{Date: "2026-10-17", Intake: 2600, Goal: 2500}
	if points[1] != want {
		t.Errorf("expected %+v, got %+v", want, points[1])
	}
}

func TestGetClampsDays(t *testing.T) {
	src := &fakeSource{records: []store.Record{{Date: "2026-10-18", Goal: 2000}}}

	points, err := Get(src, 0)
	if err != nil {
		t.Fatal(err)
	}
	if src.asked != 1 || len(points) != 1 {
		t.Errorf("expected a one day window, asked=%d points=%d", src.asked, len(points))
	}
}

func TestGetPropagatesErrors(t *testing.T) {
	boom := errors.New("disk full")
	_, err := Get(&fakeSource{err: boom}, 7)
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

func TestBounds(t *testing.T) {
	points := []Point{
		{Date: "a", Intake: 500, Goal: 2000},
		{Date: "b", Intake: 2750, Goal: 2500},
		{Date: "c", Intake: 1000, Goal: 2500},
	}
	r := Bounds(points, DefaultMargin)
	if r.Min != 250 || r.Max != 2750 {
		t.Errorf("unexpected range %+v", r)
	}
}

func TestBoundsDegenerateSeries(t *testing.T) {
	r := Bounds([]Point{{Date: "a", Intake: 0, Goal: 0}}, 0)
	if r.Max <= r.Min {
		t.Errorf("range must not be empty: %+v", r)
	}

	r = Bounds([]Point{{Date: "a", Intake: 0, Goal: 2000}}, DefaultMargin)
	if r.Min != -250 || r.Max != 2000 {
		t.Errorf("unexpected single point range %+v", r)
	}

	r = Bounds(nil, DefaultMargin)
	if r.Max <= r.Min {
		t.Errorf("range must not be empty: %+v", r)
	}
}

func TestProgress(t *testing.T) {
	cases := []struct {
		intake float64
		goal   int
		want   int
	}{
		{0, 2000, 0},
		{1000, 2000, 4},
		{1999, 2000, 8},
		{2000, 2000, 9},
		{5000, 2000, 9},
		{500, 0, 0},
	}
	for _, c := range cases {
		if got := Progress(c.intake, c.goal, DropLevels); got != c.want {
			t.Errorf("Progress(%v, %d) = %d, want %d", c.intake, c.goal, got, c.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	tot := Summarize([]Point{
		{Intake: 2000, Goal: 2000},
		{Intake: 1000, Goal: 2000},
		{Intake: 3000, Goal: 2500},
	})
	if tot.Days != 3 || tot.Intake != 6000 || tot.Average != 2000 || tot.GoalMet != 2 {
		t.Errorf("unexpected totals %+v", tot)
	}

	if empty := Summarize(nil); empty.Average != 0 {
		t.Errorf("expected zero average, got %v", empty.Average)
	}
}
