// Package chart draws the intake history as a PNG image.
package chart

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rezmoss/watertrackcli/internal/history"
)

var (
	intakeColor     = drawing.ColorFromHex("007aff")
	backgroundColor = drawing.ColorFromHex("555555")
	legendColor     = drawing.ColorFromHex("777777")
	textColor       = drawing.ColorWhite
)

type Options struct {
	Width  int
	Height int
	// Days is the requested window, used in the title. It may be larger than
	// the number of points.
	Days   int
	Margin float64
}

func DefaultOptions() Options {
	return Options{Width: 800, Height: 400, Days: 7, Margin: history.DefaultMargin}
}

// Render writes a bar chart of intake with the goal as a dashed line.
func Render(w io.Writer, points []history.Point, opts Options) error {
	if len(points) == 0 {
		return fmt.Errorf("render chart: no points")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		d := DefaultOptions()
		opts.Width, opts.Height = d.Width, d.Height
	}

	n := len(points)
	xs := make([]float64, n)
	intake := make([]float64, n)
	goals := make([]float64, n)
	// unlabeled edge ticks keep half a slot free around the outer bars;
	// go-chart derives the x range from the ticks when they are given
	ticks := make([]chart.Tick, 0, n+2)
	ticks = append(ticks, chart.Tick{Value: -0.5})
	for i, p := range points {
		xs[i] = float64(i)
		intake[i] = p.Intake
		goals[i] = float64(p.Goal)
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: p.Date})
	}
	ticks = append(ticks, chart.Tick{Value: float64(n) - 0.5})

	goalXs, goalYs := xs, goals
	if n == 1 {
		// pad to two x values for go-chart
		goalXs = []float64{-0.5, 0.5}
		goalYs = []float64{goals[0], goals[0]}
	}

	bounds := history.Bounds(points, opts.Margin)
	axisStyle := chart.Style{FontColor: textColor, StrokeColor: textColor}
	xStyle := axisStyle
	xStyle.TextRotationDegrees = 45

	ch := chart.Chart{
		Title:      fmt.Sprintf("Water intake - last %d days", opts.Days),
		TitleStyle: chart.Style{FontColor: textColor},
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{
			FillColor: backgroundColor,
			Padding:   chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 90},
		},
		Canvas: chart.Style{FillColor: backgroundColor},
		XAxis: chart.XAxis{
			Name:      "Date",
			NameStyle: chart.Style{FontColor: textColor},
			Style:     xStyle,
			Range:     &chart.ContinuousRange{Min: -0.5, Max: float64(n) - 0.5},
			Ticks:     ticks,
		},
		YAxis: chart.YAxis{
			Name:      "Water (ml)",
			NameStyle: chart.Style{FontColor: textColor},
			Style:     axisStyle,
			Range:     &chart.ContinuousRange{Min: bounds.Min, Max: bounds.Max},
		},
		Series: []chart.Series{
			chart.HistogramSeries{
				Name: "Intake",
				Style: chart.Style{
					StrokeColor: intakeColor,
					FillColor:   intakeColor,
				},
				InnerSeries: chart.ContinuousSeries{XValues: xs, YValues: intake},
			},
			chart.ContinuousSeries{
				Name: "Goal",
				Style: chart.Style{
					StrokeColor:     textColor,
					StrokeWidth:     2,
					StrokeDashArray: []float64{5, 5},
					DotColor:        textColor,
					DotWidth:        4,
				},
				XValues: goalXs,
				YValues: goalYs,
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch, chart.Style{
		FillColor:   legendColor,
		StrokeColor: textColor,
		FontColor:   textColor,
	})}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
