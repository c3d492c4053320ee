package view

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/maheshrc27/crosspost/internal/models"
	"github.com/wcharczuk/go-chart/v2"
)

const ReachError = "Error"

var ErrNoChart = errors.New("no analytics to chart")

type Bar struct {
	Label         string
	HeightPercent float64
}

// AnalyticsPanel is nil-safe to render: when loading failed Reach is "Error"
// and Bars is nil so no chart is drawn.
type AnalyticsPanel struct {
	Reach      string
	Engagement string
	Bars       []Bar
	Failed     bool
}

func NewAnalyticsPanel(data *models.Analytics, err error) AnalyticsPanel {
	if err != nil || data == nil {
		return AnalyticsPanel{Reach: ReachError, Failed: true}
	}
	return AnalyticsPanel{
		Reach:      FormatReach(data.TotalReach),
		Engagement: data.Engagement(),
		Bars:       NewBars(data.WeeklyStats),
	}
}

// NewBars scales every value against the largest one. A non-positive maximum
// yields zero-height bars.
func NewBars(values []float64) []Bar {
	if len(values) == 0 {
		return nil
	}
	peak := values[0]
	for _, v := range values[1:] {
		peak = math.Max(peak, v)
	}

	bars := make([]Bar, len(values))
	for i, v := range values {
		height := 0.0
		if peak > 0 {
			height = v / peak * 100
		}
		bars[i] = Bar{Label: fmt.Sprintf("Day %d", i+1), HeightPercent: height}
	}
	return bars
}

func FormatReach(reach float64) string {
	if reach == math.Trunc(reach) && math.Abs(reach) < 1e15 {
		return humanize.Comma(int64(reach))
	}
	return humanize.CommafWithDigits(reach, 3)
}

// RenderChart draws the weekly stats as an SVG bar chart.
func RenderChart(w io.Writer, data *models.Analytics) error {
	if data == nil || len(data.WeeklyStats) == 0 {
		return ErrNoChart
	}

	bars := make([]chart.Value, 0, len(data.WeeklyStats))
	for i, v := range data.WeeklyStats {
		bars = append(bars, chart.Value{Label: fmt.Sprintf("Day %d", i+1), Value: v})
	}

	graph := chart.BarChart{
		Title:    "Weekly reach",
		Width:    640,
		Height:   320,
		BarWidth: 48,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}
	return graph.Render(chart.SVG, w)
}
