package export

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/hrops/hr-reportgen/internal/logging"
	"github.com/hrops/hr-reportgen/internal/model"
)

// maxMonthTicks caps the number of month labels on the x axis.
const maxMonthTicks = 12

// AttritionTrendChart renders the monthly attrition percent and its 3-month
// rolling average as a line chart. Summaries are expected in ascending month
// order.
func AttritionTrendChart(path string, summaries []model.MonthlySummary) error {
	p := plot.New()
	p.Title.Text = "Overall Monthly Attrition Trend"
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Attrition %"

	monthlyPts := make(plotter.XYs, len(summaries))
	rollingPts := make(plotter.XYs, len(summaries))
	labels := make([]string, len(summaries))
	for i, s := range summaries {
		monthlyPts[i] = plotter.XY{X: float64(i), Y: s.AttritionPercent}
		rollingPts[i] = plotter.XY{X: float64(i), Y: s.Rolling3mPct}
		labels[i] = s.EventMonth
	}

	monthlyLine, monthlyPoints, err := plotter.NewLinePoints(monthlyPts)
	if err != nil {
		return fmt.Errorf("failed to build monthly series: %w", err)
	}
	monthlyLine.Color = color.RGBA{R: 31, G: 119, B: 180, A: 128}
	monthlyPoints.Color = color.RGBA{R: 31, G: 119, B: 180, A: 128}

	rollingLine, err := plotter.NewLine(rollingPts)
	if err != nil {
		return fmt.Errorf("failed to build rolling series: %w", err)
	}
	rollingLine.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	rollingLine.Width = vg.Points(2)

	p.Add(plotter.NewGrid())
	p.Add(monthlyLine, monthlyPoints, rollingLine)
	p.Legend.Add("Monthly Attrition (%)", monthlyLine, monthlyPoints)
	p.Legend.Add("3-Month Rolling Avg", rollingLine)
	p.Legend.Top = true

	p.X.Tick.Marker = monthTicker{labels: labels}
	p.X.Tick.Label.Rotation = 30 * math.Pi / 180
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if err := p.Save(14*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}

	logging.Info().Str("file", path).Msg("Chart saved")
	return nil
}

// monthTicker labels month indices, thinning to at most maxMonthTicks labels.
type monthTicker struct {
	labels []string
}

func (t monthTicker) Ticks(min, max float64) []plot.Tick {
	if len(t.labels) == 0 {
		return nil
	}
	step := (len(t.labels) + maxMonthTicks - 1) / maxMonthTicks
	if step < 1 {
		step = 1
	}

	var ticks []plot.Tick
	for i := 0; i < len(t.labels); i += step {
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: t.labels[i],
		})
	}
	return ticks
}
