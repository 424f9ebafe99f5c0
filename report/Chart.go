package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
)

// Chart renders an HTML page to w holding two line charts over
// episodes: the return of each episode and the rolling win rate.
// Either series may be empty, in which case its chart is omitted.
func Chart(w io.Writer, title string, returns, winRate []float64) error {
	if len(returns) == 0 && len(winRate) == 0 {
		return errors.New("chart: nothing to plot")
	}

	page := components.NewPage()
	if len(returns) > 0 {
		page.AddCharts(line(title, "Return", returns))
	}
	if len(winRate) > 0 {
		page.AddCharts(line(title, "Win rate", winRate))
	}

	if err := page.Render(w); err != nil {
		return errors.Wrap(err, "chart")
	}
	return nil
}

// line builds a single line chart of values indexed by episode
func line(title, name string, values []float64) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: name,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Episode"}),
		charts.WithYAxisOpts(opts.YAxis{Name: name}),
	)

	episodes := make([]string, len(values))
	items := make([]opts.LineData, len(values))
	for i, v := range values {
		episodes[i] = fmt.Sprintf("%d", i+1)
		items[i] = opts.LineData{Value: v}
	}

	chart.SetXAxis(episodes).AddSeries(name, items)
	return chart
}
