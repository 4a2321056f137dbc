// chart_html.go
package main

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Silu00/sales-dashboard/domain/models"
)

// RevenueLineChart строит линейный график дневной выручки для дашборда.
func RevenueLineChart(name string, series []models.DateRevenue) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Revenue Over Time",
			Width:     "900px",
			Height:    "420px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Daily Revenue",
			Subtitle: name,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	dates := make([]string, 0, len(series))
	values := make([]opts.LineData, 0, len(series))
	for _, day := range series {
		dates = append(dates, day.Date)
		values = append(values, opts.LineData{Value: day.Revenue})
	}
	line.SetXAxis(dates).AddSeries("USD", values,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}
