package plot

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// dataRevenueForGraph — дневная выручка: ось X это ISO даты, Y суммы.
type dataRevenueForGraph struct {
	dates     []string
	values    []float64
	nameYAxis string
	nameGraph string
}

func NewDataRevenueForGraph(dates []string, values []float64, nameYAxis, nameGraph string) dataRevenueForGraph {
	return dataRevenueForGraph{
		dates:     dates,
		values:    values,
		nameYAxis: nameYAxis,
		nameGraph: nameGraph,
	}
}

func (d dataRevenueForGraph) GetNameGraph() string {
	return d.nameGraph
}
func (d dataRevenueForGraph) getNameYAxis() string {
	return d.nameYAxis
}
func (d dataRevenueForGraph) getYValues() []float64 {
	return d.values
}

func (d dataRevenueForGraph) calculateChartDimensions(minBarWidth float64) (width, height int) {
	if len(d.values) == 0 || len(d.dates) == 0 || minBarWidth <= 0 {
		return 0, 0
	}
	x := 1.1
	if len(d.dates) < 2 {
		x = 10.0
	} else if len(d.dates) < 10 {
		x = 3.0
	}

	const (
		paddingY     = 100
		spacingRatio = 0.2
		aspectRatio  = 9.0 / 16.0
	)

	barSpacing := minBarWidth * spacingRatio
	totalWidth := (minBarWidth+barSpacing)*float64(len(d.dates)) + paddingY
	width = int(totalWidth*x) + paddingY
	height = int(float64(width) * aspectRatio)
	return width, height
}

func (d dataRevenueForGraph) generateBarValues() []chart.Value {
	var bars []chart.Value
	for i, date := range d.dates {
		bars = append(bars, chart.Value{
			Value: d.values[i],
			Style: chart.Style{
				FillColor:         drawing.ColorLime.WithAlpha(40),
				TextVerticalAlign: 100,
			},
			Label: date,
		})
	}
	return bars
}

func (d dataRevenueForGraph) generateGrid() []chart.Tick {
	max := findMaxValue(d.values)
	gridStep := calculateGridStep(max)
	if gridStep <= 0 {
		return nil // flat series, let the renderer pick defaults
	}
	var ticks []chart.Tick
	for i := 0.0; i <= max; i += gridStep {
		ticks = append(ticks, chart.Tick{
			Value: i,
			Label: fmt.Sprintf("%.1f", i),
		})
	}
	return ticks
}

// DrawRevenueSeries renders a daily revenue series as a PNG bar chart.
func DrawRevenueSeries(dates []string, values []float64, nameGraph string) ([]byte, error) {
	if len(dates) != len(values) {
		return nil, fmt.Errorf("dates and values length mismatch: %d != %d", len(dates), len(values))
	}
	data := NewDataRevenueForGraph(dates, values, "USD", nameGraph)
	return DrawPlotBar(data)
}
