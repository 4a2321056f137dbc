package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wcharczuk/go-chart/v2"
)

func TestDrawRevenueSeries(t *testing.T) {
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	values := []float64{100, 300, 150}

	png, err := DrawRevenueSeries(dates, values, "Daily Revenue: DATA1")
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	assert.Equal(t, "PNG", string(png[1:4]))
}

func TestDrawRevenueSeriesMismatch(t *testing.T) {
	_, err := DrawRevenueSeries([]string{"2024-01-01"}, []float64{1, 2}, "x")
	assert.Error(t, err)
}

func TestGenerateGrid(t *testing.T) {
	data := NewDataRevenueForGraph([]string{"2024-01-01", "2024-01-02"}, []float64{400, 1000}, "USD", "x")
	ticks := data.generateGrid()
	assert.Equal(t, []chart.Tick{
		{Value: 0, Label: "0.0"},
		{Value: 200, Label: "200.0"},
		{Value: 400, Label: "400.0"},
		{Value: 600, Label: "600.0"},
		{Value: 800, Label: "800.0"},
		{Value: 1000, Label: "1000.0"},
	}, ticks)

	// an all-zero series yields no ticks and must return, not spin
	flat := NewDataRevenueForGraph([]string{"2024-01-01"}, []float64{0}, "USD", "x")
	assert.Nil(t, flat.generateGrid())
}

func TestCalculateGridStep(t *testing.T) {
	assert.Equal(t, 0.0, calculateGridStep(0))
	assert.Equal(t, 200.0, calculateGridStep(1000))
	assert.Equal(t, 2000.0, calculateGridStep(9000))
}
