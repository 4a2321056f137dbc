// report.go
package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mozillazg/go-unidecode"

	"github.com/Silu00/sales-dashboard/domain/models"
)

// GenerateSummaryTable renders the headline metrics of one dataset.
func GenerateSummaryTable(result models.AggregateResult) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Unique Real Users", result.UniqueUsers},
		{"Unique Author Sets", result.UniqueAuthorSets},
		{"Top Author(s)", result.TopAuthor},
		{"Best Buyer IDs", strings.Join(result.TopBuyerIDs, ", ")},
	})
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

// GenerateTopDaysTable renders the top revenue days table.
func GenerateTopDaysTable(result models.AggregateResult) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Date", "Revenue"})
	for _, day := range result.TopDays {
		t.AppendRow(table.Row{day.Date, fmt.Sprintf("%.2f", day.Revenue)})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

// GenerateDatasetReport собирает текстовый отчёт по одному датасету.
func GenerateDatasetReport(name string, result models.AggregateResult) string {
	buf := &strings.Builder{}
	buf.WriteString("Dataset: " + name + "\n")
	buf.WriteString(GenerateSummaryTable(result))
	buf.WriteString("\n\nTop 5 Days (Revenue)\n")
	buf.WriteString(GenerateTopDaysTable(result))
	buf.WriteString("\n")
	return buf.String()
}

var slugCleanRe = regexp.MustCompile("[^a-zA-Z0-9]+")

// datasetSlug makes a file-name-safe ascii identifier from a folder name.
func datasetSlug(name string) string {
	s := unidecode.Unidecode(name)
	s = slugCleanRe.ReplaceAllString(s, "_")
	return strings.ToLower(strings.Trim(s, "_"))
}
