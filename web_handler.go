// web_handler.go
package main

import (
	"html/template"
	"log"
	"net/http"
	"strings"
)

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Sales Dashboard</title>
<style>
body { font-family: sans-serif; margin: 24px; background: #0E1117; color: #E0E0E0; }
h1 { color: #5D9FD8; }
section { border: 1px solid #333; border-radius: 6px; padding: 16px; margin-bottom: 24px; }
.metric { display: inline-block; margin-right: 32px; }
.metric .value { font-size: 24px; color: #0068c9; }
.error { color: #ff6666; }
pre { background: #1a1f2b; padding: 8px; overflow-x: auto; }
iframe { border: 0; width: 940px; height: 460px; background: #fff; }
</style>
</head>
<body>
<h1>&#128202; Dashboard</h1>
{{range .}}
<section>
<h2>{{.Name}}</h2>
{{if .Error}}
<p class="error">Error processing {{.Name}}: {{.Error}}</p>
{{else}}
<div class="metric"><div>Unique Real Users</div><div class="value">{{.UniqueUsers}}</div></div>
<div class="metric"><div>Unique Author Sets</div><div class="value">{{.UniqueAuthorSets}}</div></div>
<div class="metric"><div>Top Author(s)</div><div class="value">{{.TopAuthor}}</div></div>
<h3>&#128197; Top 5 Days (Revenue)</h3>
<pre>{{.TopDaysTable}}</pre>
<h3>&#127942; Best Buyer IDs</h3>
<pre>[{{.BuyerIDs}}]</pre>
<h3>&#128200; Revenue Over Time</h3>
<iframe src="/chart?dataset={{.Name}}"></iframe>
{{end}}
</section>
{{end}}
</body>
</html>`))

type datasetView struct {
	Name             string
	Error            string
	UniqueUsers      int
	UniqueAuthorSets int
	TopAuthor        string
	TopDaysTable     string
	BuyerIDs         string
}

// registerDashboard exposes the metrics page and per-dataset charts. A
// failed dataset renders a scoped error block, the rest render normally.
func registerDashboard(mux *http.ServeMux, reports []DatasetReport) {
	views := make([]datasetView, 0, len(reports))
	for _, report := range reports {
		view := datasetView{Name: report.Name}
		if report.Err != nil {
			view.Error = report.Err.Error()
		} else {
			view.UniqueUsers = report.Result.UniqueUsers
			view.UniqueAuthorSets = report.Result.UniqueAuthorSets
			view.TopAuthor = report.Result.TopAuthor
			view.TopDaysTable = GenerateTopDaysTable(report.Result)
			view.BuyerIDs = strings.Join(report.Result.TopBuyerIDs, ", ")
		}
		views = append(views, view)
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if err := dashboardTmpl.Execute(w, views); err != nil {
			log.Printf("render dashboard: %v", err)
		}
	})

	mux.HandleFunc("/chart", func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("dataset")
		for _, report := range reports {
			if report.Name != name || report.Err != nil {
				continue
			}
			line := RevenueLineChart(report.Name, report.Result.DailyRevenue)
			if err := line.Render(w); err != nil {
				log.Printf("render chart %s: %v", name, err)
			}
			return
		}
		http.Error(w, "unknown dataset", http.StatusNotFound)
	})
}
