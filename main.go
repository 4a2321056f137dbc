package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	uuid "github.com/satori/go.uuid"

	"github.com/Silu00/sales-dashboard/config"
)

func main() {
	fmt.Println("started")
	cfg := config.GetConfig()

	reports := make([]DatasetReport, 0, len(cfg.DataDirs))
	for _, dir := range cfg.DataDirs {
		result, err := processFolder(dir)
		if err != nil {
			log.Printf("dataset %s failed: %v", dir, err)
			reports = append(reports, DatasetReport{Name: dir, Err: err})
			continue
		}
		reports = append(reports, DatasetReport{Name: dir, Result: result})
		fmt.Println(GenerateDatasetReport(dir, result))
	}

	writeChartFiles(cfg.ReportsDir, reports)

	if cfg.TgToken != "" && cfg.TgChat != 0 {
		bot, err := tgbotapi.NewBotAPI(cfg.TgToken)
		if err != nil {
			log.Printf("tg error: %v", err)
		} else {
			log.Printf("Authorized on account %s", bot.Self.UserName)
			sendReports(bot, cfg.TgChat, reports)
		}
	}

	mux := http.NewServeMux()
	registerDashboard(mux, reports)
	fmt.Println("listen on: http://localhost" + cfg.ListenAddr)
	err := http.ListenAndServe(cfg.ListenAddr, mux)
	if err != nil {
		fmt.Println("Error starting server:", err)
		os.Exit(1)
	}
}

// writeChartFiles сохраняет HTML график выручки по каждому успешному датасету.
func writeChartFiles(dir string, reports []DatasetReport) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("create reports dir: %v", err)
		return
	}
	for _, report := range reports {
		if report.Err != nil {
			continue
		}
		uid := uuid.NewV4()
		name := fmt.Sprintf("revenue_%s_%s.html", datasetSlug(report.Name), uid.String()[:8])
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			log.Printf("create chart file: %v", err)
			continue
		}
		line := RevenueLineChart(report.Name, report.Result.DailyRevenue)
		if err := line.Render(f); err != nil {
			log.Printf("render chart %s: %v", report.Name, err)
		}
		f.Close()
	}
}
