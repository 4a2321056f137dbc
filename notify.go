// notify.go
package main

import (
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/Silu00/sales-dashboard/plot"
)

// sendReports delivers every dataset report to the configured chat: the
// text tables as an HTML pre block, the revenue chart as a PNG.
func sendReports(bot *tgbotapi.BotAPI, chatID int64, reports []DatasetReport) {
	for _, report := range reports {
		if report.Err != nil {
			msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Error processing %s: %v", report.Name, report.Err))
			bot.Send(msg)
			continue
		}
		text := GenerateDatasetReport(report.Name, report.Result)
		msg := tgbotapi.NewMessage(chatID, "<pre>\n"+text+"\n</pre>")
		msg.ParseMode = tgbotapi.ModeHTML
		bot.Send(msg)
		sendRevenueChart(bot, chatID, report)
	}
}

// sendRevenueChart отправляет график выручки; маленькие изображения идут
// фотографией, большие документом.
func sendRevenueChart(bot *tgbotapi.BotAPI, chatID int64, report DatasetReport) {
	dates := make([]string, 0, len(report.Result.DailyRevenue))
	values := make([]float64, 0, len(report.Result.DailyRevenue))
	for _, day := range report.Result.DailyRevenue {
		dates = append(dates, day.Date)
		values = append(values, day.Revenue)
	}
	graph, err := plot.DrawRevenueSeries(dates, values, "Daily Revenue: "+report.Name)
	if err != nil {
		log.Printf("Error rendering revenue chart for %s: %v", report.Name, err)
		return
	}

	fileName := fmt.Sprintf("revenue_%s_%s.png", datasetSlug(report.Name), time.Now().Format("20060102-150405"))
	pngFile := tgbotapi.FileBytes{
		Name:  fileName,
		Bytes: graph,
	}
	caption := fmt.Sprintf("Revenue over time: %s", report.Name)

	const maxSizePhoto = 150000
	if len(graph) < maxSizePhoto {
		photoMsg := tgbotapi.NewPhotoUpload(chatID, pngFile)
		photoMsg.Caption = caption
		if _, err := bot.Send(photoMsg); err != nil {
			log.Printf("Error sending chart for %s: %v", report.Name, err)
		}
		return
	}
	docMsg := tgbotapi.NewDocumentUpload(chatID, pngFile)
	docMsg.Caption = caption
	if _, err := bot.Send(docMsg); err != nil {
		log.Printf("Error sending chart for %s: %v", report.Name, err)
	}
}
