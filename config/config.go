package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDirs   []string
	ListenAddr string
	ReportsDir string
	TgToken    string
	TgChat     int64
}

var (
	config *Config
	once   sync.Once
)

// GetConfig возвращает singleton экземпляр конфигурации
func GetConfig() *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil {
			log.Println("no .env file, using environment")
		}

		dirs := os.Getenv("DATA_DIRS")
		if dirs == "" {
			dirs = "DATA1,DATA2,DATA3"
		}
		dataDirs := []string{}
		for _, dir := range strings.Split(dirs, ",") {
			if dir = strings.TrimSpace(dir); dir != "" {
				dataDirs = append(dataDirs, dir)
			}
		}

		addr := os.Getenv("LISTEN_ADDR")
		if addr == "" {
			addr = ":8005"
		}
		reportsDir := os.Getenv("REPORTS_DIR")
		if reportsDir == "" {
			reportsDir = "reports"
		}
		chatID, _ := strconv.ParseInt(os.Getenv("TG_CHAT"), 10, 64)

		config = &Config{
			DataDirs:   dataDirs,
			ListenAddr: addr,
			ReportsDir: reportsDir,
			TgToken:    os.Getenv("TG_TOKEN"),
			TgChat:     chatID,
		}
	})
	return config
}
