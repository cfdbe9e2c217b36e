package main

import (
	"log"
	"log/slog"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-retail-reports/internal/config"
	"telegram-retail-reports/internal/handlers"
	"telegram-retail-reports/internal/storage"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.Env)}))

	bot, err := tgbotapi.NewBotAPI(cfg.SalesBotToken)
	if err != nil {
		log.Fatal(err)
	}

	db, err := storage.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal(err)
	}

	logger.Info("salesbot started", slog.String("username", bot.Self.UserName))

	h := handlers.NewCapture(bot, db, logger)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	for upd := range bot.GetUpdatesChan(updateConfig) {
		if upd.Message != nil {
			h.HandleMessage(upd.Message)
		}
	}
}

func logLevel(env string) slog.Level {
	if env == "prod" {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}
