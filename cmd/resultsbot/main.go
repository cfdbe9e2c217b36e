package main

import (
	"log"
	"log/slog"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-retail-reports/internal/config"
	"telegram-retail-reports/internal/handlers"
	"telegram-retail-reports/internal/scheduler"
	"telegram-retail-reports/internal/storage"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.Env)}))

	bot, err := tgbotapi.NewBotAPI(cfg.ResultsBotToken)
	if err != nil {
		log.Fatal(err)
	}

	db, err := storage.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.AdminID != 0 {
		if _, err := scheduler.Start(bot, db, cfg.AdminID, logger); err != nil {
			log.Fatal(err)
		}
	} else {
		logger.Warn("ADMIN_ID не задан, сводки по расписанию отключены")
	}

	logger.Info("resultsbot started", slog.String("username", bot.Self.UserName))

	h := handlers.NewReport(bot, db, logger)

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
