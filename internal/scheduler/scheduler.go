// Package scheduler отправляет администратору сводку по только что
// закрывшемуся окну в моменты смены окон.
package scheduler

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-retail-reports/internal/lib/sl"
	"telegram-retail-reports/internal/storage"
	"telegram-retail-reports/internal/summary"
)

// Окна сменяются в 00:00, 12:00 и 18:00.
const boundariesCron = "0 0,12,18 * * *"

func Start(bot *tgbotapi.BotAPI, db *storage.DB, adminID int64, log *slog.Logger) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.CronJob(boundariesCron, false),
		gocron.NewTask(func() {
			// опорное время чуть раньше границы, чтобы взять
			// закрывшееся окно, а не только что открывшееся
			at := time.Now().Add(-time.Minute)

			sum, err := summary.ForDate(db, at)
			if err != nil {
				log.Error("window summary", sl.Err(err))
				return
			}

			msg := tgbotapi.NewMessage(adminID, sum.Text())
			msg.ParseMode = tgbotapi.ModeHTML
			if _, err := bot.Send(msg); err != nil {
				log.Error("send window summary", sl.Err(err),
					slog.Int64("admin_id", adminID))
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	return s, nil
}
