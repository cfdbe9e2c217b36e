// Package handlers связывает telegram-транспорт с диалогами
// ввода показаний и сводок.
package handlers

import (
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-retail-reports/internal/lib/sl"
)

var (
	captureMenuKB = [][]string{{btnEnterData}, {btnSubmit}}
	reportMenuKB  = [][]string{{btnSumsNow}, {btnOtherDate}}
	goBackKB      = [][]string{{btnBack}}
)

// sender — часть Bot API, которой пользуются обработчики.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

func send(bot sender, log *slog.Logger, chatID int64, text string, keyboard [][]string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if len(keyboard) > 0 {
		msg.ReplyMarkup = replyKeyboard(keyboard)
	}
	if _, err := bot.Send(msg); err != nil {
		log.Error("send message", sl.Err(err), slog.Int64("chat_id", chatID))
	}
}

func replyKeyboard(rows [][]string) tgbotapi.ReplyKeyboardMarkup {
	kbRows := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		btns := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, label := range row {
			btns = append(btns, tgbotapi.NewKeyboardButton(label))
		}
		kbRows = append(kbRows, tgbotapi.NewKeyboardButtonRow(btns...))
	}
	return tgbotapi.NewReplyKeyboard(kbRows...)
}

func senderName(msg *tgbotapi.Message) string {
	if msg.From != nil {
		return msg.From.UserName
	}
	return ""
}
