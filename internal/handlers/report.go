package handlers

import (
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-retail-reports/internal/dialog"
	"telegram-retail-reports/internal/lib/sl"
	"telegram-retail-reports/internal/storage"
	"telegram-retail-reports/internal/summary"
)

// Состояние диалога сводок: ожидание даты от администратора.
const stateAwaitDate dialog.State = "await_date"

// Report ведёт диалог сводок: суммы за текущее окно или за окно
// произвольной даты.
type Report struct {
	bot      sender
	db       *storage.DB
	log      *slog.Logger
	machine  *dialog.Machine[struct{}]
	sessions *dialog.Sessions[struct{}]
}

func NewReport(bot sender, db *storage.DB, log *slog.Logger) *Report {
	r := &Report{
		bot:      bot,
		db:       db,
		log:      log,
		machine:  dialog.New[struct{}](),
		sessions: dialog.NewSessions[struct{}](),
	}

	r.machine.OnTrigger(btnSumsNow, func(_ *dialog.Session[struct{}], _ string) (dialog.Reply, error) {
		sum, err := summary.ForNow(r.db)
		if err != nil {
			return dialog.Reply{}, err
		}
		return dialog.Reply{Text: sum.Text(), Keyboard: goBackKB}, nil
	})

	r.machine.OnTrigger(btnOtherDate, func(s *dialog.Session[struct{}], _ string) (dialog.Reply, error) {
		s.State = stateAwaitDate
		return dialog.Reply{Text: msgAskDate, Keyboard: goBackKB}, nil
	})

	r.machine.OnTrigger(btnBack, func(s *dialog.Session[struct{}], _ string) (dialog.Reply, error) {
		s.State = dialog.Default
		return dialog.Reply{Text: msgGoingBack, Keyboard: reportMenuKB}, nil
	})

	r.machine.OnState(stateAwaitDate, func(s *dialog.Session[struct{}], input string) (dialog.Reply, error) {
		at, err := summary.ParseDate(input)
		if err != nil {
			// неразборчивая дата — остаёмся в том же состоянии
			return dialog.Reply{Text: msgBadDate, Keyboard: goBackKB}, nil
		}

		sum, err := summary.ForDate(r.db, at)
		if err != nil {
			return dialog.Reply{}, err
		}
		s.State = dialog.Default
		return dialog.Reply{Text: sum.Text(), Keyboard: reportMenuKB}, nil
	})

	return r
}

func (r *Report) HandleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		if msg.Command() == "start" {
			sess := r.sessions.Get(chatID, senderName(msg))
			sess.State = dialog.Default
			send(r.bot, r.log, chatID, "Добро пожаловать, "+senderName(msg)+"!", reportMenuKB)
		}
		return
	}

	sess := r.sessions.Get(chatID, senderName(msg))
	reply, err := r.machine.Handle(sess, msg.Text)
	if err != nil {
		r.log.Error("report dialogue", sl.Err(err), slog.Int64("chat_id", chatID))
		send(r.bot, r.log, chatID, msgFailure, reportMenuKB)
		return
	}
	if reply.Text == "" {
		return
	}
	send(r.bot, r.log, chatID, reply.Text, reply.Keyboard)
}
