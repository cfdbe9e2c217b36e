package handlers

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-retail-reports/internal/dialog"
	"telegram-retail-reports/internal/lib/sl"
	"telegram-retail-reports/internal/models"
	"telegram-retail-reports/internal/storage"
	"telegram-retail-reports/internal/users"
)

// Состояния диалога ввода показаний.
const (
	stateAwaitRemainings dialog.State = "await_remainings"
	stateAwaitSales      dialog.State = "await_sales"
)

var digitsRx = regexp.MustCompile(`^\d+$`)

// Entry — черновые значения текущего цикла ввода.
type Entry struct {
	Remainings int
	Sales      int
}

// Capture ведёт диалог ввода остатков и продаж: остатки, затем
// продажи, затем передача данных отдельной кнопкой.
type Capture struct {
	bot      sender
	db       *storage.DB
	log      *slog.Logger
	machine  *dialog.Machine[Entry]
	sessions *dialog.Sessions[Entry]
}

func NewCapture(bot sender, db *storage.DB, log *slog.Logger) *Capture {
	c := &Capture{
		bot:      bot,
		db:       db,
		log:      log,
		machine:  dialog.New[Entry](),
		sessions: dialog.NewSessions[Entry](),
	}

	c.machine.OnTrigger(btnEnterData, func(s *dialog.Session[Entry], _ string) (dialog.Reply, error) {
		s.State = stateAwaitRemainings
		return dialog.Reply{Text: msgAskRemainings, Keyboard: goBackKB}, nil
	})

	c.machine.OnTrigger(btnBack, func(s *dialog.Session[Entry], _ string) (dialog.Reply, error) {
		s.State = dialog.Default
		return dialog.Reply{Text: entryText(s.Data), Keyboard: captureMenuKB}, nil
	})

	c.machine.OnTrigger(btnSubmit, c.submit)

	c.machine.OnState(stateAwaitRemainings, func(s *dialog.Session[Entry], input string) (dialog.Reply, error) {
		v, ok := parseAmount(input)
		if !ok {
			return dialog.Reply{Text: msgBadNumber, Keyboard: goBackKB}, nil
		}
		s.Data.Remainings = v
		s.State = stateAwaitSales
		return dialog.Reply{Text: msgAskSales, Keyboard: goBackKB}, nil
	})

	c.machine.OnState(stateAwaitSales, func(s *dialog.Session[Entry], input string) (dialog.Reply, error) {
		v, ok := parseAmount(input)
		if !ok {
			return dialog.Reply{Text: msgBadNumber, Keyboard: goBackKB}, nil
		}
		s.Data.Sales = v
		s.State = dialog.Default
		return dialog.Reply{Text: entryText(s.Data), Keyboard: captureMenuKB}, nil
	})

	return c
}

// submit фиксирует отчёт одной вставкой: значения цикла плюс снимок
// имени и магазина пользователя на текущий момент.
func (c *Capture) submit(s *dialog.Session[Entry], _ string) (dialog.Reply, error) {
	u, err := users.GetOrCreate(c.db, s.ChatID, s.Name, "")
	if err != nil {
		return dialog.Reply{}, err
	}

	r := &models.Report{
		UserID:     u.ID,
		Sales:      s.Data.Sales,
		Remainings: s.Data.Remainings,
		Username:   u.Name,
		Store:      u.Store,
		Date:       time.Now(),
	}
	if err := c.db.InsertReport(r); err != nil {
		return dialog.Reply{}, err
	}

	c.log.Info("report stored",
		slog.Int64("report_id", r.ID),
		slog.Int64("user_id", u.ID),
		slog.String("store", u.Store),
		slog.Int("sales", r.Sales),
		slog.Int("remainings", r.Remainings),
	)

	return dialog.Reply{Text: msgSubmitted + entryText(s.Data), Keyboard: captureMenuKB}, nil
}

func (c *Capture) HandleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		if msg.Command() == "start" {
			c.handleStart(msg)
		}
		return
	}

	sess := c.sessions.Get(chatID, senderName(msg))
	reply, err := c.machine.Handle(sess, msg.Text)
	if err != nil {
		c.log.Error("capture dialogue", sl.Err(err), slog.Int64("chat_id", chatID))
		send(c.bot, c.log, chatID, msgFailure, captureMenuKB)
		return
	}
	if reply.Text == "" {
		return
	}
	send(c.bot, c.log, chatID, reply.Text, reply.Keyboard)
}

func (c *Capture) handleStart(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	sess := c.sessions.Get(chatID, senderName(msg))
	sess.State = dialog.Default

	u, err := users.GetOrCreate(c.db, chatID, senderName(msg), "")
	if err != nil {
		c.log.Error("register user", sl.Err(err), slog.Int64("chat_id", chatID))
		send(c.bot, c.log, chatID, msgFailure, captureMenuKB)
		return
	}
	send(c.bot, c.log, chatID, "Добро пожаловать, "+u.Name+"!", captureMenuKB)
}

func parseAmount(input string) (int, bool) {
	if !digitsRx.MatchString(input) {
		return 0, false
	}
	v, err := strconv.Atoi(input)
	if err != nil {
		return 0, false
	}
	return v, true
}

func entryText(e Entry) string {
	return fmt.Sprintf("Остатки: %d\nПродажи: %d", e.Remainings, e.Sales)
}
