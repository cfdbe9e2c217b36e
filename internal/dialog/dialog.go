// Package dialog реализует пошаговый диалог: маршрутизацию входящих
// сообщений по кнопкам-триггерам и по текущему состоянию сессии.
// Тип D — черновые значения, которые диалог накапливает по шагам.
package dialog

import "sync"

// State идентифицирует шаг диалога.
type State string

// Default — начальное состояние любого диалога.
const Default State = "default"

// Reply — ответ пользователю: текст и клавиатура (ряды подписей
// кнопок). Пустой текст означает «не отвечать».
type Reply struct {
	Text     string
	Keyboard [][]string
}

// Action обрабатывает входящий текст в рамках сессии.
type Action[D any] func(s *Session[D], input string) (Reply, error)

// Session — контекст одного чата: текущее состояние и черновые
// значения. Сессия принадлежит ровно одному чату и между чатами
// не разделяется.
type Session[D any] struct {
	ChatID int64
	Name   string
	State  State
	Data   D
}

// Machine — таблица переходов диалога. Кнопки-триггеры имеют
// приоритет над обработчиком текущего состояния.
type Machine[D any] struct {
	triggers map[string]Action[D]
	states   map[State]Action[D]
}

func New[D any]() *Machine[D] {
	return &Machine[D]{
		triggers: make(map[string]Action[D]),
		states:   make(map[State]Action[D]),
	}
}

// OnTrigger регистрирует обработчик точного текста кнопки.
func (m *Machine[D]) OnTrigger(text string, a Action[D]) {
	m.triggers[text] = a
}

// OnState регистрирует обработчик произвольного текста в состоянии st.
func (m *Machine[D]) OnState(st State, a Action[D]) {
	m.states[st] = a
}

// Handle маршрутизирует входящий текст. Ввод, не совпавший ни с
// триггером, ни с обработчиком текущего состояния, игнорируется.
func (m *Machine[D]) Handle(s *Session[D], input string) (Reply, error) {
	if a, ok := m.triggers[input]; ok {
		return a(s, input)
	}
	if a, ok := m.states[s.State]; ok {
		return a(s, input)
	}
	return Reply{}, nil
}

// Sessions хранит сессии по chat id.
type Sessions[D any] struct {
	mu     sync.Mutex
	byChat map[int64]*Session[D]
}

func NewSessions[D any]() *Sessions[D] {
	return &Sessions[D]{byChat: make(map[int64]*Session[D])}
}

// Get возвращает сессию чата, при первом обращении создавая её
// в состоянии Default.
func (ss *Sessions[D]) Get(chatID int64, name string) *Session[D] {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	s, ok := ss.byChat[chatID]
	if !ok {
		s = &Session[D]{ChatID: chatID, State: Default}
		ss.byChat[chatID] = s
	}
	if name != "" {
		s.Name = name
	}
	return s
}
