// Package timerange разбивает сутки на три фиксированных окна
// и выбирает окно по часу опорного времени.
package timerange

import "time"

// Номера и подписи окон — как в сводке для администратора.
const (
	LabelMorning = "1. С 00:00 до 12:00"
	LabelDay     = "2. С 12:00 до 18:00"
	LabelEvening = "3. С 18:00 до 00:00"
)

// последняя микросекунда окна, в наносекундах
const lastMicro = 999999 * 1000

// Range — окно внутри календарного дня. Обе границы включительные:
// End указывает на последнюю микросекунду окна.
type Range struct {
	Start time.Time
	End   time.Time
	Label string
}

// Calculate возвращает окно дня, в которое попадает t.
// Каждый час суток принадлежит ровно одному окну.
func Calculate(t time.Time) Range {
	y, m, d := t.Date()
	loc := t.Location()

	switch {
	case t.Hour() < 12:
		return Range{
			Start: time.Date(y, m, d, 0, 0, 0, 0, loc),
			End:   time.Date(y, m, d, 11, 59, 59, lastMicro, loc),
			Label: LabelMorning,
		}
	case t.Hour() < 18:
		return Range{
			Start: time.Date(y, m, d, 12, 0, 0, 0, loc),
			End:   time.Date(y, m, d, 17, 59, 59, lastMicro, loc),
			Label: LabelDay,
		}
	default:
		return Range{
			Start: time.Date(y, m, d, 18, 0, 0, 0, loc),
			End:   time.Date(y, m, d, 23, 59, 59, lastMicro, loc),
			Label: LabelEvening,
		}
	}
}

// Contains сообщает, попадает ли ts в окно (границы включительно).
func (r Range) Contains(ts time.Time) bool {
	return !ts.Before(r.Start) && !ts.After(r.End)
}
