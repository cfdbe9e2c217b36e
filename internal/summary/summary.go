// Package summary агрегирует отчёты за временное окно и
// форматирует итоговую сводку для администратора.
package summary

import (
	"fmt"
	"strings"
	"time"

	"telegram-retail-reports/internal/models"
	"telegram-retail-reports/internal/timerange"
)

// InputLayout — формат даты, который вводит администратор.
// Тот же формат используется для дат отчётов в сводке.
const InputLayout = "02.01.2006 15:04"

// Source — источник отчётов за интервал (границы включительно).
type Source interface {
	ReportsBetween(start, end time.Time) ([]models.Report, error)
}

// Summary — итог по окну: попавшие в него отчёты и суммы.
type Summary struct {
	Window        timerange.Range
	Reports       []models.Report
	SalesSum      int
	RemainingsSum int

	// RequestedAt заполняется при запросе за явную дату
	// и дублируется в тексте сводки.
	RequestedAt *time.Time
}

// ForNow считает сводку по окну текущего момента.
func ForNow(src Source) (Summary, error) {
	return build(src, time.Now(), nil)
}

// ForDate считает сводку по окну произвольного момента.
func ForDate(src Source, at time.Time) (Summary, error) {
	return build(src, at, &at)
}

func build(src Source, at time.Time, requested *time.Time) (Summary, error) {
	w := timerange.Calculate(at)

	reports, err := src.ReportsBetween(w.Start, w.End)
	if err != nil {
		return Summary{}, fmt.Errorf("fetch reports: %w", err)
	}

	s := Summary{Window: w, Reports: reports, RequestedAt: requested}
	for _, r := range reports {
		s.SalesSum += r.Sales
		s.RemainingsSum += r.Remainings
	}
	return s, nil
}

// ParseDate разбирает дату в формате InputLayout. Несуществующие
// календарные даты (31.02 и т.п.) отклоняются.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(InputLayout, strings.TrimSpace(s), time.Local)
}

// FormatDate приводит дату к виду для сводки.
func FormatDate(t time.Time) string { return t.Format(InputLayout) }

const (
	reportSep = "┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈"
	totalSep  = "─────────────────────────────"
)

// Text собирает многострочную сводку: строки по каждому отчёту,
// подпись окна и итоговые суммы. Жирный текст — HTML-разметка.
func (s Summary) Text() string {
	var b strings.Builder

	for _, r := range s.Reports {
		b.WriteString(reportSep + "\n")
		fmt.Fprintf(&b, "Магазин: %s\n", r.Store)
		fmt.Fprintf(&b, "Дата: %s\n", FormatDate(r.Date))
		fmt.Fprintf(&b, "Продажи: %d, Остатки: %d\n", r.Sales, r.Remainings)
	}

	b.WriteString(totalSep + "\n")
	if s.RequestedAt != nil {
		fmt.Fprintf(&b, "  <b>Дата: %s</b>\n", FormatDate(*s.RequestedAt))
	}
	fmt.Fprintf(&b, "  <b>Временной диапазон №%s</b>\n", s.Window.Label)
	b.WriteString(totalSep + "\n")
	fmt.Fprintf(&b, "  <b>Итого продаж:     %d</b>\n", s.SalesSum)
	fmt.Fprintf(&b, "  <b>Итого остатков:  %d</b>\n", s.RemainingsSum)
	b.WriteString(totalSep)

	return b.String()
}
