package models

import "time"

// User represents a store operator identified by telegram id.
// Store назначается администратором вне бота и может быть пустым.
type User struct {
	ID    int64  `db:"tg_id"`
	Name  string `db:"name"`
	Store string `db:"store"`
}

// Report — одно показание: продажи и остатки на момент Date.
// Username и Store — снимок пользователя на момент передачи данных;
// последующие изменения пользователя отчёт не затрагивают.
type Report struct {
	ID         int64     `db:"reports_id"`
	UserID     int64     `db:"user"`
	Sales      int       `db:"sales"`
	Remainings int       `db:"remainings"`
	Username   string    `db:"username"`
	Store      string    `db:"store"`
	Date       time.Time `db:"date"`
}
