package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"telegram-retail-reports/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

type DB struct{ *sql.DB }

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = migrate(db); err != nil {
		return nil, err
	}
	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}

// ---------- users -----------------------------------------------------------

// FindUser возвращает nil без ошибки, если пользователь не найден.
func (d *DB) FindUser(id int64) (*models.User, error) {
	var u models.User

	err := d.QueryRow(`
        SELECT tg_id, name, store FROM users WHERE tg_id=?`, id,
	).Scan(&u.ID, &u.Name, &u.Store)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &u, nil
}

func (d *DB) InsertUser(u *models.User) error {
	_, err := d.Exec(`
        INSERT INTO users (tg_id, name, store) VALUES (?,?,?)`,
		u.ID, u.Name, u.Store)
	if err != nil {
		return fmt.Errorf("insert user %d: %w", u.ID, err)
	}
	return nil
}

// ---------- reports ---------------------------------------------------------

// InsertReport сохраняет отчёт одной операцией и проставляет ему id.
// Дата хранится как целое число микросекунд unix-времени, чтобы
// включительные границы окон (…59.999999) сравнивались точно.
func (d *DB) InsertReport(r *models.Report) error {
	res, err := d.Exec(`
        INSERT INTO reports (user, sales, remainings, username, store, date)
        VALUES (?,?,?,?,?,?)`,
		r.UserID, r.Sales, r.Remainings, r.Username, r.Store, r.Date.UnixMicro())
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}

	r.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// ReportsBetween возвращает отчёты с датой в [start, end]
// в порядке вставки.
func (d *DB) ReportsBetween(start, end time.Time) ([]models.Report, error) {
	rows, err := d.Query(`
        SELECT reports_id, user, sales, remainings, username, store, date
        FROM reports
        WHERE date BETWEEN ? AND ?
        ORDER BY reports_id`,
		start.UnixMicro(), end.UnixMicro())
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var res []models.Report
	for rows.Next() {
		var r models.Report
		var usec int64
		if err := rows.Scan(&r.ID, &r.UserID, &r.Sales, &r.Remainings,
			&r.Username, &r.Store, &usec); err != nil {
			return nil, err
		}
		r.Date = time.UnixMicro(usec)
		res = append(res, r)
	}
	return res, rows.Err()
}
