package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"
)

// Month names as they appear in the report file.
var monthNames = [...]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// Reporter appends monthly statistics blocks to a plain-text file.
// Each month is written at most once; monthly_stats_saves is the guard.
type Reporter struct {
	db   *DB
	path string
}

func NewReporter(db *DB, path string) *Reporter {
	return &Reporter{db: db, path: path}
}

// WriteMonthly saves the stats block for one month.
// Returns false if that month was already saved before.
func (r *Reporter) WriteMonthly(year int, month time.Month) (bool, error) {
	var id int64
	err := r.db.QueryRow(
		"SELECT id FROM monthly_stats_saves WHERE year = ? AND month = ?",
		year, int(month),
	).Scan(&id)
	if err == nil {
		return false, nil
	}
	if err != sql.ErrNoRows {
		return false, err
	}

	t, err := r.db.PeriodStats(year, month)
	if err != nil {
		return false, err
	}

	block := fmt.Sprintf(
		"Статистика за %s %d года\n"+
			"%s\n"+
			"Пользователей взаимодействовало: %d\n"+
			"Нажатий «О нас»: %d\n"+
			"Нажатий «Кейсы»: %d\n"+
			"Всего сообщений: %d\n"+
			"%s\n\n",
		monthNames[month-1], year, rule(), t.Users, t.About, t.Cases, t.Messages, rule(),
	)

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("open report file: %w", err)
	}
	if _, err := f.WriteString(block); err != nil {
		f.Close()
		return false, fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return false, err
	}

	// UNIQUE(year, month) backstops a concurrent save.
	if _, err := r.db.Exec(
		"INSERT INTO monthly_stats_saves (year, month, saved_at) VALUES (?, ?, ?)",
		year, int(month), nowISO(),
	); err != nil {
		return false, fmt.Errorf("record save: %w", err)
	}
	return true, nil
}

// CheckAndSave writes the previous month's report if now is the 1st of a month.
func (r *Reporter) CheckAndSave(now time.Time) error {
	if now.Day() != 1 {
		return nil
	}
	prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	_, err := r.WriteMonthly(prev.Year(), prev.Month())
	return err
}

func rule() string {
	return strings.Repeat("=", 50)
}
