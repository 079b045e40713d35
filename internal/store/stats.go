package store

import (
	"fmt"
	"time"
)

// Button labels stored in the interactions log.
const (
	ButtonAbout = "about"
	ButtonCases = "cases"
	ButtonOther = "other"
)

type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// Totals is the stats tuple shown to the admin:
// unique users, "about" clicks, "cases" clicks, total messages.
type Totals struct {
	Users    int
	About    int
	Cases    int
	Messages int
}

type Application struct {
	ID        int64
	UserID    int64
	Username  string
	FirstName string
	LastName  string
	Phone     string
	CreatedAt string
}

// TrackInteraction logs one event and updates the user's aggregate row.
func (d *DB) TrackInteraction(u User, button string) error {
	if button == "" {
		button = ButtonOther
	}
	aboutInc, casesInc := 0, 0
	switch button {
	case ButtonAbout:
		aboutInc = 1
	case ButtonCases:
		casesInc = 1
	}

	now := nowISO()

	tx, err := d.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO interactions (user_id, button, ts) VALUES (?, ?, ?)",
		u.ID, button, now,
	); err != nil {
		return fmt.Errorf("log interaction: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO users (
			user_id, username, first_name, last_name,
			first_seen, last_seen,
			total_messages, about_clicks, cases_clicks
		)
		VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			username       = excluded.username,
			first_name     = excluded.first_name,
			last_name      = excluded.last_name,
			last_seen      = excluded.last_seen,
			total_messages = users.total_messages + 1,
			about_clicks   = users.about_clicks + excluded.about_clicks,
			cases_clicks   = users.cases_clicks + excluded.cases_clicks`,
		u.ID, u.Username, u.FirstName, u.LastName, now, now, aboutInc, casesInc,
	); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	return tx.Commit()
}

// Stats returns all-time totals from the aggregate table.
func (d *DB) Stats() (Totals, error) {
	var t Totals

	if err := d.QueryRow("SELECT COUNT(*) FROM users").Scan(&t.Users); err != nil {
		return t, err
	}

	err := d.QueryRow(`
		SELECT
			COALESCE(SUM(about_clicks), 0),
			COALESCE(SUM(cases_clicks), 0),
			COALESCE(SUM(total_messages), 0)
		FROM users`,
	).Scan(&t.About, &t.Cases, &t.Messages)
	return t, err
}

// WindowStats returns totals over the last `days` days of the interactions log.
func (d *DB) WindowStats(days int) (Totals, error) {
	cutoff := formatISO(time.Now().UTC().AddDate(0, 0, -days))
	return d.rangeStats("ts >= ?", cutoff)
}

// PeriodStats returns totals for one calendar month, half-open interval.
// time.Date normalizes month 13, so December rolls into next January.
func (d *DB) PeriodStats(year int, month time.Month) (Totals, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	return d.rangeStats("ts >= ? AND ts < ?", formatISO(start), formatISO(end))
}

func (d *DB) rangeStats(cond string, args ...any) (Totals, error) {
	var t Totals

	if err := d.QueryRow(
		"SELECT COUNT(DISTINCT user_id) FROM interactions WHERE "+cond, args...,
	).Scan(&t.Users); err != nil {
		return t, err
	}

	err := d.QueryRow(`
		SELECT
			COALESCE(SUM(CASE WHEN button = 'about' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN button = 'cases' THEN 1 ELSE 0 END), 0),
			COUNT(*)
		FROM interactions
		WHERE `+cond, args...,
	).Scan(&t.About, &t.Cases, &t.Messages)
	return t, err
}

// SaveApplication stores a phone-number lead.
func (d *DB) SaveApplication(u User, phone string) error {
	_, err := d.Exec(`
		INSERT INTO applications (user_id, username, first_name, last_name, phone, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.FirstName, u.LastName, phone, nowISO(),
	)
	if err != nil {
		return fmt.Errorf("save application: %w", err)
	}
	return nil
}

// Applications returns the most recent leads, newest first.
func (d *DB) Applications(limit int) ([]Application, error) {
	rows, err := d.Query(`
		SELECT id, user_id, username, first_name, last_name, phone, created_at
		FROM applications
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.UserID, &a.Username, &a.FirstName, &a.LastName, &a.Phone, &a.CreatedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}
