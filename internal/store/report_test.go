package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMonthlyOnce(t *testing.T) {
	db := openTestDB(t)
	path := filepath.Join(t.TempDir(), "statistic.txt")
	rep := NewReporter(db, path)

	_, err := db.Exec("INSERT INTO interactions (user_id, button, ts) VALUES (?, ?, ?)",
		1, ButtonAbout, formatISO(time.Date(2024, 12, 10, 12, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	saved, err := rep.WriteMonthly(2024, time.December)
	require.NoError(t, err)
	assert.True(t, saved)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Статистика за Декабрь 2024 года")
	assert.Contains(t, string(content), "Нажатий «О нас»: 1")
	assert.Contains(t, string(content), "Всего сообщений: 1")

	// Second write for the same month is a no-op
	saved, err = rep.WriteMonthly(2024, time.December)
	require.NoError(t, err)
	assert.False(t, saved)

	again, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, again)
}

func TestCheckAndSaveFirstOfMonth(t *testing.T) {
	db := openTestDB(t)
	path := filepath.Join(t.TempDir(), "statistic.txt")
	rep := NewReporter(db, path)

	// Mid-month: nothing happens
	require.NoError(t, rep.CheckAndSave(time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// January 1st saves December of the previous year
	require.NoError(t, rep.CheckAndSave(time.Date(2025, 1, 1, 0, 5, 0, 0, time.UTC)))

	var year, month int
	require.NoError(t, db.QueryRow("SELECT year, month FROM monthly_stats_saves").Scan(&year, &month))
	assert.Equal(t, 2024, year)
	assert.Equal(t, 12, month)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Декабрь 2024")
}
