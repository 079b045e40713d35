package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_ID", "42")
	t.Setenv("XAI_API_KEY", " key ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Token)
	assert.Equal(t, int64(42), cfg.AdminID)
	assert.Equal(t, "key", cfg.XAIAPIKey) // trimmed
	assert.Equal(t, "./leadbot.db", cfg.DBPath)
	assert.Equal(t, "./statistic.txt", cfg.ReportPath)
}

func TestLoadLegacyKeys(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_ID", "")
	t.Setenv("ADMIN_ID_SECRET", "77")
	t.Setenv("XAI_API_KEY", "")
	t.Setenv("AI_API_KEY", "legacy")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(77), cfg.AdminID)
	assert.Equal(t, "legacy", cfg.XAIAPIKey)
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("ADMIN_ID", "42")

	_, err := Load()
	assert.ErrorContains(t, err, "TELEGRAM_BOT_TOKEN")
}

func TestLoadMissingAdmin(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_ID", "")
	t.Setenv("ADMIN_ID_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "ADMIN_ID")
}
