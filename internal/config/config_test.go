package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("SPREADSHEET_ID", "sheet-1")
	t.Setenv("ADMIN_CHAT_ID", "777")
	t.Setenv("POLL_TIMEOUT", "15")

	cfg := Load()

	require.Equal(t, "123:abc", cfg.BotToken)
	require.Equal(t, int64(777), cfg.AdminChatID)
	require.Equal(t, BackendSheets, cfg.StoreBackend)
	require.Equal(t, "sheet-1", cfg.SpreadsheetID)
	require.Empty(t, cfg.GoogleCredentials)
	require.Equal(t, "STOCK", cfg.StockSheet)
	require.Equal(t, "MONITORING", cfg.MonitoringSheet)
	require.Equal(t, "USER", cfg.UserSheet)
	require.Equal(t, "8080", cfg.HTTPPort)
	require.Equal(t, 15, cfg.PollTimeout)
	require.Empty(t, cfg.WebhookURL)
}

func TestLoadWorkbookBackend(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("STORE_BACKEND", "workbook")
	t.Setenv("WORKBOOK_PATH", "gudang.xlsx")

	cfg := Load()

	require.Equal(t, BackendWorkbook, cfg.StoreBackend)
	require.Equal(t, "gudang.xlsx", cfg.WorkbookPath)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "nilai")

	require.Equal(t, "nilai", getEnv("CONFIG_TEST_KEY", "default"))
	require.Equal(t, "default", getEnv("CONFIG_TEST_KEY_KOSONG", "default"))
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("CONFIG_TEST_CHAT", "-100123")

	require.Equal(t, int64(-100123), getEnvInt64("CONFIG_TEST_CHAT", 0))
	require.Equal(t, int64(7), getEnvInt64("CONFIG_TEST_CHAT_KOSONG", 7))
}
