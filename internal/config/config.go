package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Nilai STORE_BACKEND yang dikenal.
const (
	BackendSheets   = "sheets"
	BackendWorkbook = "workbook"
)

type Config struct {
	BotToken    string
	AdminChatID int64 // 0 berarti notifikasi admin mati

	StoreBackend      string
	SpreadsheetID     string
	GoogleCredentials string // kosong berarti Application Default Credentials
	WorkbookPath      string

	StockSheet      string
	MonitoringSheet string
	UserSheet       string

	HTTPPort      string
	WebhookURL    string // kosong berarti mode polling
	WebhookSecret string
	PollTimeout   int // detik, long poll getUpdates
}

func Load() *Config {
	// .env untuk development lokal; kalau tidak ada, env proses yang
	// dipakai.
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:          os.Getenv("BOT_TOKEN"),
		AdminChatID:       getEnvInt64("ADMIN_CHAT_ID", 0),
		StoreBackend:      getEnv("STORE_BACKEND", BackendSheets),
		SpreadsheetID:     os.Getenv("SPREADSHEET_ID"),
		GoogleCredentials: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		WorkbookPath:      os.Getenv("WORKBOOK_PATH"),
		StockSheet:        getEnv("STOCK_SHEET", "STOCK"),
		MonitoringSheet:   getEnv("MONITORING_SHEET", "MONITORING"),
		UserSheet:         getEnv("USER_SHEET", "USER"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		PollTimeout:       getEnvInt("POLL_TIMEOUT", 30),
	}

	if cfg.BotToken == "" {
		log.Fatal().Msg("BOT_TOKEN belum diisi, bot tidak bisa jalan tanpa token")
	}
	switch cfg.StoreBackend {
	case BackendSheets:
		if cfg.SpreadsheetID == "" {
			log.Fatal().Msg("SPREADSHEET_ID belum diisi untuk backend sheets")
		}
	case BackendWorkbook:
		if cfg.WorkbookPath == "" {
			log.Fatal().Msg("WORKBOOK_PATH belum diisi untuk backend workbook")
		}
	default:
		log.Fatal().Str("backend", cfg.StoreBackend).Msg("STORE_BACKEND tidak dikenal, pakai sheets atau workbook")
	}
	if cfg.AdminChatID == 0 {
		log.Warn().Msg("ADMIN_CHAT_ID belum diisi, notifikasi admin dimatikan")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatal().Str("key", key).Str("value", v).Msg("nilai env bukan angka")
	}
	return n
}

func getEnvInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatal().Str("key", key).Str("value", v).Msg("nilai env bukan angka")
	}
	return n
}
