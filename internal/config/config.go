package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultScheduleFile   = "schedule.json"
	defaultMigrationsPath = "migrations"
	defaultSourceURL      = "https://raspisanie.madi.ru"
)

type Config struct {
	TelegramToken  string
	Environment    string
	LogLevel       string
	ScheduleFile   string
	DBDSN          string
	MigrationsPath string
	SourceURL      string
	Groups         []string
	ShareURL       string
	RefreshCron    string
	AdminIDs       []int64
}

// Load читает конфигурацию из .env и переменных окружения
func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	adminIDs, err := parseIDs(os.Getenv("ADMIN_IDS"))
	if err != nil {
		return nil, fmt.Errorf("ADMIN_IDS: %w", err)
	}

	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		Environment:    getenv("ENV", "development"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		ScheduleFile:   getenv("SCHEDULE_FILE", defaultScheduleFile),
		DBDSN:          os.Getenv("DB_DSN"),
		MigrationsPath: getenv("MIGRATIONS_PATH", defaultMigrationsPath),
		SourceURL:      getenv("SCHEDULE_SOURCE_URL", defaultSourceURL),
		Groups:         splitList(os.Getenv("SCHEDULE_GROUPS")),
		ShareURL:       os.Getenv("SCHEDULE_SHARE_URL"),
		RefreshCron:    strings.TrimSpace(os.Getenv("REFRESH_CRON")),
		AdminIDs:       adminIDs,
	}

	return cfg, nil
}

// RequireToken проверяет наличие токена бота
func (c *Config) RequireToken() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	return nil
}

// IsAdmin может ли пользователь обновлять расписание
func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range splitList(raw) {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
