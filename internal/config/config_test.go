package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"TELEGRAM_TOKEN", "ENV", "SCHEDULE_FILE", "DB_DSN", "SCHEDULE_GROUPS", "ADMIN_IDS", "REFRESH_CRON", "SCHEDULE_SOURCE_URL", "MIGRATIONS_PATH", "SCHEDULE_SHARE_URL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, defaultScheduleFile, cfg.ScheduleFile)
	assert.Equal(t, defaultSourceURL, cfg.SourceURL)
	assert.Equal(t, defaultMigrationsPath, cfg.MigrationsPath)
	assert.Empty(t, cfg.Groups)
	assert.Empty(t, cfg.LogLevel)
	assert.Error(t, cfg.RequireToken())
}

func TestLoadValues(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("SCHEDULE_GROUPS", " 4ВбИТС, ,1бАСУ1 ")
	t.Setenv("ADMIN_IDS", "10,20")
	t.Setenv("REFRESH_CRON", " 0 6 * * 1 ")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.NoError(t, cfg.RequireToken())
	assert.Equal(t, []string{"4ВбИТС", "1бАСУ1"}, cfg.Groups)
	assert.Equal(t, "0 6 * * 1", cfg.RefreshCron)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.IsAdmin(20))
	assert.False(t, cfg.IsAdmin(30))
}

func TestLoadInvalidAdminIDs(t *testing.T) {
	t.Setenv("ADMIN_IDS", "10,abc")

	_, err := Load()
	assert.Error(t, err)
}
