package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SERVER_PORT", "APP_ENV", "LOG_LEVEL", "DATABASE_URL", "REDIS_ADDR",
		"REDIS_PASSWORD", "RATE_LIMIT_PER_MIN", "CORS_ORIGINS", "TIMEZONE",
		"SLOT_TEMPLATE", "SERVICE_TYPES", "CALENDAR_PREVIEW_LIMIT", "SCHEDULE_FILE",
	} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Empty(t, cfg.DBUrl)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 60, cfg.RateLimitPerMin)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Equal(t, appointment.DefaultSchedule(), cfg.Schedule)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SLOT_TEMPLATE", "09:00, 10:00 ,11:00")
	t.Setenv("SERVICE_TYPES", "Haircut,spa")
	t.Setenv("CALENDAR_PREVIEW_LIMIT", "5")
	t.Setenv("RATE_LIMIT_PER_MIN", "not-a-number")
	t.Setenv("AGENDA_CRON", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, cfg.Schedule.SlotTemplate)
	assert.Equal(t, []appointment.ServiceType{"haircut", "spa"}, cfg.Schedule.ServiceTypes)
	assert.Equal(t, 5, cfg.Schedule.PreviewLimit)
	assert.Equal(t, 60, cfg.RateLimitPerMin)
	assert.Empty(t, cfg.AgendaCron)
}

func TestLoad_RejectsInvalidSchedule(t *testing.T) {
	clearEnv(t)
	t.Setenv("SLOT_TEMPLATE", "09:00,09:00")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ScheduleFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "schedule.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
slot_template:
  - "8:00 AM"
  - " 8:30 AM "
  - ""
service_types: [massage, spa]
preview_limit: 2
`), 0o600))
	t.Setenv("SCHEDULE_FILE", path)
	t.Setenv("SLOT_TEMPLATE", "09:00")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"8:00 AM", "8:30 AM"}, cfg.Schedule.SlotTemplate)
	assert.Equal(t, []appointment.ServiceType{"massage", "spa"}, cfg.Schedule.ServiceTypes)
	assert.Equal(t, 2, cfg.Schedule.PreviewLimit)
}

func TestLoadScheduleFile_Errors(t *testing.T) {
	_, err := LoadScheduleFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("slot_template: [unterminated"), 0o600))
	_, err = LoadScheduleFile(bad)
	assert.Error(t, err)
}
