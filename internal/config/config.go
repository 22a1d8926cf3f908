package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
)

type Config struct {
	ServerPort string
	AppEnv     string
	LogLevel   string

	DBUrl string

	RedisAddr        string
	RedisPassword    string
	RateLimitPerMin  int
	CORSAllowOrigins []string

	Timezone   string
	AgendaCron string

	Schedule appointment.Schedule
}

// Load reads .env when present, then the environment. SCHEDULE_FILE, when
// set, overrides the slot template and service types from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: .env: %w", err)
	}

	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		AppEnv:           getEnv("APP_ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DBUrl:            os.Getenv("DATABASE_URL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MIN", 60),
		CORSAllowOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		Timezone:         getEnv("TIMEZONE", "America/Sao_Paulo"),
		AgendaCron:       getEnvAllowEmpty("AGENDA_CRON", "0 7 * * *"),
	}

	schedule := appointment.DefaultSchedule()
	if v := os.Getenv("SLOT_TEMPLATE"); v != "" {
		schedule.SlotTemplate = splitList(v)
	}
	if v := os.Getenv("SERVICE_TYPES"); v != "" {
		schedule.ServiceTypes = toServiceTypes(splitList(v))
	}
	schedule.PreviewLimit = getEnvInt("CALENDAR_PREVIEW_LIMIT", appointment.DefaultPreviewLimit)

	if path := os.Getenv("SCHEDULE_FILE"); path != "" {
		file, err := LoadScheduleFile(path)
		if err != nil {
			return nil, err
		}
		file.apply(&schedule)
	}

	if err := schedule.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Schedule = schedule

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// ===============================
// Schedule file
// ===============================

// ScheduleFile is the YAML shape of SCHEDULE_FILE.
type ScheduleFile struct {
	SlotTemplate []string `yaml:"slot_template"`
	ServiceTypes []string `yaml:"service_types"`
	PreviewLimit *int     `yaml:"preview_limit"`
}

func LoadScheduleFile(path string) (*ScheduleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: schedule file: %w", err)
	}

	var f ScheduleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: schedule file %s: %w", path, err)
	}
	f.Normalize()
	return &f, nil
}

// Normalize trims entries and drops blanks.
func (f *ScheduleFile) Normalize() {
	f.SlotTemplate = compact(f.SlotTemplate)
	f.ServiceTypes = compact(f.ServiceTypes)
}

func (f *ScheduleFile) apply(s *appointment.Schedule) {
	if len(f.SlotTemplate) > 0 {
		s.SlotTemplate = f.SlotTemplate
	}
	if len(f.ServiceTypes) > 0 {
		s.ServiceTypes = toServiceTypes(f.ServiceTypes)
	}
	if f.PreviewLimit != nil {
		s.PreviewLimit = *f.PreviewLimit
	}
}

// ===============================
// Helpers
// ===============================

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvAllowEmpty treats an explicitly empty variable as a value.
func getEnvAllowEmpty(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

func splitList(v string) []string {
	return compact(strings.Split(v, ","))
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toServiceTypes(names []string) []appointment.ServiceType {
	out := make([]appointment.ServiceType, 0, len(names))
	for _, n := range names {
		out = append(out, appointment.ServiceType(strings.ToLower(n)))
	}
	return out
}
