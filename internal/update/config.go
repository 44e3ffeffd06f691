package update

import (
	"os"
	"strconv"
	"strings"

	"github.com/novarame/weekplan/internal/generate"
	"github.com/novarame/weekplan/internal/schedule"
)

type RuntimeConfig struct {
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	DBPath        string
	HistoryLimit  int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		GeminiModel:   generate.DefaultModel,
		GeminiBaseURL: generate.DefaultBaseURL,
		DBPath:        "weekplan.db",
		HistoryLimit:  schedule.DefaultHistoryLimit,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("WEEKPLAN_GEMINI_API_KEY"); ok {
		cfg.GeminiAPIKey = v
	}
	if v, ok := getEnvString("WEEKPLAN_GEMINI_MODEL"); ok {
		cfg.GeminiModel = v
	}
	if v, ok := getEnvString("WEEKPLAN_GEMINI_BASE_URL"); ok {
		cfg.GeminiBaseURL = v
	}
	if v, ok := getEnvString("WEEKPLAN_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvInt("WEEKPLAN_HISTORY_LIMIT"); ok && v > 0 {
		cfg.HistoryLimit = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
