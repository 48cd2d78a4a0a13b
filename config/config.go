package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"orchardlog/entities"
)

type AppConfig struct {
	Port            string
	Timezone        string
	DBPath          string
	LLMProvider     string
	LLMEndpoint     string
	LLMAPIKey       string
	LLMModel        string
	GeminiAPIKey    string
	DefaultLanguage entities.Language
	SeedDemoData    bool
	ImportInboxDir  string
	SeasonRulesFile string
	LogLevel        slog.Level
}

// LLM providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderMock   = "mock"
)

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		slog.Debug("[cfg] no .env file loaded", "error", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		Timezone:        get("TZ", "Europe/Istanbul"),
		DBPath:          get("DB_PATH", "orchardlog.db"),
		LLMEndpoint:     get("LLM_ENDPOINT", ""),
		LLMAPIKey:       get("LLM_API_KEY", ""),
		GeminiAPIKey:    get("GEMINI_API_KEY", ""),
		SeedDemoData:    get("SEED_DEMO_DATA", "true") == "true",
		ImportInboxDir:  get("IMPORT_INBOX_DIR", ""),
		SeasonRulesFile: get("SEASON_RULES_CSV", ""),
		LogLevel:        parseLevel(get("LOG_LEVEL", "info")),
	}
	cfg.DefaultLanguage, _ = entities.ParseLanguage(get("DEFAULT_LANGUAGE", "en"))
	cfg.LLMProvider = strings.ToLower(get("LLM_PROVIDER", inferProvider(cfg)))
	defModel := "gpt-4o-mini"
	if cfg.LLMProvider == ProviderGemini {
		defModel = "gemini-2.5-flash"
	}
	cfg.LLMModel = get("LLM_MODEL", defModel)
	return cfg
}

// inferProvider picks gemini when its key is set, then an OpenAI-compatible
// endpoint, then the mock.
func inferProvider(cfg AppConfig) string {
	switch {
	case cfg.GeminiAPIKey != "":
		return ProviderGemini
	case cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "":
		return ProviderOpenAI
	}
	return ProviderMock
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// LogValue keeps secrets out of the start-up log line.
func (c AppConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("port", c.Port),
		slog.String("tz", c.Timezone),
		slog.String("db", c.DBPath),
		slog.String("llm_provider", c.LLMProvider),
		slog.String("llm_endpoint", c.LLMEndpoint),
		slog.String("llm_model", c.LLMModel),
		slog.Bool("llm_key_set", c.LLMAPIKey != "" || c.GeminiAPIKey != ""),
		slog.String("default_language", string(c.DefaultLanguage)),
		slog.Bool("seed_demo_data", c.SeedDemoData),
		slog.String("import_inbox", c.ImportInboxDir),
		slog.String("season_rules", c.SeasonRulesFile),
		slog.String("log_level", c.LogLevel.String()),
	)
}
