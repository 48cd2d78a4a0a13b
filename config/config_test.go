package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"orchardlog/entities"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_PATH", "LLM_PROVIDER", "LLM_ENDPOINT", "LLM_API_KEY", "LLM_MODEL", "GEMINI_API_KEY", "DEFAULT_LANGUAGE", "SEED_DEMO_DATA", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "orchardlog.db", cfg.DBPath)
	assert.Equal(t, ProviderMock, cfg.LLMProvider)
	assert.Equal(t, entities.LangEN, cfg.DefaultLanguage)
	assert.True(t, cfg.SeedDemoData)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_InfersGemini(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("DEFAULT_LANGUAGE", "tr")
	t.Setenv("LOG_LEVEL", "debug")
	cfg := Load()
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLMModel)
	assert.Equal(t, entities.LangTR, cfg.DefaultLanguage)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLogValue_RedactsKeys(t *testing.T) {
	cfg := AppConfig{LLMAPIKey: "secret"}
	assert.NotContains(t, cfg.LogValue().String(), "secret")
}
