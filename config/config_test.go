package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "MAX_FILE_SIZE", "MAX_CONCURRENCY", "RULES_FILE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := FromViper(New())
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, int64(10<<20), cfg.MaxFileSize)
	assert.Equal(t, int64(32<<20), cfg.MaxMultipartMemory)
	assert.Equal(t, 1, cfg.MaxConcurrency)
	assert.Equal(t, 1, cfg.MinValueDigits)
	assert.Equal(t, 0, cfg.ValueLookahead)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MAX_CONCURRENCY", "4")
	t.Setenv("RULES_FILE", "/etc/cashflow/rules.yaml")
	t.Setenv("VALUE_LOOKAHEAD", "200")

	cfg := FromViper(New())
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 4, cfg.MaxConcurrency)
	assert.Equal(t, "/etc/cashflow/rules.yaml", cfg.RulesFile)
	assert.Equal(t, 200, cfg.ValueLookahead)
}
